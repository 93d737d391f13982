package main

import (
	"log/slog"

	"github.com/crosscheck-ai/crosscheck/config"
	"github.com/crosscheck-ai/crosscheck/server"

	"github.com/spf13/cobra"
)

func serveCommand() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			cfg, err := config.FromFile(path)

			if err != nil {
				return err
			}

			if address != "" {
				cfg.Address = address
			}

			s, err := server.New(cfg, slog.Default())

			if err != nil {
				return err
			}

			return s.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "listen address (overrides config)")

	return cmd
}
