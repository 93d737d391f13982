package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	godotenv.Load()

	root := &cobra.Command{
		Use:   "crosscheck",
		Short: "Analyze purchase order and invoice documents for discrepancies",

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "config.yaml", "configuration file")

	root.AddCommand(runCommand())
	root.AddCommand(serveCommand())

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",

		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	if err := root.Execute(); err != nil {
		slog.Error("crosscheck failed", "error", err)
		os.Exit(1)
	}
}
