package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crosscheck-ai/crosscheck/config"

	"github.com/spf13/cobra"
)

func runCommand() *cobra.Command {
	var (
		invoicePath string
		poPath      string
		recipient   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyze an invoice against a purchase order",

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")

			cfg, err := config.FromFile(path)

			if err != nil {
				return err
			}

			report, err := runPipeline(cmd.Context(), cfg, invoicePath, poPath, recipient)

			if err != nil {
				return err
			}

			fmt.Println(report)

			if recipient != "" {
				if cfg.Mailer() == nil {
					return errors.New("recipient given but mail is not configured")
				}

				if err := cfg.Mailer().Send(recipient, "PO / Invoice Discrepancy Report", report); err != nil {
					return err
				}

				slog.Info("report delivered", "recipient", recipient)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&invoicePath, "invoice", "", "path to the invoice document")
	cmd.Flags().StringVar(&poPath, "po", "", "path to the purchase order document")
	cmd.Flags().StringVar(&recipient, "recipient", "", "email address for the report")

	cmd.MarkFlagRequired("invoice")
	cmd.MarkFlagRequired("po")

	return cmd
}

func runPipeline(ctx context.Context, cfg *config.Config, invoicePath, poPath, recipient string) (string, error) {
	inputs := map[string]string{
		"invoice_file_path": invoicePath,
		"po_file_path":      poPath,
		"recipient_email":   recipient,
	}

	if cfg.HasCrew() {
		crew, err := cfg.BuildCrew(slog.Default())

		if err != nil {
			return "", err
		}

		result, err := crew.Kickoff(ctx, inputs)

		if err != nil {
			return "", err
		}

		return result.Final, nil
	}

	analyzer, err := cfg.Tool("textract_document_analyzer")

	if err != nil {
		return "", err
	}

	return analyzer.Run(ctx, inputs), nil
}
