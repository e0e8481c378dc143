package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/Veraticus/kassenbon/internal/sheets"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved receipts to Google Sheets",
		Long: `Export writes every saved receipt to a Google Sheets spreadsheet, one row
per line item plus per-section totals. Credentials come from the
GOOGLE_SHEETS_* environment variables; run "kassenbon auth" first when
using OAuth2.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := sheets.DefaultConfig()
			if err := config.LoadFromEnv(); err != nil {
				return err
			}

			s, err := newStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			receipts, err := s.ListReceipts(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(receipts) == 0 {
				return fmt.Errorf("nothing to export: no receipts saved")
			}

			writer, err := sheets.NewWriter(cmd.Context(), config, slog.Default())
			if err != nil {
				return err
			}
			if err := writer.Write(cmd.Context(), receipts); err != nil {
				return fmt.Errorf("failed to export receipts: %w", err)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d receipts to %q", len(receipts), config.SpreadsheetName)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "export only the newest N receipts (0 for all)")
	return cmd
}
