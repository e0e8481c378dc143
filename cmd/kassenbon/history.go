package main

import (
	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show saved receipts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
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
				cmd.Println(cli.SubtleStyle.Render("No receipts saved yet. Parse one with --save first."))
				return nil
			}

			for i := range receipts {
				cmd.Println(cli.RenderReceiptSummary(&receipts[i]))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of receipts to show (0 for all)")
	return cmd
}
