package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/spf13/cobra"
)

func correctCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correct <receipt-id> <item-id> <section>",
		Short: "Move a line item to a different storage section",
		Long: `Correct records that a product belongs in a different storage section than
the classifier chose. The receipt is updated and the correction is kept as
feedback for future rule tuning.

Valid sections: fridge, freezer, pantry, unclassified.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			receiptID, itemID := args[0], args[1]
			section := model.StorageSection(args[2])
			if !section.IsValid() {
				return fmt.Errorf("unknown section %q (valid: fridge, freezer, pantry, unclassified)", args[2])
			}

			s, err := newStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			receipt, err := s.GetReceipt(cmd.Context(), receiptID)
			if err != nil {
				return err
			}

			var name string
			for _, item := range receipt.Items {
				if item.ID == itemID {
					name = item.Name
					break
				}
			}
			if name == "" {
				return fmt.Errorf("receipt %s has no item %s", receiptID, itemID)
			}

			correction := &model.SectionCorrection{
				ReceiptID: receiptID,
				ItemID:    itemID,
				Name:      name,
				Section:   section,
				CreatedAt: time.Now().UTC(),
			}
			if err := s.SaveCorrection(cmd.Context(), correction); err != nil {
				return err
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Moved %q to %s", name, section)))
			return nil
		},
	}
}
