package main

import (
	"fmt"

	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/Veraticus/kassenbon/internal/store"
	"github.com/spf13/cobra"
)

func storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List the supported store chains",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := store.NewRegistry(store.DefaultProfiles())
			if err != nil {
				return fmt.Errorf("failed to load store profiles: %w", err)
			}

			cmd.Println(cli.FormatTitle("Supported stores"))
			cmd.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-14s %-20s %s", "ID", "Name", "Layout")))
			for _, profile := range registry.Profiles() {
				cmd.Printf("%-14s %-20s %s\n", profile.ID, profile.DisplayName, profile.PriceLocation)
			}
			cmd.Println()
			cmd.Println(cli.SubtleStyle.Render("Receipts from other stores are parsed with the generic fallback grammar."))
			return nil
		},
	}
}
