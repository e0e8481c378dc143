package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/Veraticus/kassenbon/internal/sheets"
	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Sheets access",
		Long: `Auth runs the browser-based OAuth2 flow for Google Sheets and stores the
obtained token locally. Requires GOOGLE_SHEETS_CLIENT_ID and
GOOGLE_SHEETS_CLIENT_SECRET to be set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientID := os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
			clientSecret := os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
			if clientID == "" || clientSecret == "" {
				return fmt.Errorf("GOOGLE_SHEETS_CLIENT_ID and GOOGLE_SHEETS_CLIENT_SECRET must be set")
			}

			tokenFile, err := defaultTokenFile()
			if err != nil {
				return err
			}

			config := sheets.OAuth2Config{
				ClientID:     clientID,
				ClientSecret: clientSecret,
				TokenFile:    tokenFile,
			}
			token, err := sheets.GetOrCreateToken(cmd.Context(), config)
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			cmd.Println(cli.FormatSuccess("Authenticated with Google Sheets"))
			cmd.Println(cli.SubtleStyle.Render("Token saved to " + tokenFile))
			if token.RefreshToken != "" {
				cmd.Println(cli.SubtleStyle.Render("Set GOOGLE_SHEETS_REFRESH_TOKEN=" + token.RefreshToken + " for non-interactive use."))
			}
			return nil
		},
	}
}

func defaultTokenFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "kassenbon", "sheets-token.json"), nil
}
