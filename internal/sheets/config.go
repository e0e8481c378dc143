// Package sheets exports parsed receipts to a Google Sheets spreadsheet.
package sheets

import (
	"fmt"
	"os"
	"time"
)

// Config holds the configuration for the Google Sheets writer.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	TokenFile          string
	BatchSize          int
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SpreadsheetName: "Einkäufe",
		BatchSize:       500,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// LoadFromEnv loads credentials and spreadsheet settings from environment
// variables.
func (c *Config) LoadFromEnv() error {
	c.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	c.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	c.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	c.ServiceAccountPath = os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	c.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")

	if name := os.Getenv("GOOGLE_SHEETS_SPREADSHEET_NAME"); name != "" {
		c.SpreadsheetName = name
	}

	if c.ServiceAccountPath == "" && (c.ClientID == "" || c.ClientSecret == "" || c.RefreshToken == "") {
		return fmt.Errorf("missing Google Sheets authentication: provide either a service account path or OAuth2 credentials")
	}
	return nil
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("no authentication method configured")
	}
	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or a service account")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts cannot be negative")
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}
	return nil
}
