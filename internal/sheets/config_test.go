package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validOAuthConfig() Config {
	c := DefaultConfig()
	c.ClientID = "client-id"
	c.ClientSecret = "client-secret"
	c.RefreshToken = "refresh-token"
	return c
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid oauth", mutate: func(_ *Config) {}},
		{
			name: "valid service account",
			mutate: func(c *Config) {
				c.ClientID, c.ClientSecret, c.RefreshToken = "", "", ""
				c.ServiceAccountPath = "/etc/kassenbon/sa.json"
			},
		},
		{
			name: "no auth",
			mutate: func(c *Config) {
				c.ClientID, c.ClientSecret, c.RefreshToken = "", "", ""
			},
			wantErr: "no authentication method configured",
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/etc/kassenbon/sa.json"
			},
			wantErr: "multiple authentication methods configured",
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: "batch size must be positive",
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.RetryAttempts = -1 },
			wantErr: "retry attempts cannot be negative",
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *Config) { c.RetryDelay = -time.Second },
			wantErr: "retry delay cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validOAuthConfig()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv_RequiresCredentials(t *testing.T) {
	for _, key := range []string{
		"GOOGLE_SHEETS_CLIENT_ID", "GOOGLE_SHEETS_CLIENT_SECRET",
		"GOOGLE_SHEETS_REFRESH_TOKEN", "GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH",
	} {
		t.Setenv(key, "")
	}

	c := DefaultConfig()
	assert.Error(t, c.LoadFromEnv())

	t.Setenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH", "/etc/kassenbon/sa.json")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_NAME", "Haushalt")
	assert.NoError(t, c.LoadFromEnv())
	assert.Equal(t, "Haushalt", c.SpreadsheetName)
}
