package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// OAuth2Config holds the settings for the interactive OAuth2 flow.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenFile    string // Where the obtained token is persisted
}

const callbackAddr = ":8080"

// AuthenticateInteractive runs the browser-based OAuth2 flow: it starts a
// local callback server, prints the consent URL, and exchanges the returned
// code for a token.
func AuthenticateInteractive(ctx context.Context, config OAuth2Config) (*oauth2.Token, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  "http://localhost" + callbackAddr + "/callback",
		Scopes:       []string{sheets.SpreadsheetsScope},
	}

	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			fmt.Fprint(w, "Authentication failed; please return to the terminal and try again.")
			return
		}
		codeChan <- code
		fmt.Fprint(w, "Authentication successful. You can close this window.")
	})

	server := &http.Server{Addr: callbackAddr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to start callback server: %w", err)
		}
	}()
	defer func() { _ = server.Shutdown(ctx) }()

	authURL := oauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	slog.Info("Google Sheets authentication required")
	slog.Info("Visit this URL to authorize access", "url", authURL)

	var authCode string
	select {
	case authCode = <-codeChan:
	case err := <-errChan:
		return nil, err
	case <-time.After(5 * time.Minute):
		return nil, fmt.Errorf("authentication timeout: no response received within 5 minutes")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	token, err := oauthConfig.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if config.TokenFile != "" {
		if err := saveToken(config.TokenFile, token); err != nil {
			slog.Warn("Failed to save token", "error", err, "file", config.TokenFile)
		}
	}
	return token, nil
}

// GetOrCreateToken loads a previously saved token, refreshing it when
// expired, and falls back to the interactive flow when none exists.
func GetOrCreateToken(ctx context.Context, config OAuth2Config) (*oauth2.Token, error) {
	if config.TokenFile != "" {
		if token, err := LoadToken(config.TokenFile); err == nil {
			return refreshIfNeeded(ctx, config, token)
		}
		slog.Info("No saved token found, starting OAuth2 flow")
	}
	return AuthenticateInteractive(ctx, config)
}

// LoadToken reads a token from file.
func LoadToken(tokenFile string) (*oauth2.Token, error) {
	f, err := os.Open(tokenFile) // #nosec G304
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)
	return token, err
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return nil
}

func refreshIfNeeded(ctx context.Context, config OAuth2Config, token *oauth2.Token) (*oauth2.Token, error) {
	if token.Valid() {
		return token, nil
	}

	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{sheets.SpreadsheetsScope},
	}

	newToken, err := oauthConfig.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if config.TokenFile != "" {
		if err := saveToken(config.TokenFile, newToken); err != nil {
			slog.Warn("Failed to save refreshed token", "error", err)
		}
	}
	return newToken, nil
}
