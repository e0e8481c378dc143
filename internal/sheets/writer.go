package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/kassenbon/internal/common"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer implements service.ReportWriter against the Google Sheets API.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a Google Sheets receipt exporter.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Write exports receipts, one row per line item, replacing the sheet's
// previous contents.
func (w *Writer) Write(ctx context.Context, receipts []model.Receipt) error {
	w.logger.Info("starting receipt export", "receipts", len(receipts))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := prepareReceiptData(receipts)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	w.logger.Info("receipt export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))
	return nil
}

// prepareReceiptData flattens receipts into sheet rows: a header, one row per
// line item, and a summary block of per-section totals.
func prepareReceiptData(receipts []model.Receipt) [][]any {
	values := [][]any{
		{"Date", "Store", "Product", "Section", "Price", "Receipt Total"},
	}

	sectionTotals := make(map[model.StorageSection]float64)
	for _, receipt := range receipts {
		storeName := receipt.StoreName
		if storeName == "" {
			storeName = "Unknown"
		}
		for _, item := range receipt.Items {
			values = append(values, []any{
				receipt.Date.Format("2006-01-02"),
				storeName,
				item.Name,
				string(item.Section),
				item.Price,
				receipt.Total,
			})
			sectionTotals[item.Section] += item.Price
		}
	}

	values = append(values, []any{}, []any{"Section Totals"})
	for _, section := range model.ValidSections {
		if total, ok := sectionTotals[section]; ok {
			values = append(values, []any{string(section), "", "", "", model.RoundCents(total), ""})
		}
	}

	return values
}

func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}
		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}
		tokenSource = oauthConfig.TokenSource(ctx, &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		})
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}
	return srv, nil
}

func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		return w.config.SpreadsheetID, nil
	}

	spreadsheet, err := w.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: w.config.SpreadsheetName,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	w.logger.Info("created spreadsheet",
		"id", spreadsheet.SpreadsheetId,
		"title", w.config.SpreadsheetName)
	return spreadsheet.SpreadsheetId, nil
}

func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear values: %w", err)
	}
	return nil
}

func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	for start := 0; start < len(values); start += w.config.BatchSize {
		end := start + w.config.BatchSize
		if end > len(values) {
			end = len(values)
		}

		rangeStr := fmt.Sprintf("A%d", start+1)
		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeStr, &sheets.ValueRange{
			Values: values[start:end],
		}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", start+1, err)
		}
	}
	return nil
}
