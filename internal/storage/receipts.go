package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/kassenbon/internal/model"
)

// issueSeparator joins issue strings into one column. Issues never contain
// newlines.
const issueSeparator = "\n"

// SaveReceipt persists a receipt with its line items and, when present, its
// confidence. Saving an existing receipt id replaces the receipt and all its
// items wholesale, which is how re-parses behave everywhere else.
func (s *SQLiteStorage) SaveReceipt(ctx context.Context, receipt *model.Receipt, confidence *model.ReceiptConfidence) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateReceipt(receipt); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var score sql.NullFloat64
	var rating, issues sql.NullString
	if confidence != nil {
		score = sql.NullFloat64{Float64: confidence.Score, Valid: true}
		rating = sql.NullString{String: string(confidence.Rating), Valid: true}
		issues = sql.NullString{String: strings.Join(confidence.Issues, issueSeparator), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipts (id, store_name, date, total, score, rating, issues)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			store_name = excluded.store_name,
			date = excluded.date,
			total = excluded.total,
			score = excluded.score,
			rating = excluded.rating,
			issues = excluded.issues`,
		receipt.ID, receipt.StoreName, receipt.Date, receipt.Total, score, rating, issues)
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM line_items WHERE receipt_id = ?`, receipt.ID); err != nil {
		return fmt.Errorf("failed to clear line items: %w", err)
	}

	for i, item := range receipt.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO line_items (id, receipt_id, position, raw_line, name, price, section)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID, receipt.ID, i, item.RawLine, item.Name, item.Price, string(item.Section))
		if err != nil {
			return fmt.Errorf("failed to save line item %q: %w", item.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit receipt: %w", err)
	}
	return nil
}

// GetReceipt loads one receipt with its items in parse order.
func (s *SQLiteStorage) GetReceipt(ctx context.Context, id string) (*model.Receipt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	receipt := &model.Receipt{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, store_name, date, total FROM receipts WHERE id = ?`, id).
		Scan(&receipt.ID, &receipt.StoreName, &receipt.Date, &receipt.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load receipt: %w", err)
	}

	receipt.Items, err = s.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// ListReceipts returns the most recently purchased receipts, newest first.
// A non-positive limit returns everything.
func (s *SQLiteStorage) ListReceipts(ctx context.Context, limit int) ([]model.Receipt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_name, date, total FROM receipts
		ORDER BY date DESC, created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var receipts []model.Receipt
	for rows.Next() {
		var receipt model.Receipt
		if err := rows.Scan(&receipt.ID, &receipt.StoreName, &receipt.Date, &receipt.Total); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	for i := range receipts {
		receipts[i].Items, err = s.loadItems(ctx, receipts[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return receipts, nil
}

func (s *SQLiteStorage) loadItems(ctx context.Context, receiptID string) ([]model.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, raw_line, name, price, section FROM line_items
		WHERE receipt_id = ? ORDER BY position`, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to load line items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.LineItem
	for rows.Next() {
		var item model.LineItem
		var section string
		if err := rows.Scan(&item.ID, &item.RawLine, &item.Name, &item.Price, &section); err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}
		item.Section = model.StorageSection(section)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate line items: %w", err)
	}
	return items, nil
}
