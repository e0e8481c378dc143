package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/kassenbon/internal/model"
)

// SaveCorrection records a manual re-sectioning of a line item. Corrections
// are append-only: they feed the classifier's rule data and are never read
// back by the parse pipeline itself.
func (s *SQLiteStorage) SaveCorrection(ctx context.Context, correction *model.SectionCorrection) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateCorrection(correction); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE line_items SET section = ? WHERE id = ? AND receipt_id = ?`,
		string(correction.Section), correction.ItemID, correction.ReceiptID)
	if err != nil {
		return fmt.Errorf("failed to update line item section: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO corrections (receipt_id, item_id, name, section, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		correction.ReceiptID, correction.ItemID, correction.Name,
		string(correction.Section), correction.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save correction: %w", err)
	}
	return nil
}

// GetCorrections returns all recorded corrections, oldest first.
func (s *SQLiteStorage) GetCorrections(ctx context.Context) ([]model.SectionCorrection, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT receipt_id, item_id, name, section, created_at FROM corrections
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load corrections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var corrections []model.SectionCorrection
	for rows.Next() {
		var correction model.SectionCorrection
		var section string
		if err := rows.Scan(&correction.ReceiptID, &correction.ItemID,
			&correction.Name, &section, &correction.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		correction.Section = model.StorageSection(section)
		corrections = append(corrections, correction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate corrections: %w", err)
	}
	return corrections, nil
}
