package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
// A database that cannot be migrated to this version is a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS receipts (
					id TEXT PRIMARY KEY,
					store_name TEXT,
					date DATETIME NOT NULL,
					total REAL NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_receipts_date ON receipts(date)`,
				`CREATE INDEX idx_receipts_store ON receipts(store_name)`,

				`CREATE TABLE IF NOT EXISTS line_items (
					id TEXT PRIMARY KEY,
					receipt_id TEXT NOT NULL,
					position INTEGER NOT NULL,
					raw_line TEXT,
					name TEXT NOT NULL,
					price REAL NOT NULL,
					section TEXT NOT NULL,
					FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_line_items_receipt ON line_items(receipt_id)`,
				`CREATE INDEX idx_line_items_section ON line_items(section)`,

				`CREATE TABLE IF NOT EXISTS corrections (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					receipt_id TEXT NOT NULL,
					item_id TEXT NOT NULL,
					name TEXT NOT NULL,
					section TEXT NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_corrections_name ON corrections(name)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Store confidence alongside receipts",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`ALTER TABLE receipts ADD COLUMN score REAL`,
				`ALTER TABLE receipts ADD COLUMN rating TEXT`,
				`ALTER TABLE receipts ADD COLUMN issues TEXT`,
			}
			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending schema migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
