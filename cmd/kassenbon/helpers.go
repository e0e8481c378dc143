package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/kassenbon/internal/engine"
	"github.com/Veraticus/kassenbon/internal/normalize"
	"github.com/Veraticus/kassenbon/internal/storage"
	"github.com/Veraticus/kassenbon/internal/store"
	"github.com/spf13/viper"
)

// databasePath resolves the SQLite path from flag, config, or the default
// location.
func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "kassenbon", "kassenbon.db"), nil
}

// newStorage opens the database and brings its schema up to date.
func newStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}

	s, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

// newEngine builds the parse pipeline: built-in profiles plus any extra
// profiles and correction tables from the config file.
func newEngine() (*engine.Engine, error) {
	profiles := store.DefaultProfiles()

	var extra []store.Profile
	if err := viper.UnmarshalKey("stores.extra", &extra); err != nil {
		return nil, fmt.Errorf("failed to decode extra store profiles: %w", err)
	}
	profiles = append(profiles, extra...)

	registry, err := store.NewRegistry(profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to load store profiles: %w", err)
	}

	normalizer := normalize.New(
		normalize.WithStoreCorrections(viper.GetStringMapString("corrections.stores")),
		normalize.WithKeywordCorrections(viper.GetStringMapString("corrections.keywords")),
	)

	return engine.New(registry, engine.WithNormalizer(normalizer)), nil
}
