package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/Veraticus/kassenbon/internal/model"
	"github.com/Veraticus/kassenbon/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "batch <directory>",
		Short: "Parse every .txt receipt in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := filepath.Glob(filepath.Join(args[0], "*.txt"))
			if err != nil {
				return fmt.Errorf("failed to list directory: %w", err)
			}
			if len(files) == 0 {
				return fmt.Errorf("no .txt files found in %s", args[0])
			}
			sort.Strings(files)

			e, err := newEngine()
			if err != nil {
				return err
			}

			var s *storage.SQLiteStorage
			if save {
				if s, err = newStorage(cmd.Context()); err != nil {
					return err
				}
				defer func() { _ = s.Close() }()
			}

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Parsing receipts..."),
			)

			ratings := make(map[model.ConfidenceRating]int)
			failed := 0
			for _, file := range files {
				data, readErr := os.ReadFile(file) // #nosec G304
				if readErr != nil {
					return fmt.Errorf("failed to read %s: %w", file, readErr)
				}

				result, parseErr := e.Parse(cmd.Context(), string(data))
				if parseErr != nil {
					failed++
					_ = bar.Add(1)
					continue
				}

				ratings[result.Confidence.Rating]++
				if save {
					if saveErr := s.SaveReceipt(cmd.Context(), result.Receipt, result.Confidence); saveErr != nil {
						return fmt.Errorf("failed to save %s: %w", file, saveErr)
					}
				}
				_ = bar.Add(1)
			}

			cmd.Println()
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Parsed %d of %d receipts", len(files)-failed, len(files))))
			cmd.Printf("  high: %d  medium: %d  low: %d  failed: %d\n",
				ratings[model.RatingHigh], ratings[model.RatingMedium], ratings[model.RatingLow], failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist every parsed receipt")
	return cmd
}
