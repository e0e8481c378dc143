package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/kassenbon/internal/cli"
	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var asJSON bool
	var save bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse one receipt's OCR text",
		Long: `Parse reads receipt text from a file (or stdin when no file is given),
runs the interpretation pipeline, and prints the structured result.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args)
			if err != nil {
				return err
			}

			e, err := newEngine()
			if err != nil {
				return err
			}

			result, err := e.Parse(cmd.Context(), text)
			if err != nil {
				return fmt.Errorf("could not interpret receipt: %w", err)
			}

			if save {
				s, storageErr := newStorage(cmd.Context())
				if storageErr != nil {
					return storageErr
				}
				defer func() { _ = s.Close() }()

				if saveErr := s.SaveReceipt(cmd.Context(), result.Receipt, result.Confidence); saveErr != nil {
					return fmt.Errorf("failed to save receipt: %w", saveErr)
				}
				cmd.Println(cli.FormatSuccess("Saved receipt " + result.Receipt.ID))
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}

			cmd.Print(cli.RenderReceipt(result.Receipt))
			cmd.Print(cli.RenderConfidence(result.Confidence))
			if result.FallbackUsed {
				cmd.Println(cli.FormatWarning("Parsed with the generic fallback grammar."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "persist the parsed receipt")
	return cmd
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
