package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type inserter interface {
	Insert(ctx context.Context, question, answer string) error
}

// ImportResult counts what happened to each data row of an import.
type ImportResult struct {
	Inserted int
	Skipped  int
	Failed   int
}

var noHeader bool

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk load question,answer rows from a CSV file",
	Long: `Reads a CSV file with question and answer columns and appends every row to the knowledge base.
The first row is treated as a header unless --no-header is set. Rows with an empty question are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		logger := newLogger(settings)

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open CSV: %w", err)
		}
		defer file.Close() //nolint:errcheck

		repo := openRepository(cmd.Context(), settings, logger)
		result, err := importCSV(cmd.Context(), file, repo, !noHeader, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d, skipped %d, failed %d\n", result.Inserted, result.Skipped, result.Failed)
		if result.Failed > 0 {
			return fmt.Errorf("%d rows failed to import", result.Failed)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&noHeader, "no-header", false, "treat the first row as data")
	rootCmd.AddCommand(importCmd)
}

// importCSV appends each question,answer row. Extra columns are ignored.
// A failed insert is logged and counted and the import carries on.
func importCSV(ctx context.Context, r io.Reader, repo inserter, hasHeader bool, logger zerolog.Logger) (ImportResult, error) {
	var result ImportResult

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return result, fmt.Errorf("failed to read CSV: %w", err)
		}
		if line == 1 && hasHeader {
			continue
		}
		if len(record) < 2 || strings.TrimSpace(record[0]) == "" {
			logger.Warn().Int("line", line).Msg("Skipping row without question and answer")
			result.Skipped++
			continue
		}

		question := strings.TrimSpace(record[0])
		answer := strings.TrimSpace(record[1])
		if err := repo.Insert(ctx, question, answer); err != nil {
			logger.Error().Err(err).Int("line", line).Str("question", question).Msg("Failed to import row")
			result.Failed++
			continue
		}
		result.Inserted++
	}
}
