package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fintidy/fintidy/internal/model"
)

var cleanedColumns = []string{"date", "merchant", "amount", "category"}

// WriteCleanedFile writes the valid transactions from a normalized batch to
// a CSV file, creating parent directories as needed. It returns the number
// of records written.
func WriteCleanedFile(path string, txns []model.NormalizedTransaction) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close output file", "path", path, "error", closeErr)
		}
	}()

	count, err := WriteCleaned(f, txns)
	if err != nil {
		return 0, err
	}
	slog.Info("wrote cleaned transactions", "path", path, "count", count)
	return count, nil
}

// WriteCleaned writes valid transactions as CSV with date, merchant,
// amount, and category columns. Invalid records are skipped, never dropped
// silently upstream: callers report them from the batch stats.
func WriteCleaned(w io.Writer, txns []model.NormalizedTransaction) (int, error) {
	cw := csv.NewWriter(w)

	if err := cw.Write(cleanedColumns); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	count := 0
	for _, t := range txns {
		if !t.Valid {
			continue
		}
		row := []string{t.Date, t.Merchant, t.Amount.Decimal.StringFixed(2), t.Category}
		if err := cw.Write(row); err != nil {
			return count, fmt.Errorf("failed to write row %d: %w", t.Line, err)
		}
		count++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return count, fmt.Errorf("failed to flush csv: %w", err)
	}
	return count, nil
}
