// Package csvio implements the CSV boundary: reading raw transaction rows
// and writing cleaned output. Structural problems (missing file, missing
// columns, malformed rows) are hard errors raised before the normalization
// engine ever sees a record.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fintidy/fintidy/internal/common"
	"github.com/fintidy/fintidy/internal/model"
)

// requiredColumns must all appear in the header row, case-insensitively.
var requiredColumns = []string{"date", "merchant", "amount"}

// ReadFile reads raw transactions from a CSV file on disk.
func ReadFile(path string) ([]model.RawTransaction, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrFileNotFound, path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyFile, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("failed to close input file", "path", path, "error", closeErr)
		}
	}()

	txns, err := Read(f)
	if err != nil {
		return nil, err
	}
	slog.Info("parsed transactions", "path", path, "count", len(txns))
	return txns, nil
}

// Read parses raw transactions from CSV data. The first row must be a
// header containing the date, merchant, and amount columns in any order.
// Fully empty rows are skipped; each returned record carries its
// originating line number, counting the header as line 1.
func Read(r io.Reader) ([]model.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, common.ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumns, strings.Join(missing, ", "))
	}

	var txns []model.RawTransaction
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", line, err)
		}

		if emptyRow(record) {
			slog.Debug("skipping empty row", "line", line)
			continue
		}

		txns = append(txns, model.RawTransaction{
			Date:     cell(record, index["date"]),
			Merchant: cell(record, index["merchant"]),
			Amount:   cell(record, index["amount"]),
			Line:     line,
		})
	}
	return txns, nil
}

func emptyRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
