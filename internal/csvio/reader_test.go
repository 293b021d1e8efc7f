package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintidy/fintidy/internal/common"
)

func TestRead(t *testing.T) {
	input := strings.Join([]string{
		"date,merchant,amount",
		"2023-01-15,STARBUCKS #1234,$4.50",
		" 01/16/2023 ,  UBER *TRIP , $12.00 ",
		",,",
		"2023-01-18,Corner Shop,9.99",
	}, "\n")

	txns, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 3, "fully empty rows are skipped")

	assert.Equal(t, "2023-01-15", txns[0].Date)
	assert.Equal(t, "STARBUCKS #1234", txns[0].Merchant)
	assert.Equal(t, "$4.50", txns[0].Amount)
	assert.Equal(t, 2, txns[0].Line, "first data row is line 2")

	assert.Equal(t, "01/16/2023", txns[1].Date, "cell whitespace is trimmed")
	assert.Equal(t, "UBER *TRIP", txns[1].Merchant)
	assert.Equal(t, 3, txns[1].Line)

	assert.Equal(t, 5, txns[2].Line, "skipped rows still advance line numbers")
}

func TestRead_HeaderVariants(t *testing.T) {
	input := strings.Join([]string{
		"Merchant, DATE ,Amount,notes",
		"Corner Shop,2023-01-15,$4.50,ignore me",
	}, "\n")

	txns, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Equal(t, "2023-01-15", txns[0].Date, "columns map case-insensitively in any order")
	assert.Equal(t, "Corner Shop", txns[0].Merchant)
}

func TestRead_ShortRow(t *testing.T) {
	input := "date,merchant,amount\n2023-01-15,Corner Shop"

	txns, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Empty(t, txns[0].Amount, "missing trailing cells read as empty")
}

func TestRead_Errors(t *testing.T) {
	t.Run("missing required columns", func(t *testing.T) {
		_, err := Read(strings.NewReader("date,description\n2023-01-15,x"))
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrMissingColumns)
		assert.Contains(t, err.Error(), "merchant")
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("no header row", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		assert.ErrorIs(t, err, common.ErrNoHeader)
	})

	t.Run("header only yields empty batch", func(t *testing.T) {
		txns, err := Read(strings.NewReader("date,merchant,amount\n"))
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "nope.csv"))
		assert.ErrorIs(t, err, common.ErrFileNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := ReadFile(path)
		assert.ErrorIs(t, err, common.ErrEmptyFile)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(dir, "txns.csv")
		require.NoError(t, os.WriteFile(path, []byte("date,merchant,amount\n2023-01-15,Shop,$1.00\n"), 0o644))

		txns, err := ReadFile(path)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "Shop", txns[0].Merchant)
	})
}
