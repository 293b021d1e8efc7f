package normalize

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintidy/fintidy/internal/model"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := New()

	t.Run("fully valid record", func(t *testing.T) {
		got := n.Normalize(model.RawTransaction{
			Date:     "Jan 15, 2023",
			Merchant: "UBER *TRIP",
			Amount:   "$45.50",
			Line:     2,
		})

		assert.Equal(t, "2023-01-15", got.Date)
		assert.Equal(t, "Uber", got.Merchant)
		assert.Equal(t, "uber", got.Category)
		require.True(t, got.Amount.Valid)
		assert.True(t, got.Amount.Decimal.Equal(decimal.RequireFromString("45.50")))
		assert.True(t, got.Valid)
		assert.Empty(t, got.Errors)
		assert.Equal(t, 2, got.Line)
	})

	t.Run("fully invalid record", func(t *testing.T) {
		got := n.Normalize(model.RawTransaction{
			Date:     "Invalid Date",
			Merchant: "Random Store",
			Amount:   "Invalid",
		})

		assert.False(t, got.Valid)
		assert.Equal(t, "other", got.Category)
		assert.Equal(t, "Random Store", got.Merchant)
		require.Len(t, got.Errors, 2)
		assert.Equal(t, "invalid date: Invalid Date", got.Errors[0])
		assert.Equal(t, "invalid amount: Invalid", got.Errors[1])
	})

	t.Run("partially invalid record is still produced", func(t *testing.T) {
		got := n.Normalize(model.RawTransaction{
			Date:     "2023-06-01",
			Merchant: "STARBUCKS #1234",
			Amount:   "oops",
		})

		assert.Equal(t, "2023-06-01", got.Date)
		assert.Equal(t, "starbucks", got.Category)
		assert.False(t, got.Valid)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "invalid amount: oops", got.Errors[0])
	})

	t.Run("raw fields preserved verbatim", func(t *testing.T) {
		raw := model.RawTransaction{Date: "  01/15/2023 ", Merchant: " Uber ", Amount: " $5 "}
		got := n.Normalize(raw)

		assert.Equal(t, raw.Date, got.RawDate)
		assert.Equal(t, raw.Merchant, got.RawMerchant)
		assert.Equal(t, raw.Amount, got.RawAmount)
	})
}

// Every record must satisfy: Valid iff date and amount are both present,
// and Errors empty iff Valid.
func TestNormalizer_Invariants(t *testing.T) {
	n := New()

	raws := []model.RawTransaction{
		{Date: "2023-01-15", Merchant: "STARBUCKS", Amount: "$4.50"},
		{Date: "garbage", Merchant: "STARBUCKS", Amount: "$4.50"},
		{Date: "2023-01-15", Merchant: "STARBUCKS", Amount: "garbage"},
		{Date: "", Merchant: "", Amount: ""},
		{Date: "2024-02-29", Merchant: strings.Repeat("x", 100), Amount: "-$1,000,000.00"},
		{Date: "15/01/2023", Merchant: "PG&E", Amount: "$999999999.99"},
	}

	for i, raw := range raws {
		got := n.Normalize(raw)
		assert.Equal(t, got.Valid, got.Date != "" && got.Amount.Valid, "record %d", i)
		assert.Equal(t, got.Valid, len(got.Errors) == 0, "record %d", i)
		assert.NotEmpty(t, got.Merchant, "record %d", i)
		assert.NotEmpty(t, got.Category, "record %d", i)
	}
}

func TestNewWithConfig_Defaults(t *testing.T) {
	n := NewWithConfig(Config{})

	got := n.Normalize(model.RawTransaction{Date: "2023-01-15", Merchant: "STARBUCKS", Amount: "$4.50"})
	assert.True(t, got.Valid)
	assert.Equal(t, "starbucks", got.Category)
}

func TestNewWithConfig_CustomKnobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinYear = 2020
	cfg.MaxYear = 2020
	cfg.MaxAmount = decimal.NewFromInt(50)
	cfg.Rules = []CategoryRule{{Category: "books", Keywords: []string{"bookshop"}}}

	n := NewWithConfig(cfg)

	got := n.Normalize(model.RawTransaction{Date: "2021-01-15", Merchant: "BOOKSHOP #9", Amount: "$60.00"})
	assert.False(t, got.Valid)
	assert.Empty(t, got.Date, "year outside custom window")
	assert.False(t, got.Amount.Valid, "amount outside custom bound")
	assert.Equal(t, "books", got.Category)
}

func TestNormalizer_NormalizeBatch(t *testing.T) {
	n := New()

	raws := make([]model.RawTransaction, 100)
	for i := range raws {
		raws[i] = model.RawTransaction{
			Date:     "2023-01-15",
			Merchant: fmt.Sprintf("Store %d", i),
			Amount:   fmt.Sprintf("$%d.25", i),
			Line:     i + 2,
		}
	}

	sequential, err := n.NormalizeBatch(context.Background(), raws, 1, nil)
	require.NoError(t, err)

	var done atomic.Int64
	parallel, err := n.NormalizeBatch(context.Background(), raws, 8, func() {
		done.Add(1)
	})
	require.NoError(t, err)

	assert.Equal(t, int64(len(raws)), done.Load())
	require.Len(t, parallel, len(raws))
	for i := range raws {
		assert.Equal(t, sequential[i], parallel[i], "record %d must keep its input position", i)
	}
}

func TestNormalizer_NormalizeBatchEmpty(t *testing.T) {
	n := New()

	got, err := n.NormalizeBatch(context.Background(), nil, 4, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizer_NormalizeBatchCancelled(t *testing.T) {
	n := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.NormalizeBatch(ctx, []model.RawTransaction{{Date: "2023-01-15"}}, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
