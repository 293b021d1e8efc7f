package normalize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "dollar with thousands separator", raw: "$1,234.56", want: "1234.56", ok: true},
		{name: "leading negative", raw: "-$25.00", want: "-25", ok: true},
		{name: "negative after symbol", raw: "$-25.00", want: "-25", ok: true},
		{name: "euro symbol", raw: "€50.00", want: "50", ok: true},
		{name: "pound symbol", raw: "£99.99", want: "99.99", ok: true},
		{name: "yen symbol no decimals", raw: "¥1000", want: "1000", ok: true},
		{name: "trailing currency code", raw: "45.50 USD", want: "45.5", ok: true},
		{name: "lowercase currency code", raw: "45.50 usd", want: "45.5", ok: true},
		{name: "space after symbol", raw: "$ 45.50", want: "45.5", ok: true},
		{name: "plain number", raw: "45.50", want: "45.5", ok: true},
		{name: "first numeric run wins", raw: "abc123def", want: "123", ok: true},
		{name: "trailing bare point", raw: "$45.", want: "45", ok: true},
		{name: "non numeric", raw: "Invalid", ok: false},
		{name: "empty string", raw: "", ok: false},
		{name: "whitespace only", raw: "   ", ok: false},
		{name: "symbols only", raw: "$,-", ok: false},
		{name: "over range", raw: "$999999999.99", ok: false},
		{name: "under range", raw: "-$999999999.99", ok: false},
	}

	n := NewAmountNormalizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.raw)
			require.Equal(t, tt.ok, got.Valid)
			if tt.ok {
				assert.True(t, got.Decimal.Equal(decimal.RequireFromString(tt.want)),
					"got %s, want %s", got.Decimal, tt.want)
			}
		})
	}
}

// Rounding is half away from zero: the commercial convention, applied
// symmetrically to negatives.
func TestAmountNormalizer_Rounding(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "12.345", want: "12.35"},
		{raw: "12.344", want: "12.34"},
		{raw: "12.346", want: "12.35"},
		{raw: "-12.345", want: "-12.35"},
		{raw: "0.005", want: "0.01"},
	}

	n := NewAmountNormalizer()
	for _, tt := range tests {
		got := n.Normalize(tt.raw)
		require.True(t, got.Valid, "raw %q", tt.raw)
		assert.True(t, got.Decimal.Equal(decimal.RequireFromString(tt.want)),
			"raw %q: got %s, want %s", tt.raw, got.Decimal, tt.want)
	}
}

// Exactly ±1,000,000.00 is accepted; the first cent beyond is not.
func TestAmountNormalizer_RangeBoundary(t *testing.T) {
	n := NewAmountNormalizer()

	got := n.Normalize("1000000.00")
	require.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(decimal.NewFromInt(1_000_000)))

	got = n.Normalize("-1000000.00")
	require.True(t, got.Valid)
	assert.True(t, got.Decimal.Equal(decimal.NewFromInt(-1_000_000)))

	assert.False(t, n.Normalize("1000000.01").Valid)
	assert.False(t, n.Normalize("-1000000.01").Valid)
}

func TestAmountNormalizer_CustomBounds(t *testing.T) {
	limit := decimal.NewFromInt(100)
	n := &AmountNormalizer{Min: limit.Neg(), Max: limit}

	assert.True(t, n.Normalize("$100.00").Valid)
	assert.False(t, n.Normalize("$100.01").Valid)
}

func TestAmountNormalizer_Idempotent(t *testing.T) {
	n := NewAmountNormalizer()

	first := n.Normalize("$1,234.56")
	require.True(t, first.Valid)

	second := n.Normalize(first.Decimal.StringFixed(2))
	require.True(t, second.Valid)
	assert.True(t, first.Decimal.Equal(second.Decimal))
}
