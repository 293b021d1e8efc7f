package normalize

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencySymbols = regexp.MustCompile(`[€¥£$]`)
	currencyCodes   = regexp.MustCompile(`(?i)USD|EUR|GBP|JPY`)
	numericRun      = regexp.MustCompile(`\d+\.?\d*`)
)

// AmountNormalizer strips currency decoration from a string and produces a
// fixed-point value with two fraction digits. Values round half away from
// zero (commercial rounding: 12.345 becomes 12.35, -12.345 becomes -12.35).
// Min and Max bound accepted values inclusively.
type AmountNormalizer struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NewAmountNormalizer returns a normalizer accepting amounts within
// ±1,000,000.00, boundary included.
func NewAmountNormalizer() *AmountNormalizer {
	limit := decimal.NewFromInt(1_000_000)
	return &AmountNormalizer{Min: limit.Neg(), Max: limit}
}

// Normalize parses raw into a fixed-point amount. The result has
// Valid=false when the input is empty, contains no numeric run, or falls
// outside the accepted range; it never returns an error.
func (n *AmountNormalizer) Normalize(raw string) decimal.NullDecimal {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		slog.Debug("empty amount string", "raw", raw)
		return decimal.NullDecimal{}
	}

	// A leading minus marks the value negative; so does a minus surviving
	// anywhere after symbol stripping (covers "$-25.00").
	negative := strings.HasPrefix(cleaned, "-")

	cleaned = currencySymbols.ReplaceAllString(cleaned, "")
	cleaned = currencyCodes.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if strings.Contains(cleaned, "-") {
		negative = true
		cleaned = strings.ReplaceAll(cleaned, "-", "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	numeric := numericRun.FindString(cleaned)
	if numeric == "" {
		slog.Debug("no numeric value in amount", "raw", raw)
		return decimal.NullDecimal{}
	}
	numeric = strings.TrimSuffix(numeric, ".")
	if negative {
		numeric = "-" + numeric
	}

	value, err := decimal.NewFromString(numeric)
	if err != nil {
		slog.Debug("unparseable amount", "raw", raw, "error", err)
		return decimal.NullDecimal{}
	}
	value = value.Round(2)

	if value.LessThan(n.Min) || value.GreaterThan(n.Max) {
		slog.Debug("amount out of accepted range",
			"raw", raw,
			"value", value.String(),
			"min", n.Min.String(),
			"max", n.Max.String())
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: value, Valid: true}
}
