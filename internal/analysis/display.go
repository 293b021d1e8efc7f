package analysis

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryDisplayNames maps category keys to friendly report labels.
var CategoryDisplayNames = map[string]string{
	"uber":          "Transportation (Uber)",
	"amazon":        "Shopping (Amazon)",
	"starbucks":     "Coffee & Cafes",
	"target":        "Shopping (Target)",
	"mcdonalds":     "Fast Food",
	"gas_station":   "Gas & Fuel",
	"grocery":       "Groceries",
	"restaurant":    "Restaurants",
	"utility":       "Utilities",
	"entertainment": "Entertainment",
	"other":         "Other/Uncategorized",
}

// DisplayName returns the friendly label for a category key, title-casing
// unknown keys.
func DisplayName(category string) string {
	if name, ok := CategoryDisplayNames[category]; ok {
		return name
	}
	return cases.Title(language.English).String(category)
}

// FormatCurrency renders an amount as $1,234.56, with the sign ahead of
// the symbol for negative values.
func FormatCurrency(amount decimal.Decimal) string {
	s := groupThousands(amount.Abs().StringFixed(2))
	if amount.IsNegative() {
		return "-$" + s
	}
	return "$" + s
}

// groupThousands inserts comma separators into the integer part of a
// non-negative fixed-point string.
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
