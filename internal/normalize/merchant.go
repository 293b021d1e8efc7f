package normalize

import (
	"log/slog"
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMatchThreshold is the minimum partial-ratio score (0-100) a
// keyword must reach to qualify as a merchant match.
const DefaultMatchThreshold = 85

// maxDisplayLength bounds unmatched display names before truncation.
const maxDisplayLength = 50

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// MerchantNormalizer cleans raw merchant strings and assigns categories by
// fuzzy-matching against an ordered knowledge base. It never fails: inputs
// with no qualifying match fall back to the "other" category.
type MerchantNormalizer struct {
	Rules     []CategoryRule
	Threshold int
}

// NewMerchantNormalizer returns a normalizer using the built-in knowledge
// base and the default acceptance threshold.
func NewMerchantNormalizer() *MerchantNormalizer {
	return &MerchantNormalizer{Rules: DefaultRules(), Threshold: DefaultMatchThreshold}
}

// Normalize returns a display name and category for a raw merchant string.
// Matched merchants display the matched keyword title-cased; unmatched ones
// display the trimmed input title-cased, truncated past 50 characters.
func (n *MerchantNormalizer) Normalize(raw string) (string, string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		slog.Debug("empty merchant string", "raw", raw)
		return "Unknown", CategoryOther
	}

	caser := cases.Title(language.English)

	if key := comparisonKey(trimmed); key != "" {
		bestScore := 0
		bestKeyword := ""
		bestCategory := ""

		for _, rule := range n.Rules {
			for _, keyword := range rule.Keywords {
				score := fuzzy.PartialRatio(key, strings.ToLower(keyword))
				// Strict greater-than: ties keep the first
				// qualifying keyword in rule order.
				if score >= n.Threshold && score > bestScore {
					bestScore = score
					bestKeyword = keyword
					bestCategory = rule.Category
				}
			}
		}

		if bestCategory != "" {
			return caser.String(bestKeyword), bestCategory
		}
	}

	if runes := []rune(trimmed); len(runes) >= maxDisplayLength {
		return string(runes[:maxDisplayLength]) + "...", CategoryOther
	}
	return caser.String(trimmed), CategoryOther
}

// comparisonKey reduces a merchant string to lowercase alphanumeric words
// for matching. The key is never used for display.
func comparisonKey(s string) string {
	key := nonAlphanumeric.ReplaceAllString(s, "")
	key = whitespaceRun.ReplaceAllString(key, " ")
	return strings.ToLower(strings.TrimSpace(key))
}
