package normalize

import (
	"log/slog"
	"strings"
	"time"
)

// dateLayouts is an ordered list of accepted input forms. Canonical ISO
// comes first, then month-first (US) numeric forms, textual months, and
// finally day-first numeric forms. Ambiguous numeric dates resolve to the
// earliest layout that parses, so month-first wins unless the first token
// cannot be a month.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",

	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",

	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",

	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",

	"01/02/06",
	"1/2/06",
	"01-02-06",
	"02/01/06",
	"02-01-06",
}

// DateNormalizer parses free-text dates into canonical YYYY-MM-DD form.
// Calendar validity (month ranges, day-of-month, leap years) is enforced by
// the parse itself; MinYear and MaxYear bound the plausible year window.
type DateNormalizer struct {
	MinYear int
	MaxYear int
}

// NewDateNormalizer returns a normalizer accepting years from 1900 through
// the current calendar year plus one.
func NewDateNormalizer() *DateNormalizer {
	return &DateNormalizer{MinYear: 1900, MaxYear: time.Now().Year() + 1}
}

// Normalize parses raw into canonical YYYY-MM-DD form. It reports false
// when the input is empty, unparseable, or outside the plausible year
// window; it never returns an error.
func (n *DateNormalizer) Normalize(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		slog.Debug("empty date string", "raw", raw)
		return "", false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		if t.Year() < n.MinYear || t.Year() > n.MaxYear {
			slog.Debug("date year out of plausible range",
				"raw", raw,
				"year", t.Year(),
				"min_year", n.MinYear,
				"max_year", n.MaxYear)
			return "", false
		}
		return t.Format("2006-01-02"), true
	}

	slog.Debug("unparseable date", "raw", raw)
	return "", false
}
