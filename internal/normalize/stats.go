package normalize

import "github.com/fintidy/fintidy/internal/model"

// Stats aggregates normalization outcomes over a batch.
type Stats struct {
	Categories   map[string]int
	Total        int
	Valid        int
	Invalid      int
	DateErrors   int
	AmountErrors int
	SuccessRate  float64
}

// CollectStats computes aggregate success metrics for a normalized batch.
// Category counts cover valid and invalid records alike, since merchant
// categorization runs regardless of overall validity.
func CollectStats(txns []model.NormalizedTransaction) Stats {
	stats := Stats{
		Total:      len(txns),
		Categories: make(map[string]int),
	}

	for _, t := range txns {
		if t.Valid {
			stats.Valid++
		} else {
			stats.Invalid++
		}
		if t.Date == "" {
			stats.DateErrors++
		}
		if !t.Amount.Valid {
			stats.AmountErrors++
		}

		category := t.Category
		if category == "" {
			category = CategoryOther
		}
		stats.Categories[category]++
	}

	if stats.Total > 0 {
		stats.SuccessRate = float64(stats.Valid) / float64(stats.Total) * 100
	}
	return stats
}
