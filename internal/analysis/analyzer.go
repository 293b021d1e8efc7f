// Package analysis computes spending summaries over normalized
// transactions and renders them as terminal or plain-text reports. It is a
// read-only consumer of the normalization engine's output.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintidy/fintidy/internal/model"
)

// CategoryTotal is one category's aggregate spending.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	Count    int
}

// MerchantTotal is one merchant's aggregate spending.
type MerchantTotal struct {
	Merchant string
	Amount   decimal.Decimal
	Count    int
}

// Summary holds batch-wide spending statistics. Monetary figures cover
// valid transactions only.
type Summary struct {
	TotalSpending       decimal.Decimal
	AverageTransaction  decimal.Decimal
	LargestTransaction  decimal.Decimal
	SmallestTransaction decimal.Decimal
	TotalTransactions   int
	ValidTransactions   int
	InvalidTransactions int
	UniqueMerchants     int
	UniqueCategories    int
}

// Analyzer computes spending patterns from a normalized batch.
type Analyzer struct {
	all   []model.NormalizedTransaction
	valid []model.NormalizedTransaction
}

// New creates an analyzer over a normalized batch.
func New(txns []model.NormalizedTransaction) *Analyzer {
	a := &Analyzer{all: txns}
	for _, t := range txns {
		if t.Valid {
			a.valid = append(a.valid, t)
		}
	}
	return a
}

// TotalSpending sums all valid transaction amounts.
func (a *Analyzer) TotalSpending() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a.valid {
		total = total.Add(t.Amount.Decimal)
	}
	return total
}

// SpendingByCategory sums valid transaction amounts per category.
func (a *Analyzer) SpendingByCategory() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range a.valid {
		totals[t.Category] = totals[t.Category].Add(t.Amount.Decimal)
	}
	return totals
}

// TopCategories returns the n highest-spending categories, largest first.
// Ties order alphabetically so output is deterministic.
func (a *Analyzer) TopCategories(n int) []CategoryTotal {
	counts := make(map[string]int)
	for _, t := range a.valid {
		counts[t.Category]++
	}

	totals := a.SpendingByCategory()
	out := make([]CategoryTotal, 0, len(totals))
	for category, amount := range totals {
		out = append(out, CategoryTotal{Category: category, Amount: amount, Count: counts[category]})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// TopMerchants returns the n highest-spending merchants, largest first.
func (a *Analyzer) TopMerchants(n int) []MerchantTotal {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, t := range a.valid {
		totals[t.Merchant] = totals[t.Merchant].Add(t.Amount.Decimal)
		counts[t.Merchant]++
	}

	out := make([]MerchantTotal, 0, len(totals))
	for merchant, amount := range totals {
		out = append(out, MerchantTotal{Merchant: merchant, Amount: amount, Count: counts[merchant]})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Merchant < out[j].Merchant
	})

	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Summarize computes batch-wide statistics.
func (a *Analyzer) Summarize() Summary {
	s := Summary{
		TotalTransactions:   len(a.all),
		ValidTransactions:   len(a.valid),
		InvalidTransactions: len(a.all) - len(a.valid),
	}
	if len(a.valid) == 0 {
		return s
	}

	merchants := make(map[string]struct{})
	categories := make(map[string]struct{})
	for i, t := range a.valid {
		amount := t.Amount.Decimal
		s.TotalSpending = s.TotalSpending.Add(amount)
		if i == 0 || amount.GreaterThan(s.LargestTransaction) {
			s.LargestTransaction = amount
		}
		if i == 0 || amount.LessThan(s.SmallestTransaction) {
			s.SmallestTransaction = amount
		}
		merchants[t.Merchant] = struct{}{}
		categories[t.Category] = struct{}{}
	}

	s.AverageTransaction = s.TotalSpending.Div(decimal.NewFromInt(int64(len(a.valid)))).Round(2)
	s.UniqueMerchants = len(merchants)
	s.UniqueCategories = len(categories)
	return s
}
