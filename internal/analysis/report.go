package analysis

import (
	"fmt"
	"strings"

	"github.com/fintidy/fintidy/internal/cli"
)

const reportWidth = 80

// RenderReport renders a styled terminal report: overview, top spending
// categories, and top merchants.
func RenderReport(a *Analyzer) string {
	s := a.Summarize()

	var b strings.Builder
	b.WriteString(cli.BoxStyle.Render(cli.FormatTitle("Financial Transaction Analysis Report")))
	b.WriteString("\n\n")

	b.WriteString(cli.BoldStyle.Render("Overview"))
	b.WriteString("\n")
	validPct := 0.0
	if s.TotalTransactions > 0 {
		validPct = float64(s.ValidTransactions) / float64(s.TotalTransactions) * 100
	}
	overview := [][2]string{
		{"Total Transactions", fmt.Sprintf("%d", s.TotalTransactions)},
		{"Valid Transactions", fmt.Sprintf("%d (%.1f%%)", s.ValidTransactions, validPct)},
		{"Invalid Transactions", fmt.Sprintf("%d", s.InvalidTransactions)},
		{"Total Spending", FormatCurrency(s.TotalSpending)},
		{"Average Transaction", FormatCurrency(s.AverageTransaction)},
		{"Largest Transaction", FormatCurrency(s.LargestTransaction)},
		{"Smallest Transaction", FormatCurrency(s.SmallestTransaction)},
		{"Unique Merchants", fmt.Sprintf("%d", s.UniqueMerchants)},
		{"Unique Categories", fmt.Sprintf("%d", s.UniqueCategories)},
	}
	for _, row := range overview {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", row[0], cli.SuccessStyle.Render(row[1])))
	}

	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Top Spending Categories"))
	b.WriteString("\n")
	total := s.TotalSpending
	for rank, ct := range a.TopCategories(5) {
		pct := 0.0
		if !total.IsZero() {
			pctDec, _ := ct.Amount.Div(total).Float64()
			pct = pctDec * 100
		}
		b.WriteString(fmt.Sprintf("  #%-3d %-28s %14s  %4d txns  %5.1f%%\n",
			rank+1, DisplayName(ct.Category), FormatCurrency(ct.Amount), ct.Count, pct))
	}

	b.WriteString("\n")
	b.WriteString(cli.BoldStyle.Render("Top Merchants"))
	b.WriteString("\n")
	for rank, mt := range a.TopMerchants(5) {
		b.WriteString(fmt.Sprintf("  #%-3d %-28s %14s  %4d txns\n",
			rank+1, mt.Merchant, FormatCurrency(mt.Amount), mt.Count))
	}

	return b.String()
}

// TextReport renders an unstyled report suitable for writing to a file.
func TextReport(a *Analyzer) string {
	s := a.Summarize()
	rule := strings.Repeat("=", reportWidth)
	thinRule := strings.Repeat("-", reportWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("FINANCIAL TRANSACTION ANALYSIS REPORT\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("OVERVIEW\n")
	b.WriteString(thinRule + "\n")
	validPct := 0.0
	if s.TotalTransactions > 0 {
		validPct = float64(s.ValidTransactions) / float64(s.TotalTransactions) * 100
	}
	b.WriteString(fmt.Sprintf("Total Transactions:    %d\n", s.TotalTransactions))
	b.WriteString(fmt.Sprintf("Valid Transactions:    %d (%.1f%%)\n", s.ValidTransactions, validPct))
	b.WriteString(fmt.Sprintf("Invalid Transactions:  %d\n", s.InvalidTransactions))
	b.WriteString(fmt.Sprintf("Total Spending:        %s\n", FormatCurrency(s.TotalSpending)))
	b.WriteString(fmt.Sprintf("Average Transaction:   %s\n", FormatCurrency(s.AverageTransaction)))
	b.WriteString(fmt.Sprintf("Largest Transaction:   %s\n", FormatCurrency(s.LargestTransaction)))
	b.WriteString(fmt.Sprintf("Smallest Transaction:  %s\n", FormatCurrency(s.SmallestTransaction)))
	b.WriteString(fmt.Sprintf("Unique Merchants:      %d\n", s.UniqueMerchants))
	b.WriteString(fmt.Sprintf("Unique Categories:     %d\n\n", s.UniqueCategories))

	b.WriteString("TOP SPENDING CATEGORIES\n")
	b.WriteString(thinRule + "\n")
	total := s.TotalSpending
	for rank, ct := range a.TopCategories(5) {
		pct := 0.0
		if !total.IsZero() {
			pctDec, _ := ct.Amount.Div(total).Float64()
			pct = pctDec * 100
		}
		b.WriteString(fmt.Sprintf("%d. %-30s %15s (%3d transactions, %5.1f%%)\n",
			rank+1, DisplayName(ct.Category), FormatCurrency(ct.Amount), ct.Count, pct))
	}
	b.WriteString("\n")

	b.WriteString("TOP MERCHANTS\n")
	b.WriteString(thinRule + "\n")
	for rank, mt := range a.TopMerchants(10) {
		b.WriteString(fmt.Sprintf("%2d. %-30s %15s (%3d transactions)\n",
			rank+1, mt.Merchant, FormatCurrency(mt.Amount), mt.Count))
	}
	b.WriteString("\n" + rule + "\n")

	return b.String()
}
