package model

import "github.com/shopspring/decimal"

// NormalizedTransaction is the result of normalizing one RawTransaction.
// It is produced exactly once per raw record and never mutated afterwards.
//
// Invariants: Valid == (Date != "" && Amount.Valid), and Errors is empty
// iff Valid.
type NormalizedTransaction struct {
	// Verbatim copies of the input, kept for diagnostics.
	RawDate     string
	RawMerchant string
	RawAmount   string

	// Date is the canonical YYYY-MM-DD form, or empty when the raw date
	// was unparseable or implausible.
	Date string

	// Merchant is the cleaned display name. Always set.
	Merchant string

	// Category is one of the knowledge-base category keys, or "other".
	// Always set.
	Category string

	// Amount is the fixed-point value with two fraction digits.
	// Amount.Valid is false when the raw amount was rejected.
	Amount decimal.NullDecimal

	// Errors lists rejection reasons in fixed order: date first, then
	// amount. Merchant normalization never contributes an error.
	Errors []string

	Line  int
	Valid bool
}
