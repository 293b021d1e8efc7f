// Package model defines the transaction types exchanged between the CSV
// adapter, the normalization engine, and the analysis layer.
package model

// RawTransaction is a single unparsed row from an input file. All fields are
// untrusted free text and may be empty. Line is the originating CSV line
// number, carried only for diagnostics.
type RawTransaction struct {
	Date     string
	Merchant string
	Amount   string
	Line     int
}
