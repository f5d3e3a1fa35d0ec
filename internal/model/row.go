package model

import "time"

// Row is one emitted ledger record: the effect of a single transaction
// on the firing item's totals and the account balance. Numeric fields
// render with two decimals and blank out when zero.
type Row struct {
	Date           time.Time
	Name           string
	Amount         float64
	Remaining      float64
	TotalPaid      float64
	TotalInterest  float64
	AccountBalance float64
	Interval       string
	Type           string
	Note           string
}
