package model

import "strings"

// ItemType distinguishes money coming in from money going out.
type ItemType int

const (
	Income ItemType = iota
	Expense
)

// String returns the ledger display name for the item type.
func (t ItemType) String() string {
	if t == Income {
		return "INCOME"
	}
	return "EXPENSE"
}

// Item is one budget entry under simulation. The engine mutates it in
// place: TotalPaid and InterestPaid only ever grow, RemainingBalance
// never goes below zero, and Done is terminal.
type Item struct {
	Name     string
	Type     ItemType
	Interval Interval

	// Amount is paid per firing. It can grow mid-run when another
	// item's payoff is redirected here via MovePaymentTo.
	Amount       float64
	TotalPaid    float64
	Interest     float64 // per-firing rate as a fraction, 0 = none
	InterestPaid float64

	// RemainingBalance is the outstanding amount on a finite,
	// amortizing obligation. nil means the item recurs indefinitely.
	RemainingBalance *float64

	// MovePaymentTo names the item whose per-firing amount absorbs
	// this item's Amount once it is paid off.
	MovePaymentTo string

	Done bool
}

// DisplayName returns the human-readable form of the item key:
// underscores become spaces and each word is title-cased.
func (it *Item) DisplayName() string {
	words := strings.Split(strings.ReplaceAll(it.Name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
