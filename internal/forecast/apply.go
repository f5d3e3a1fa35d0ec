package forecast

import (
	"fmt"
	"math"

	"fincast/internal/model"
)

// applyGeneric computes the monetary effect of a recurring firing on the
// item itself: amount capping against a finite remaining balance, the
// interest split, and balance bookkeeping. A capped-to-zero amount means
// no transaction, so no row is staged.
func (e *Engine) applyGeneric(item *model.Item) {
	amount := item.Amount
	final := false
	if item.RemainingBalance != nil {
		amount = math.Min(item.Amount, *item.RemainingBalance)
		if amount < item.Amount {
			final = true
		}
	}
	if amount <= 0 {
		return
	}

	var interest float64
	if item.Interest > 0 {
		interest = amount * item.Interest
	}

	switch item.Type {
	case model.Expense:
		e.balance -= amount
		item.TotalPaid += amount
		if item.RemainingBalance != nil {
			*item.RemainingBalance -= amount - interest
			if final {
				// the last payment must land on exactly zero
				*item.RemainingBalance = 0
			}
		}
		item.InterestPaid += interest
	case model.Income:
		e.balance += amount
		item.TotalPaid += amount
	}

	e.stageRow(item, amount, "")
}

// applyOnetime applies a one-time item on its trigger date. With a
// target set, the amount lands on the named item instead — uncapped and
// interest-free — and the staged row reflects the target's state. A
// missing target is a fatal configuration error.
func (e *Engine) applyOnetime(item *model.Item) error {
	if name := item.Interval.Target; name != "" {
		target, ok := e.byName[name]
		if !ok {
			return fmt.Errorf("item %q: onetime target %q is not defined", item.Name, name)
		}

		switch target.Type {
		case model.Expense:
			e.balance -= item.Amount
			target.TotalPaid += item.Amount
			if target.RemainingBalance != nil && *target.RemainingBalance > 0 {
				*target.RemainingBalance -= item.Amount
			}
		case model.Income:
			e.balance += item.Amount
			target.TotalPaid += item.Amount
		}

		if target.RemainingBalance != nil && *target.RemainingBalance <= 0 {
			target.Done = true
		}

		e.stageRow(target, target.Amount, "onetime payment: "+item.Name)
		return nil
	}

	switch item.Type {
	case model.Expense:
		e.balance -= item.Amount
		item.TotalPaid += item.Amount
		zero := 0.0
		item.RemainingBalance = &zero
	case model.Income:
		e.balance += item.Amount
		item.TotalPaid += item.Amount
	}

	e.stageRow(item, item.Amount, "onetime payment")
	return nil
}

// settle runs after every firing that could have changed a remaining
// balance: it closes out the item at zero and, for expenses with
// move_payment_to set, permanently redirects the freed budget to the
// destination's per-firing amount. A destination that is already paid
// off (or has no finite balance) silently drops the freed budget.
func (e *Engine) settle(item *model.Item) error {
	if item.Done {
		return nil
	}
	if item.RemainingBalance == nil || *item.RemainingBalance > 0 {
		return nil
	}

	item.Done = true
	if e.row.Note != "" {
		e.row.Note += " balance closed."
	} else {
		e.row.Note = "balance closed."
	}

	if item.Type == model.Expense && item.MovePaymentTo != "" {
		dst, ok := e.byName[item.MovePaymentTo]
		if !ok {
			return fmt.Errorf("item %q: move_payment_to %q is not defined", item.Name, item.MovePaymentTo)
		}
		if dst.RemainingBalance != nil && *dst.RemainingBalance > 0 {
			e.log.Infof("move_payment_to: %s -> %s (remaining %.2f)", item.Name, item.MovePaymentTo, *dst.RemainingBalance)
			dst.Amount += item.Amount
			e.row.Note = "balance closed. move_payment_to: " + item.MovePaymentTo
		}
	}
	return nil
}

// stageRow fills the pending ledger row from an item's post-update state.
func (e *Engine) stageRow(item *model.Item, amount float64, note string) {
	var remaining float64
	if item.RemainingBalance != nil {
		remaining = *item.RemainingBalance
	}
	e.row = model.Row{
		Name:           item.DisplayName(),
		Amount:         amount,
		Remaining:      remaining,
		TotalPaid:      item.TotalPaid,
		TotalInterest:  item.InterestPaid,
		AccountBalance: e.balance,
		Interval:       item.Interval.Kind.String(),
		Type:           item.Type.String(),
		Note:           note,
	}
}
