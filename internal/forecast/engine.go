// Package forecast implements the day-by-day budget simulation: interval
// matching, payment application, one-time targeting, and payoff chaining.
package forecast

import (
	"fmt"
	"time"

	"fincast/internal/model"

	"github.com/sirupsen/logrus"
)

// Sink receives ledger rows as the simulation emits them.
type Sink interface {
	Write(model.Row) error
}

// Engine drives the simulation over a date range. Items are processed in
// a fixed order every day — all income items in document order, then all
// expense items in document order. The order is load-bearing: when one
// item's firing mutates another item the same day, the mutation is
// visible only to items processed afterwards.
type Engine struct {
	balance float64
	start   time.Time
	end     time.Time
	order   []*model.Item
	byName  map[string]*model.Item
	log     *logrus.Logger

	// row staged for the item currently being processed; emitted at the
	// end of the item's turn only when a transaction populated it.
	row model.Row
}

// New returns an engine over items, which must already be in processing
// order (income first, then expenses, each in document order).
func New(opening float64, start, end time.Time, items []*model.Item, log *logrus.Logger) *Engine {
	byName := make(map[string]*model.Item, len(items))
	for _, it := range items {
		byName[it.Name] = it
	}
	return &Engine{
		balance: opening,
		start:   start,
		end:     end,
		order:   items,
		byName:  byName,
		log:     log,
	}
}

// Balance returns the account balance at the current point of the run.
func (e *Engine) Balance() float64 {
	return e.balance
}

// Items returns the items in processing order.
func (e *Engine) Items() []*model.Item {
	return e.order
}

// Run simulates every day in [start, end) and writes one ledger row per
// triggered transaction to sink. It returns an error on a dangling
// target or move_payment_to reference; the run cannot continue safely
// past an inconsistent configuration.
func (e *Engine) Run(sink Sink) error {
	for day := e.start; day.Before(e.end); day = day.AddDate(0, 0, 1) {
		for _, item := range e.order {
			e.row = model.Row{}

			if item.Done {
				continue
			}
			if !item.Interval.End.IsZero() && day.After(item.Interval.End) {
				item.Done = true
				continue
			}
			if !inBounds(item.Interval, day) {
				continue
			}

			switch item.Interval.Kind {
			case model.Onetime:
				if day.Equal(item.Interval.Date) {
					if err := e.applyOnetime(item); err != nil {
						return err
					}
					item.Done = true
				}
			case model.Daily, model.Weekly, model.BiWeekly, model.Monthly, model.Yearly:
				if fires(item.Interval, day) {
					e.applyGeneric(item)
				}
			default:
				return fmt.Errorf("item %q: unknown interval kind %d", item.Name, item.Interval.Kind)
			}

			if err := e.settle(item); err != nil {
				return err
			}

			if e.row.Name != "" {
				e.row.Date = day
				if err := sink.Write(e.row); err != nil {
					return fmt.Errorf("writing ledger row: %w", err)
				}
			}
		}
	}
	return nil
}

// inBounds reports whether day falls within the interval's active range.
func inBounds(iv model.Interval, day time.Time) bool {
	if !iv.Start.IsZero() && day.Before(iv.Start) {
		return false
	}
	if !iv.End.IsZero() && day.After(iv.End) {
		return false
	}
	return true
}
