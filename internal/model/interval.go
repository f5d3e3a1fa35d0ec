// Package model defines domain types for fincast budget items and ledger rows.
package model

import "time"

// Kind identifies one of the six recurrence shapes an interval can have.
type Kind int

const (
	Onetime Kind = iota
	Daily
	Weekly
	BiWeekly
	Monthly
	Yearly
)

// String returns the ledger display name for the kind.
func (k Kind) String() string {
	switch k {
	case Onetime:
		return "OnetimeInterval"
	case Daily:
		return "DailyInterval"
	case Weekly:
		return "WeeklyInterval"
	case BiWeekly:
		return "BiWeeklyInterval"
	case Monthly:
		return "MonthlyInterval"
	case Yearly:
		return "YearlyInterval"
	default:
		return "UnknownInterval"
	}
}

// Interval describes when an item fires. Kind selects the active variant;
// the variant fields below are meaningful only for their own kind. Start
// and End bound every variant — outside them the item never fires, no
// matter what the recurrence says. A zero Start or End means unbounded.
type Interval struct {
	Kind  Kind
	Start time.Time
	End   time.Time

	// Onetime
	Date   time.Time // the single trigger date
	Target string    // apply the payment to this item instead of the owner

	// Weekly; 0 = Monday, 6 = Sunday
	DayOfWeek int

	// Monthly and Yearly
	Day   int
	Month time.Month // Yearly only

	// BiWeekly: firing dates precomputed at construction time
	Dates []time.Time
}

// BiweeklyDates generates firing dates by stepping 14 days from start
// up to but excluding end.
func BiweeklyDates(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 14) {
		dates = append(dates, d)
	}
	return dates
}
