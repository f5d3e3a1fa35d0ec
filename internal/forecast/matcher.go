package forecast

import (
	"time"

	"fincast/internal/model"
)

// fires reports whether a recurring interval triggers on day. It is a
// pure predicate: bounds first, then the variant's recurrence rule.
// Onetime intervals are dispatched by the driver, not here.
func fires(iv model.Interval, day time.Time) bool {
	if !inBounds(iv, day) {
		return false
	}
	switch iv.Kind {
	case model.Daily:
		return true
	case model.Weekly:
		return mondayWeekday(day) == iv.DayOfWeek
	case model.BiWeekly:
		for _, d := range iv.Dates {
			if d.Equal(day) {
				return true
			}
		}
		return false
	case model.Monthly:
		return day.Day() == iv.Day
	case model.Yearly:
		return day.Day() == iv.Day && day.Month() == iv.Month
	}
	return false
}

// mondayWeekday converts Go's Sunday-based weekday to the 0=Monday
// convention used by config day_of_week fields.
func mondayWeekday(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}
