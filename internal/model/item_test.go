package model

import (
	"testing"
	"time"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"underscores", "car_loan", "Car Loan"},
		{"single word", "rent", "Rent"},
		{"already spaced", "student loan", "Student Loan"},
		{"mixed case", "CREDIT_card", "Credit Card"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{Name: tt.key}
			if got := it.DisplayName(); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestBiweeklyDates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC) // exactly 4 steps in

	dates := BiweeklyDates(start, end)
	if len(dates) != 4 {
		t.Fatalf("got %d dates, want 4: %v", len(dates), dates)
	}
	if !dates[0].Equal(start) {
		t.Errorf("first date = %v, want start %v", dates[0], start)
	}
	for i := 1; i < len(dates); i++ {
		if got := dates[i].Sub(dates[i-1]); got != 14*24*time.Hour {
			t.Errorf("step %d = %v, want 14 days", i, got)
		}
	}
	// end date itself is excluded
	for _, d := range dates {
		if !d.Before(end) {
			t.Errorf("date %v is not before end %v", d, end)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Onetime, "OnetimeInterval"},
		{Daily, "DailyInterval"},
		{Weekly, "WeeklyInterval"},
		{BiWeekly, "BiWeeklyInterval"},
		{Monthly, "MonthlyInterval"},
		{Yearly, "YearlyInterval"},
		{Kind(99), "UnknownInterval"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
