// Package config loads budget documents (TOML or YAML) and resolves them
// into simulation-ready items. Item-local problems — malformed dates,
// unknown interval literals — are logged and the item dropped; a document
// with no expense items aborts the run before any output is produced.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fincast/internal/model"

	"github.com/sirupsen/logrus"
)

// ErrNoExpenses indicates the document has no expenses section with
// items defined. Callers treat this as a clean early exit, not a crash.
var ErrNoExpenses = errors.New("config has no expenses section with items defined")

// DateLayout is the format for all date fields in budget documents.
const DateLayout = "2006-01-02"

// defaultOutfile is where the ledger goes when global.outfile is unset.
const defaultOutfile = "budget_output.csv"

// defaultBalance is the opening balance when global.balance is unset.
const defaultBalance = 100.00

// Global mirrors the document's global section.
type Global struct {
	Balance   *float64 `toml:"balance" yaml:"balance"`
	StartDate string   `toml:"start_date" yaml:"start_date"`
	EndDate   string   `toml:"end_date" yaml:"end_date"`
	Outfile   string   `toml:"outfile" yaml:"outfile"`
	DBFile    string   `toml:"db_file" yaml:"db_file"`
}

// RawItem mirrors one item entry in the document's income or expenses
// section, before dates and interval literals are resolved.
type RawItem struct {
	Amount    float64 `toml:"amount" yaml:"amount"`
	Interval  string  `toml:"interval" yaml:"interval"`
	StartDate string  `toml:"start_date" yaml:"start_date"`
	EndDate   string  `toml:"end_date" yaml:"end_date"`

	Day       int `toml:"day" yaml:"day"`
	DayOfWeek int `toml:"day_of_week" yaml:"day_of_week"` // 0 = Monday
	Month     int `toml:"month" yaml:"month"`
	Year      int `toml:"year" yaml:"year"`

	Interest         float64  `toml:"interest" yaml:"interest"`
	RemainingBalance *float64 `toml:"remaining_balance" yaml:"remaining_balance"`
	MovePaymentTo    string   `toml:"move_payment_to" yaml:"move_payment_to"`
	Target           string   `toml:"target" yaml:"target"`
}

// document is a parsed budget file plus the key order of each section.
// Order matters: it fixes the engine's same-day processing order.
type document struct {
	Global   Global             `toml:"global" yaml:"global"`
	Income   map[string]RawItem `toml:"income" yaml:"income"`
	Expenses map[string]RawItem `toml:"expenses" yaml:"expenses"`

	incomeOrder  []string
	expenseOrder []string
}

// Budget is a fully resolved simulation input.
type Budget struct {
	OpeningBalance float64
	Start          time.Time
	End            time.Time
	Outfile        string
	DBFile         string

	// Items in processing order: income first, then expenses, each in
	// document order.
	Items []*model.Item
}

// Load reads and resolves a budget document. The format is chosen by
// file extension: .toml parses as TOML, anything else as YAML.
func Load(path string, log *logrus.Logger) (*Budget, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var doc *document
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		doc, err = parseTOML(data)
	} else {
		doc, err = parseYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return resolve(doc, log)
}

// resolve applies global defaults and builds items section by section.
func resolve(doc *document, log *logrus.Logger) (*Budget, error) {
	if len(doc.Expenses) == 0 {
		return nil, ErrNoExpenses
	}

	balance := defaultBalance
	if doc.Global.Balance != nil {
		balance = *doc.Global.Balance
	}

	start, err := ParseDate(doc.Global.StartDate)
	if err != nil {
		return nil, fmt.Errorf("global start_date: %w", err)
	}

	end := today()
	if doc.Global.EndDate != "" {
		end, err = ParseDate(doc.Global.EndDate)
		if err != nil {
			return nil, fmt.Errorf("global end_date: %w", err)
		}
	}

	outfile := doc.Global.Outfile
	if outfile == "" {
		outfile = defaultOutfile
	}

	b := &Budget{
		OpeningBalance: balance,
		Start:          start,
		End:            end,
		Outfile:        outfile,
		DBFile:         doc.Global.DBFile,
	}

	for _, name := range doc.incomeOrder {
		if it := buildItem(name, doc.Income[name], model.Income, start, end, log); it != nil {
			b.Items = append(b.Items, it)
		}
	}
	for _, name := range doc.expenseOrder {
		if it := buildItem(name, doc.Expenses[name], model.Expense, start, end, log); it != nil {
			b.Items = append(b.Items, it)
		}
	}

	return b, nil
}

// buildItem resolves one raw entry into a model item. It returns nil —
// after logging a diagnostic — when the entry cannot be used; the rest
// of the document still loads.
func buildItem(name string, raw RawItem, typ model.ItemType, globalStart, globalEnd time.Time, log *logrus.Logger) *model.Item {
	start := globalStart
	if raw.StartDate != "" {
		var err error
		start, err = ParseDate(raw.StartDate)
		if err != nil {
			log.Warnf("item %s: bad start_date %q (want YYYY-MM-DD), dropping item", name, raw.StartDate)
			return nil
		}
	}

	end := globalEnd
	if raw.EndDate != "" {
		var err error
		end, err = ParseDate(raw.EndDate)
		if err != nil {
			log.Warnf("item %s: bad end_date %q (want YYYY-MM-DD), dropping item", name, raw.EndDate)
			return nil
		}
	}

	iv := model.Interval{Start: start, End: end}
	switch raw.Interval {
	case "once":
		trigger, ok := calendarDate(raw.Year, raw.Month, raw.Day)
		if !ok {
			log.Warnf("item %s: once interval needs a valid year/month/day, dropping item", name)
			return nil
		}
		iv.Kind = model.Onetime
		iv.Date = trigger
		iv.Start = trigger
		iv.End = trigger
		iv.Target = raw.Target
	case "daily":
		iv.Kind = model.Daily
	case "weekly":
		iv.Kind = model.Weekly
		iv.DayOfWeek = raw.DayOfWeek
	case "biweekly":
		iv.Kind = model.BiWeekly
		iv.Dates = model.BiweeklyDates(start, end)
	case "monthly":
		iv.Kind = model.Monthly
		iv.Day = raw.Day
	case "yearly":
		iv.Kind = model.Yearly
		iv.Month = time.Month(raw.Month)
		iv.Day = raw.Day
	case "":
		log.Warnf("item %s: interval is required, dropping item", name)
		return nil
	default:
		log.Warnf("item %s: invalid interval %q, dropping item", name, raw.Interval)
		return nil
	}

	item := &model.Item{
		Name:          name,
		Type:          typ,
		Interval:      iv,
		Amount:        raw.Amount,
		Interest:      raw.Interest,
		MovePaymentTo: raw.MovePaymentTo,
	}
	if raw.RemainingBalance != nil {
		rb := *raw.RemainingBalance
		item.RemainingBalance = &rb
	}
	return item
}

// ParseDate parses an ISO YYYY-MM-DD date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// calendarDate builds a date from numeric parts, rejecting values that
// time.Date would silently normalize (day 32, month 13, year 0).
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
