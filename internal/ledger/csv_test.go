package ledger

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"fincast/internal/model"
)

func sampleRow() model.Row {
	return model.Row{
		Date:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Name:           "Car Loan",
		Amount:         200,
		Remaining:      810,
		TotalPaid:      200,
		TotalInterest:  10,
		AccountBalance: 800,
		Interval:       "MonthlyInterval",
		Type:           "EXPENSE",
		Note:           "",
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return records
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(sampleRow()); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	records := readAll(t, path)
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}
	if !reflect.DeepEqual(records[0], columns) {
		t.Errorf("header = %v", records[0])
	}
	want := []string{"2024-01-01", "Car Loan", "200.00", "810.00", "200.00", "10.00", "800.00", "MonthlyInterval", "EXPENSE", ""}
	if !reflect.DeepEqual(records[1], want) {
		t.Errorf("row = %v, want %v", records[1], want)
	}
}

func TestCSVWriterBlanksZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	row := sampleRow()
	row.Remaining = 0      // paid off
	row.AccountBalance = 0 // exactly broke
	row.TotalInterest = 0  // no interest
	if err := w.Write(row); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	records := readAll(t, path)
	got := records[1]
	if got[3] != "" || got[5] != "" || got[6] != "" {
		t.Errorf("zero cells not blanked: %v", got)
	}
	if got[2] != "200.00" {
		t.Errorf("amount = %q, want 200.00", got[2])
	}
}

func TestCSVWriterRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Remove(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("partial ledger file still exists")
	}
}

func TestTeeAndMemory(t *testing.T) {
	var a, b Memory
	tee := Tee{&a, &b}

	if err := tee.Write(sampleRow()); err != nil {
		t.Fatal(err)
	}
	if len(a.Rows) != 1 || len(b.Rows) != 1 {
		t.Errorf("fan-out failed: %d, %d", len(a.Rows), len(b.Rows))
	}
	if !reflect.DeepEqual(a.Rows, b.Rows) {
		t.Error("sinks saw different rows")
	}
}
