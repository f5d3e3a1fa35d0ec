// Package ledger provides output sinks for forecast rows: the CSV file,
// an optional SQLite database, and helpers for fan-out and collection.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"

	"fincast/internal/cli"
	"fincast/internal/config"
	"fincast/internal/model"
)

// columns is the ledger column set, in output order.
var columns = []string{
	"date", "name", "amount", "remaining", "total_paid",
	"total_interest", "account_balance", "interval", "type", "note",
}

// CSVWriter writes ledger rows to a delimited file. The file is only
// finalized on Close; Remove discards it after a failed run.
type CSVWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewCSVWriter creates the output file and writes the header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating ledger file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("writing ledger header: %w", err)
	}
	return &CSVWriter{path: path, f: f, w: w}, nil
}

// Write appends one formatted row.
func (c *CSVWriter) Write(row model.Row) error {
	return c.w.Write([]string{
		row.Date.Format(config.DateLayout),
		row.Name,
		cli.FormatCell(row.Amount),
		cli.FormatCell(row.Remaining),
		cli.FormatCell(row.TotalPaid),
		cli.FormatCell(row.TotalInterest),
		cli.FormatCell(row.AccountBalance),
		row.Interval,
		row.Type,
		row.Note,
	})
}

// Close flushes and closes the file.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	flushErr := c.w.Error()
	if err := c.f.Close(); err != nil {
		return err
	}
	return flushErr
}

// Remove deletes the (partial) output file.
func (c *CSVWriter) Remove() error {
	return os.Remove(c.path)
}
