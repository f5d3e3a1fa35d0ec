package ledger

import (
	"fincast/internal/forecast"
	"fincast/internal/model"
)

// Tee fans each row out to multiple sinks, stopping at the first error.
type Tee []forecast.Sink

// Write sends the row to every sink in order.
func (t Tee) Write(row model.Row) error {
	for _, s := range t {
		if err := s.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Memory collects rows in order, for the summary command and tests.
type Memory struct {
	Rows []model.Row
}

// Write appends the row.
func (m *Memory) Write(row model.Row) error {
	m.Rows = append(m.Rows, row)
	return nil
}
