package ledger

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fincast/internal/config"
	"fincast/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store is a SQLite-backed ledger sink, enabled by global.db_file.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the ledger database at the given path and
// clears any rows from a previous run.
func OpenStore(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.Exec("DELETE FROM ledger"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clearing previous run: %w", err)
	}

	return &Store{db: db}, nil
}

// Write inserts one ledger row.
func (s *Store) Write(row model.Row) error {
	_, err := s.db.Exec(`INSERT INTO ledger
		(date, name, amount, remaining, total_paid, total_interest,
		 account_balance, interval, type, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Date.Format(config.DateLayout), row.Name, row.Amount, row.Remaining,
		row.TotalPaid, row.TotalInterest, row.AccountBalance,
		row.Interval, row.Type, row.Note,
	)
	return err
}

// RowCount returns the number of stored ledger rows.
func (s *Store) RowCount() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM ledger").Scan(&count)
	return count, err
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}
