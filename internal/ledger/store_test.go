package ledger

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Write(sampleRow()); err != nil {
		t.Fatal(err)
	}
	row := sampleRow()
	row.Note = "onetime payment"
	if err := s.Write(row); err != nil {
		t.Fatal(err)
	}

	count, err := s.RowCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestStoreClearsPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(sampleRow()); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = s.Close() }()

	count, err := s.RowCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 after reopen", count)
	}
}
