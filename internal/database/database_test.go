package database

import (
	"path/filepath"
	"testing"
)

func TestDBPath(t *testing.T) {
	want := filepath.Join("data", "surfcast.db")
	if got := DBPath(); got != want {
		t.Errorf("DBPath() = %s, want %s", got, want)
	}
}

func TestOpen(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("querying journal mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %s, want wal", mode)
	}
}
