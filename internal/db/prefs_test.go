package db

import (
	"database/sql"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	t.Setenv(dataDirEnv, t.TempDir())
	conn, err := OpenDatabase()
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestConfigRoundTrip(t *testing.T) {
	conn := openTestDB(t)

	value, err := GetConfig(conn, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if value != "" {
		t.Fatalf("missing key: got %q want empty", value)
	}

	if err := SetConfig(conn, "theme", "forest"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := SetConfig(conn, "theme", "meadow"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, err = GetConfig(conn, "theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "meadow" {
		t.Fatalf("value: got %q want meadow", value)
	}
}

func TestGetAllConfigOrdered(t *testing.T) {
	conn := openTestDB(t)

	if err := SetConfig(conn, "b", "2"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := SetConfig(conn, "a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}

	entries, err := GetAllConfig(conn)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d want 2", len(entries))
	}
	if entries[0].Key != "a" || entries[1].Key != "b" {
		t.Fatalf("order: got %q, %q", entries[0].Key, entries[1].Key)
	}
}

func TestDarkModePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(dataDirEnv, dir)

	conn, err := OpenDatabase()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	dark, err := GetDarkMode(conn)
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if dark {
		t.Fatal("dark mode on by default")
	}
	if err := SetDarkMode(conn, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	conn, err = OpenDatabase()
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer conn.Close()
	dark, err = GetDarkMode(conn)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !dark {
		t.Fatal("dark mode flag lost across reopen")
	}
}
