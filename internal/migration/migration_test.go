package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_initial.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE one (id INTEGER PRIMARY KEY);"),
		},
		"002_add_two.sql": &fstest.MapFile{
			Data: []byte("CREATE TABLE two (id INTEGER PRIMARY KEY);"),
		},
	}
}

func TestGetCurrentVersion_FreshDatabase(t *testing.T) {
	r := NewRunner(openTestDB(t), testFS())

	v, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if v != 0 {
		t.Errorf("expected version 0 on a fresh database, got %d", v)
	}
}

func TestApplyMigrations(t *testing.T) {
	db := openTestDB(t)
	r := NewRunner(db, testFS())

	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	v, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if v != 2 {
		t.Errorf("expected version 2 after migrations, got %d", v)
	}

	// Both tables exist
	for _, table := range []string{"one", "two"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	r := NewRunner(openTestDB(t), testFS())

	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations failed: %v", err)
	}

	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on a current database, got %d", applied)
	}
}

func TestApplyMigrations_FailureLeavesPriorVersion(t *testing.T) {
	fs := testFS()
	fs["002_add_two.sql"] = &fstest.MapFile{
		Data: []byte("THIS IS NOT SQL;"),
	}

	db := openTestDB(t)
	r := NewRunner(db, fs)

	applied, err := r.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected the broken migration to fail")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before the failure, got %d", applied)
	}

	v, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if v != 1 {
		t.Errorf("expected version 1 after the failed migration, got %d", v)
	}
}

func TestReadMigrations_RejectsBadFilenames(t *testing.T) {
	fs := fstest.MapFS{
		"initial.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	r := NewRunner(openTestDB(t), fs)

	if _, err := r.ApplyMigrations(nil); err == nil {
		t.Error("expected an error for a filename without a version prefix")
	}
}

func TestReadMigrations_RejectsDuplicateVersions(t *testing.T) {
	fs := fstest.MapFS{
		"001_a.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
		"001_b.sql": &fstest.MapFile{Data: []byte("SELECT 1;")},
	}
	r := NewRunner(openTestDB(t), fs)

	if _, err := r.ApplyMigrations(nil); err == nil {
		t.Error("expected an error for duplicate migration versions")
	}
}

func TestValidateVersion_NewerDatabaseRejected(t *testing.T) {
	db := openTestDB(t)
	r := NewRunner(db, testFS())

	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}

	// Simulate a database written by a newer build
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}

	if err := r.ValidateVersion(); err == nil {
		t.Error("expected ValidateVersion to reject a newer schema")
	}
}
