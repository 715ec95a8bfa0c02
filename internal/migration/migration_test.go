package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	out := fstest.MapFS{}
	for name, content := range files {
		out[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return out
}

func TestCurrentVersion_FreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(nil))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("Expected version 0 for a fresh database, got %d", version)
	}
}

func TestApply_RunsPendingMigrationsInOrder(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"002_add_column.sql": "ALTER TABLE progress ADD COLUMN note TEXT;",
		"001_init.sql":       "CREATE TABLE progress (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
	}))

	applied, err := runner.Apply(func(string) {})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("Expected 2 migrations applied, got %d", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("Expected version 2 after apply, got %d", version)
	}

	// The schema from both migrations must be usable.
	if _, err := db.Exec("INSERT INTO progress (key, value, note) VALUES ('a', 'b', 'c')"); err != nil {
		t.Errorf("Expected migrated schema to accept inserts: %v", err)
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE progress (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
	}))

	if _, err := runner.Apply(func(string) {}); err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	applied, err := runner.Apply(func(string) {})
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("Expected no migrations on second apply, got %d", applied)
	}
}

func TestLoad_RejectsBadFilenames(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"init.sql": "CREATE TABLE progress (key TEXT);",
	}))

	if _, err := runner.Load(); err == nil {
		t.Fatalf("Expected error for filename without a version prefix")
	}
}

func TestLoad_RejectsDuplicateVersions(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_first.sql":  "CREATE TABLE a (id INTEGER);",
		"001_second.sql": "CREATE TABLE b (id INTEGER);",
	}))

	if _, err := runner.Load(); err == nil {
		t.Fatalf("Expected error for duplicate migration versions")
	}
}

func TestValidate_DetectsOutdatedSchema(t *testing.T) {
	db := setupTestDB(t)

	applied := migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE progress (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
	})
	if _, err := NewRunner(db, applied).Apply(func(string) {}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	newer := migrationFS(map[string]string{
		"001_init.sql":       "CREATE TABLE progress (key TEXT PRIMARY KEY, value TEXT NOT NULL);",
		"002_add_column.sql": "ALTER TABLE progress ADD COLUMN note TEXT;",
	})
	if err := NewRunner(db, newer).Validate(); err == nil {
		t.Errorf("Expected Validate to flag an outdated schema")
	}

	if err := NewRunner(db, applied).Validate(); err != nil {
		t.Errorf("Expected Validate to pass for an up-to-date schema: %v", err)
	}
}
