package storage

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"emberday/internal/migration"
	"emberday/internal/models"
	"emberday/migrations"
)

// SQLiteStore persists the progress record in a key-value table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'emberday init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load() (models.ProgressState, error) {
	if err := s.open(); err != nil {
		return models.ProgressState{}, err
	}

	rows, err := s.db.Query("SELECT key, value FROM progress")
	if err != nil {
		return models.ProgressState{}, fmt.Errorf("failed to read progress: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.ProgressState{}, fmt.Errorf("failed to scan progress row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.ProgressState{}, fmt.Errorf("failed to read progress: %w", err)
	}

	return decodeState(values), nil
}

// Save writes all fields in one transaction so a concurrent Load never
// observes a torn snapshot.
func (s *SQLiteStore) Save(state models.ProgressState) error {
	if err := s.open(); err != nil {
		return err
	}

	values, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM progress"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear progress: %w", err)
	}
	for key, value := range values {
		if _, err := tx.Exec("INSERT INTO progress (key, value) VALUES (?, ?)", key, value); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to write progress field %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %w", err)
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	return migration.NewRunner(s.db, subFS).Validate()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
