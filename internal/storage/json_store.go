package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"emberday/internal/models"
)

type fileStore struct {
	Version  int               `json:"version"`
	Progress map[string]string `json:"progress"`
}

// JSONStore keeps the progress record in a single JSON document on disk.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(&fileStore{
		Version:  1,
		Progress: make(map[string]string),
	})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Load() (models.ProgressState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.ProgressState{}, fmt.Errorf("storage not initialized, run 'emberday init' first")
		}
		return models.ProgressState{}, fmt.Errorf("failed to read storage: %w", err)
	}

	store := &fileStore{}
	if err := json.Unmarshal(data, store); err != nil {
		return models.ProgressState{}, fmt.Errorf("failed to parse storage: %w", err)
	}
	if store.Progress == nil {
		store.Progress = make(map[string]string)
	}

	return decodeState(store.Progress), nil
}

func (s *JSONStore) Save(state models.ProgressState) error {
	values, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to serialize progress: %w", err)
	}

	return s.write(&fileStore{
		Version:  1,
		Progress: values,
	})
}

func (s *JSONStore) write(store *fileStore) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
