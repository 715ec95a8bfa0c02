package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"emberday/internal/constants"
	"emberday/internal/errors"
	"emberday/internal/models"
)

// Info describes one rotated backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Snapshot is the portable export document. Import replaces the in-memory
// progress state wholesale.
type Snapshot struct {
	ID                string          `json:"id"`
	Completion        map[string]bool `json:"habit_state"`
	TotalPoints       int             `json:"total_points"`
	CurrentStreak     int             `json:"current_streak"`
	LastCompletedDate string          `json:"last_completed_date,omitempty"`
	ExportedAt        time.Time       `json:"exported_at"`
}

// Manager handles rotated store backups and portable snapshot export/import.
type Manager struct {
	storePath string
	backupDir string
}

// NewManager creates a backup manager for the given store file.
func NewManager(storePath string) *Manager {
	configDir := filepath.Dir(storePath)
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(configDir, constants.BackupDirName),
	}
}

// GetBackupDir returns the backup directory path.
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// Create copies the store file into the backup directory under a timestamped
// name and rotates out the oldest backups beyond the retention limit.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := os.ReadFile(m.storePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("store does not exist: %s", m.storePath)
		}
		return "", fmt.Errorf("failed to read store: %w", err)
	}

	suffix := filepath.Ext(m.storePath)
	if suffix == "" {
		suffix = ".db"
	}

	// Minute precision first; fall back to seconds, then a counter, when a
	// backup with the same name already exists.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+suffix)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+suffix)
		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, suffix))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
	}

	return backupPath, nil
}

// List returns available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: info.ModTime(),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// ExportSnapshot writes the portable snapshot document for the given state.
func ExportSnapshot(state models.ProgressState, path string) (Snapshot, error) {
	snapshot := Snapshot{
		ID:                uuid.New().String(),
		Completion:        state.Completion,
		TotalPoints:       state.TotalPoints,
		CurrentStreak:     state.CurrentStreak,
		LastCompletedDate: state.LastCompletedDate,
		ExportedAt:        time.Now().UTC(),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return Snapshot{}, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return snapshot, nil
}

// ReadSnapshot parses a snapshot document. Malformed or invalid documents
// return an ImportParseError and no state is touched.
func ReadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, &errors.ImportParseError{Path: path, Err: err}
	}
	if snapshot.TotalPoints < 0 {
		return Snapshot{}, &errors.ImportParseError{Path: path, Err: fmt.Errorf("negative total points: %d", snapshot.TotalPoints)}
	}
	if snapshot.CurrentStreak < 0 {
		return Snapshot{}, &errors.ImportParseError{Path: path, Err: fmt.Errorf("negative streak: %d", snapshot.CurrentStreak)}
	}
	if snapshot.Completion == nil {
		snapshot.Completion = make(map[string]bool)
	}
	return snapshot, nil
}

// ToState converts a snapshot into a fresh ProgressState.
func (s Snapshot) ToState() models.ProgressState {
	state := models.NewProgressState()
	for id, done := range s.Completion {
		state.Completion[id] = done
	}
	state.TotalPoints = s.TotalPoints
	state.CurrentStreak = s.CurrentStreak
	state.LastCompletedDate = s.LastCompletedDate
	return state
}
