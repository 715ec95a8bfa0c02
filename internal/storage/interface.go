package storage

import "emberday/internal/models"

// Provider persists a single ProgressState. Implementations treat each
// persisted field independently so one corrupt value never poisons the rest.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Progress
	Load() (models.ProgressState, error)
	Save(models.ProgressState) error

	// Utils
	GetConfigPath() string
}
