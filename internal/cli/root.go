package cli

import (
	"time"

	"emberday/internal/backup"
	"emberday/internal/constants"
	"emberday/internal/logger"
	"emberday/internal/models"
	"emberday/internal/progress"
	"emberday/internal/reminder"
	"emberday/internal/storage"
)

// Context carries the shared application dependencies into every command.
type Context struct {
	Store     storage.Provider
	Engine    *progress.Engine
	Scheduler *reminder.Scheduler
}

// Today returns the current calendar day string.
func (c *Context) Today() string {
	return time.Now().Format(constants.DateFormat)
}

// LoadProgress loads the persisted state rolled over to today.
func (c *Context) LoadProgress() (models.ProgressState, error) {
	return c.Engine.Load(c.Today())
}

// SaveProgress persists the state stamped with today's date.
func (c *Context) SaveProgress(state models.ProgressState) error {
	return c.Engine.Save(state, c.Today())
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.Create()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
