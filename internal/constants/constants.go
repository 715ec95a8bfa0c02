package constants

import "time"

const (
	AppName           = "emberday"
	DefaultConfigPath = "~/.config/emberday/emberday.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Day completion rules. A day qualifies when at least QualifyingPercent of
	// the catalog is complete; qualifying days extend the streak and award the
	// bonus. The threshold comparison is exact (cross-multiplied), never rounded.
	QualifyingPercent = 70
	DayBonusPoints    = 50

	// Streak milestones fire every StreakMilestoneDays consecutive days.
	StreakMilestoneDays = 7

	// Reminder scheduler tuning
	TickInterval          = time.Minute
	SmartCheckInterval    = 30 * time.Minute
	AdaptiveInterval      = 2 * time.Hour
	InactivityThreshold   = 3 * time.Hour
	EveningReflectionHour = 21

	// Day segments for adaptive suggestions (inclusive hour bounds)
	MorningStartHour   = 6
	MorningEndHour     = 10
	AfternoonStartHour = 12
	AfternoonEndHour   = 17
	EveningStartHour   = 18
	EveningEndHour     = 21

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "emberday-"

	// Notify constants
	NotifierLockfileName   = "emberday-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.emberday.tray"
	TrayExecutablePrefix   = "emberday-tray"
)
