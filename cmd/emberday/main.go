package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"emberday/internal/catalog"
	"emberday/internal/cli"
	"emberday/internal/cli/backups"
	"emberday/internal/cli/habits"
	"emberday/internal/cli/system"
	"emberday/internal/constants"
	"emberday/internal/logger"
	"emberday/internal/progress"
	"emberday/internal/reminder"
	"emberday/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/emberday/emberday.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd    `cmd:"" help:"Initialize emberday storage."`
	Tui    system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit  habits.HabitCmd   `cmd:"" help:"Manage today's habits."`
	Day    cli.DayCmd        `cmd:"" help:"Day completion, reset and status."`
	Stats  cli.StatsCmd      `cmd:"" help:"Show points, streak and level."`
	Export backups.ExportCmd `cmd:"" help:"Export progress to a JSON snapshot."`
	Import backups.ImportCmd `cmd:"" help:"Import progress from a JSON snapshot."`
	Backup struct {
		Create backups.BackupCreateCmd `cmd:"" help:"Create a backup of the storage file."`
		List   backups.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage storage backups."`
	Watch  system.WatchCmd  `cmd:"" help:"Run the reminder scheduler in the foreground."`
	Doctor system.DoctorCmd `cmd:"" help:"Check the local setup for problems."`
	Notify system.NotifyCmd `cmd:"" hidden:"" help:"Send a notification through the tray app."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("emberday"),
		kong.Description("Daily habit tracker with points, streaks and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": constants.Version},
	)

	configPath := CLI.Config

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(configPath)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}
	defer store.Close()

	cat := catalog.Default()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	appCtx := &cli.Context{
		Store:     store,
		Engine:    progress.New(store, cat, rng),
		Scheduler: reminder.New(cat, rng),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
