package system

import (
	"fmt"
	"os"
	"path/filepath"

	"emberday/internal/backup"
	"emberday/internal/cli"
	"emberday/internal/constants"
	"emberday/internal/notifier"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	state, err := ctx.LoadProgress()
	if err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		level := ctx.Engine.CurrentLevel(state.TotalPoints)
		fmt.Printf("   %d points, %d-day streak, level %s\n", state.TotalPoints, state.CurrentStreak, level.Level)
	}

	// Check 2: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found; run 'emberday backup create'\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 3: tray notifier (warning only; reminders still print to stdout)
	trayDir, err := notifier.GetTrayAppConfigDir()
	if err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   Error: %v\n", err)
	} else if _, err := os.Stat(filepath.Join(trayDir, constants.NotifierLockfileName)); err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   Tray application not running; reminders will print to stdout only\n")
	} else {
		fmt.Printf("✓ Tray notifier: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
