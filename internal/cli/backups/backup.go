package backups

import (
	"fmt"
	"time"

	"emberday/internal/backup"
	"emberday/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %8d bytes  %s\n", b.Timestamp.Format(time.RFC3339), b.Size, b.Path)
	}
	return nil
}

type ExportCmd struct {
	Output string `help:"Output file path." short:"o" default:"emberday-export.json"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	snapshot, err := backup.ExportSnapshot(state, c.Output)
	if err != nil {
		return err
	}

	fmt.Printf("Exported progress to %s (snapshot %s)\n", c.Output, snapshot.ID)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Snapshot file to import."`
}

// Run replaces the stored progress wholesale with the snapshot's contents and
// persists immediately. A parse failure leaves the stored state untouched.
func (c *ImportCmd) Run(ctx *cli.Context) error {
	snapshot, err := backup.ReadSnapshot(c.Path)
	if err != nil {
		return err
	}

	state := snapshot.ToState()
	if err := ctx.SaveProgress(state); err != nil {
		return err
	}

	level := ctx.Engine.CurrentLevel(state.TotalPoints)
	fmt.Printf("Imported progress: %d points, %d-day streak, level %s %s\n",
		state.TotalPoints, state.CurrentStreak, level.Badge, level.Level)
	return nil
}
