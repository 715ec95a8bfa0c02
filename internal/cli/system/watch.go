package system

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"emberday/internal/cli"
	"emberday/internal/constants"
	"emberday/internal/logger"
	"emberday/internal/notifier"
	"emberday/internal/reminder"
)

type WatchCmd struct {
	NoNotify bool `help:"Print reminders to stdout only, never contact the tray notifier."`
}

// Run drives the reminder scheduler on a real timer. Every tick re-reads the
// stored state so a day rollover or a toggle from another process is always
// observed; no callback closes over a stale snapshot.
func (c *WatchCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.LoadProgress(); err != nil {
		return err
	}

	fmt.Println("Watching for reminders. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	var lastAdaptive time.Time
	c.tick(ctx, time.Now(), &lastAdaptive)

	for {
		select {
		case <-sigCh:
			fmt.Println("\nStopping.")
			return nil
		case now := <-ticker.C:
			c.tick(ctx, now, &lastAdaptive)
		}
	}
}

func (c *WatchCmd) tick(ctx *cli.Context, now time.Time, lastAdaptive *time.Time) {
	state, err := ctx.LoadProgress()
	if err != nil {
		logger.Warn("reminder tick failed to load state", "error", err)
		return
	}

	for _, event := range ctx.Scheduler.Tick(now, state) {
		c.deliver(event)
	}

	if now.Sub(*lastAdaptive) >= constants.AdaptiveInterval {
		*lastAdaptive = now
		for _, pending := range ctx.Scheduler.AdaptiveSuggestions(now, state) {
			p := pending
			time.AfterFunc(p.FireAt.Sub(now), func() {
				// Re-read current state; the habit may have been completed
				// while the one-shot was waiting.
				current, err := ctx.LoadProgress()
				if err != nil || current.Completion[p.HabitID] {
					return
				}
				c.deliver(p.Event)
			})
		}
	}
}

func (c *WatchCmd) deliver(event reminder.Event) {
	fmt.Printf("[%s] %s: %s\n", event.Category, event.Title, event.Message)

	if c.NoNotify {
		return
	}
	if err := notifier.New().Notify(event.Title, event.Message); err != nil {
		// Tray being down is expected; reminders still reach stdout.
		logger.Debug("tray notification skipped", "error", err)
	}
}
