package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/huh"
)

type DayCmd struct {
	Complete DayCompleteCmd `cmd:"" help:"Run the end-of-day completion check."`
	Reset    DayResetCmd    `cmd:"" help:"Clear today's completions (points and streak are kept)."`
	Status   DayStatusCmd   `cmd:"" help:"Show today's completion summary."`
}

type DayCompleteCmd struct{}

func (c *DayCompleteCmd) Run(ctx *Context) error {
	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	result := ctx.Engine.CompleteDay(&state, ctx.Today())

	// Percentage is rounded for display only; the qualifying comparison
	// inside CompleteDay uses the exact fraction.
	percent := int(math.Round(result.CompletionRate * 100))

	if result.Qualified {
		fmt.Printf("🏆 Day Completed!\n")
		fmt.Printf("Incredible! You completed %d/%d habits (%d%%). Your streak is now %d days! Bonus: +%d points!\n",
			result.CompletedCount, result.TotalCount, percent, state.CurrentStreak, result.BonusAwarded)
	} else {
		fmt.Printf("💪 Keep Going!\n")
		fmt.Printf("You've completed %d/%d habits (%d%%). Try to get at least 70%% completion to maintain your streak!\n",
			result.CompletedCount, result.TotalCount, percent)
	}

	if err := ctx.SaveProgress(state); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	return nil
}

type DayResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *DayResetCmd) Run(ctx *Context) error {
	if !c.Force {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Reset today?").
				Description("This clears all completed habits but keeps your total points and streak.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	ctx.Engine.ResetDay(&state)
	if err := ctx.SaveProgress(state); err != nil {
		return err
	}

	fmt.Println("Today's habits have been reset.")
	return nil
}

type DayStatusCmd struct{}

func (c *DayStatusCmd) Run(ctx *Context) error {
	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	completed := state.CompletedCount()
	total := ctx.Engine.Catalog().Len()
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}

	fmt.Printf("Completed today: %d/%d (%d%%)\n", completed, total, percent)
	fmt.Printf("Total points:    %d\n", state.TotalPoints)
	fmt.Printf("Current streak:  %d day(s)\n", state.CurrentStreak)
	if state.LastCompletedDate != "" {
		fmt.Printf("Last qualifying day: %s\n", state.LastCompletedDate)
	}
	return nil
}
