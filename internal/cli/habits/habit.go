package habits

import (
	"fmt"
	"time"

	"emberday/internal/cli"
)

type HabitCmd struct {
	List   HabitListCmd   `cmd:"" help:"List the habit catalog."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for today."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status."`
	Tip    HabitTipCmd    `cmd:"" help:"Show a tip for a habit."`
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	for _, habit := range ctx.Engine.Catalog().Habits() {
		fmt.Printf("%-12s %-28s %3d pts  [%s, %s]\n",
			habit.ID, habit.Name, habit.Points, habit.Category, habit.Duration)
	}
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id (see 'emberday habit list')."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	previousPoints := state.TotalPoints
	result, err := ctx.Engine.ToggleHabit(&state, c.ID, time.Now())
	if err != nil {
		return err
	}

	if err := ctx.SaveProgress(state); err != nil {
		return err
	}

	fmt.Printf("%s %s\n%s\n", result.Icon, result.Title, result.Message)
	if result.Completed {
		fmt.Printf("+%d points (total: %d)\n", result.PointsDelta, state.TotalPoints)
		if level := ctx.Engine.EvaluateAchievements(previousPoints, state.TotalPoints); level != nil {
			fmt.Printf("\n%s Level Up! %s\n🎉 You've reached %s! You now have %d points!\n",
				level.Badge, level.Level, level.Title, state.TotalPoints)
		}
	} else {
		fmt.Printf("%d points (total: %d)\n", result.PointsDelta, state.TotalPoints)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	fmt.Printf("Habits for %s:\n\n", ctx.Today())

	completed := 0
	for _, habit := range ctx.Engine.Catalog().Habits() {
		status := "[ ]"
		if state.Completion[habit.ID] {
			status = "[x]"
			completed++
		}
		fmt.Printf("%s %-28s %3d pts\n", status, habit.Name, habit.Points)
	}

	fmt.Printf("\nCompleted: %d/%d\n", completed, ctx.Engine.Catalog().Len())
	return nil
}

type HabitTipCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (c *HabitTipCmd) Run(ctx *cli.Context) error {
	tip, err := ctx.Engine.HabitTip(c.ID)
	if err != nil {
		return err
	}

	habit, _ := ctx.Engine.Catalog().Habit(c.ID)
	fmt.Printf("💡 Tip for %s\n%s\n", habit.Name, tip)
	return nil
}
