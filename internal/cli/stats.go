package cli

import (
	"fmt"
	"math"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	state, err := ctx.LoadProgress()
	if err != nil {
		return err
	}

	level := ctx.Engine.CurrentLevel(state.TotalPoints)
	completed := state.CompletedCount()
	total := ctx.Engine.Catalog().Len()
	percent := int(math.Round(float64(completed) / float64(total) * 100))

	fmt.Printf("%s %s — %s\n\n", level.Badge, level.Level, level.Title)
	fmt.Printf("Points:  %d\n", state.TotalPoints)
	fmt.Printf("Streak:  %d day(s)\n", state.CurrentStreak)
	fmt.Printf("Today:   %d/%d habits (%d%%)\n", completed, total, percent)

	if next := ctx.Engine.NextLevel(state.TotalPoints); next != nil {
		fmt.Printf("Next:    %s %s at %d points (%d to go)\n",
			next.Badge, next.Level, next.Points, next.Points-state.TotalPoints)
	} else {
		fmt.Println("Next:    you've reached the top level!")
	}

	fmt.Printf("\n\"%s\"\n", ctx.Engine.Quote())
	return nil
}
