package system

import (
	"fmt"

	"emberday/internal/cli"
	"emberday/internal/notifier"
)

type NotifyCmd struct {
	Title   string `help:"Notification title." default:"emberday"`
	Message string `arg:"" help:"Notification message."`
	DryRun  bool   `help:"Print the notification to stdout instead of sending it."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if c.DryRun {
		fmt.Printf("%s: %s\n", c.Title, c.Message)
		return nil
	}
	return notifier.New().Notify(c.Title, c.Message)
}
