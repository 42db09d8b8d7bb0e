package habits

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/utils"
)

type ReminderCmd struct {
	Name  string `arg:"" help:"Habit name or id."`
	Time  string `short:"t" help:"Reminder time (HH:MM)."`
	Days  string `short:"d" help:"Day filter (everyday|weekends|weekdays)." default:"everyday"`
	Clear bool   `help:"Disable the reminder."`
}

func (c *ReminderCmd) Validate() error {
	if c.Clear {
		return nil
	}
	if c.Time == "" {
		return fmt.Errorf("either --time or --clear is required")
	}
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", c.Time)
	}
	if _, err := cli.ParseDayFilter(c.Days); err != nil {
		return err
	}
	return nil
}

func (c *ReminderCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	if c.Clear {
		h.ReminderTime = nil
		h.ReminderDays = nil
		if err := ctx.Orchestrator.UpdateHitmaker(h); err != nil {
			return err
		}
		fmt.Printf("Reminder cleared for %q\n", h.Name)
		return nil
	}

	days, err := cli.ParseDayFilter(c.Days)
	if err != nil {
		return err
	}

	h.ReminderTime = &c.Time
	h.ReminderDays = &days
	if err := ctx.Orchestrator.UpdateHitmaker(h); err != nil {
		return err
	}

	fmt.Printf("Reminder set for %q at %s (%s)\n", h.Name, c.Time, days)
	return nil
}
