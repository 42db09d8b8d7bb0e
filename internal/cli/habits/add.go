package habits

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/utils"
)

type AddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Color    string `short:"c" help:"Accent color (RRGGBB hex). Defaults to the saved default color."`
	Icon     string `short:"i" help:"Icon key from the catalog." default:"Star"`
	Reminder string `short:"r" help:"Daily reminder time (HH:MM)."`
	Days     string `short:"d" help:"Reminder day filter (everyday|weekends|weekdays)." default:"everyday"`
}

func (c *AddCmd) Validate() error {
	if c.Color != "" {
		if _, err := cli.ParseColor(c.Color); err != nil {
			return err
		}
	}
	if !models.ValidIconKey(c.Icon) {
		return fmt.Errorf("unknown icon %q", c.Icon)
	}
	if c.Reminder != "" && !utils.ValidateTimeFormat(c.Reminder) {
		return fmt.Errorf("invalid reminder time %q (expected HH:MM)", c.Reminder)
	}
	if _, err := cli.ParseDayFilter(c.Days); err != nil {
		return err
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Reject duplicate names so name-based commands stay unambiguous
	if _, err := ctx.Store.GetHitmakerByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	color := ctx.Orchestrator.DefaultColor()
	if c.Color != "" {
		var err error
		color, err = cli.ParseColor(c.Color)
		if err != nil {
			return err
		}
	}

	var reminderTime, reminderDays *string
	if c.Reminder != "" {
		reminderTime = &c.Reminder
		days, err := cli.ParseDayFilter(c.Days)
		if err != nil {
			return err
		}
		reminderDays = &days
	}

	h, err := ctx.Orchestrator.AddHitmaker(c.Name, color, c.Icon, reminderTime, reminderDays)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", models.IconByKey(h.Icon).Glyph, h.Name)
	if h.HasReminder() {
		fmt.Printf("Reminder armed for %s (%s)\n", *h.ReminderTime, h.DayFilter())
	}
	return nil
}
