package habits

import (
	"fmt"
	"time"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/heatmap"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/widget"
)

type ShowCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	Year int    `help:"Heatmap year (default: current)."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	statuses, err := ctx.Store.GetDailyStatusesForHitmaker(h.ID)
	if err != nil {
		return err
	}

	today := time.Now()
	year := c.Year
	if year == 0 {
		year = today.Year()
	}

	fmt.Printf("%s %s\n", models.IconByKey(h.Icon).Glyph, h.Name)
	fmt.Printf("Started:        %s\n", models.DayFromMillis(h.StartDate).Format("2006-01-02"))
	fmt.Printf("Current streak: %d days\n", heatmap.CurrentStreak(today, statuses))
	fmt.Printf("Longest streak: %d days\n", heatmap.LongestStreak(statuses))
	if h.HasReminder() {
		fmt.Printf("Reminder:       %s (%s)\n", *h.ReminderTime, h.DayFilter())
	}
	fmt.Println()
	fmt.Println(widget.RenderYear(h, statuses, year, today))

	return nil
}
