package habits

import (
	"fmt"
	"time"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/heatmap"
	"github.com/julianstephens/hitmaker/internal/models"
)

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	hitmakers, err := ctx.Store.GetAllHitmakers()
	if err != nil {
		return err
	}

	if len(hitmakers) == 0 {
		fmt.Println("No habits yet. Add one with 'hitmaker habit add'.")
		return nil
	}

	today := time.Now()
	todayMillis := models.DayMillis(today)

	for _, h := range hitmakers {
		statuses, err := ctx.Store.GetDailyStatusesForHitmaker(h.ID)
		if err != nil {
			return err
		}

		mark := "○"
		for _, st := range statuses {
			if st.Date == todayMillis && st.IsDone {
				mark = "✓"
				break
			}
		}

		streak := heatmap.CurrentStreak(today, statuses)
		fmt.Printf("%s %s %-20s %d day streak\n", mark, models.IconByKey(h.Icon).Glyph, h.Name, streak)
	}

	return nil
}
