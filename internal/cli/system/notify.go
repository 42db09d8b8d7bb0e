package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/constants"
	"github.com/julianstephens/hitmaker/internal/notifier"
	"github.com/julianstephens/hitmaker/internal/reminder"
)

// NotifyCmd is the cron-friendly reminder sweep: run once a minute, it
// fires every reminder whose HH:MM matches the current minute. Setups
// that keep `remind serve` running do not need it.
type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	hitmakers, err := ctx.Store.GetAllHitmakers()
	if err != nil {
		return err
	}

	due := reminder.DueNow(hitmakers, time.Now())
	if len(due) == 0 {
		if c.DryRun {
			fmt.Println("No reminders due this minute.")
		}
		return nil
	}

	n := notifier.New()
	for _, h := range due {
		title := constants.NotificationTitlePrefix + h.Name
		if c.DryRun {
			fmt.Printf("[DryRun] %s: %s\n", title, constants.NotificationBody)
			continue
		}
		if err := n.Notify(title, constants.NotificationBody); err != nil {
			// Log and keep sweeping; one failed delivery must not
			// block other habits' reminders
			fmt.Printf("Failed to send notification: %v\n", err)
		}
	}

	return nil
}
