package reminder

import (
	"time"

	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/utils"
)

// DueNow returns the habits whose reminder matches the current minute and
// whose day filter admits today. It backs the cron-style `hitmaker
// notify` sweep, which covers setups where no remind daemon is running.
func DueNow(hitmakers []models.Hitmaker, now time.Time) []models.Hitmaker {
	currentMinutes := now.Hour()*60 + now.Minute()

	var due []models.Hitmaker
	for _, h := range hitmakers {
		if !h.HasReminder() {
			continue
		}
		hour, minute, err := utils.ParseClock(*h.ReminderTime)
		if err != nil {
			continue
		}
		if hour*60+minute != currentMinutes {
			continue
		}
		if !FiresOn(h.DayFilter(), now.Weekday()) {
			continue
		}
		due = append(due, h)
	}

	return due
}
