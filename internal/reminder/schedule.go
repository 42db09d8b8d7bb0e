package reminder

import (
	"time"

	"github.com/julianstephens/hitmaker/internal/models"
)

// Payload is carried by every scheduled alarm and echoed back on fire.
type Payload struct {
	HabitID   int64
	Name      string
	DayFilter string
	Hour      int
	Minute    int
}

// NextFire computes the next fire instant for a reminder at hour:minute:
// today if that instant is still ahead, otherwise tomorrow.
func NextFire(now time.Time, hour, minute int) time.Time {
	fire := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire
}

// FiresOn evaluates a day-filter token against a weekday. Unrecognized
// tokens (including the reserved CSV weekday-list form) fire every day.
func FiresOn(filter string, weekday time.Weekday) bool {
	switch filter {
	case models.DayFilterEveryday:
		return true
	case models.DayFilterWeekends:
		return weekday == time.Saturday || weekday == time.Sunday
	case models.DayFilterWeekdays:
		return weekday != time.Saturday && weekday != time.Sunday
	default:
		return true
	}
}
