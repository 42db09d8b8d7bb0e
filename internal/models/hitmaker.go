package models

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/utils"
)

// Day filter tokens for reminders. The CSV-of-weekday-numbers form is
// reserved but not produced or interpreted anywhere yet; unrecognized
// values fall through to "fire every day".
const (
	DayFilterEveryday = "EVERYDAY"
	DayFilterWeekends = "WEEKENDS"
	DayFilterWeekdays = "WEEKDAYS"
)

// Hitmaker is a tracked habit. Priority orders the display ascending and
// is rewritten to the dense sequence 0..N-1 after any reorder.
type Hitmaker struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Color        int64   `json:"color"`      // packed 32-bit ARGB
	StartDate    int64   `json:"start_date"` // midnight UTC of creation day, epoch millis
	Icon         string  `json:"icon"`
	Priority     int     `json:"priority"`
	ReminderTime *string `json:"reminder_time,omitempty"` // HH:MM, 24-hour
	ReminderDays *string `json:"reminder_days,omitempty"` // day filter token
}

func (h *Hitmaker) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}

	if h.ReminderTime != nil {
		if _, err := utils.ParseTime(*h.ReminderTime); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}

	return nil
}

// HasReminder reports whether a reminder is enabled for this habit.
func (h *Hitmaker) HasReminder() bool {
	return h.ReminderTime != nil && *h.ReminderTime != ""
}

// DayFilter returns the reminder day filter token, defaulting to EVERYDAY
// when none is stored.
func (h *Hitmaker) DayFilter() string {
	if h.ReminderDays == nil || *h.ReminderDays == "" {
		return DayFilterEveryday
	}
	return *h.ReminderDays
}
