package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/hitmaker/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseClock parses an HH:MM string into hour and minute components.
func ParseClock(timeStr string) (hour, minute int, err error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format (expected HH:MM): %w", err)
	}
	return t.Hour(), t.Minute(), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDay renders t's calendar day in the standard date format.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}
