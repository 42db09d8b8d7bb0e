package models

import "time"

// DayMillis truncates t to its calendar day in UTC and returns the epoch
// millis of that midnight. All stored dates use this representation, so
// time-of-day never participates in comparisons.
func DayMillis(t time.Time) int64 {
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return day.UnixMilli()
}

// DayFromMillis converts a stored midnight-UTC timestamp back to a
// time.Time at midnight UTC.
func DayFromMillis(ms int64) time.Time {
	u := time.UnixMilli(ms).UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DoneDays returns the distinct calendar days (midnight UTC) that have a
// done record in statuses.
func DoneDays(statuses []DailyStatus) map[int64]bool {
	days := make(map[int64]bool, len(statuses))
	for _, s := range statuses {
		if s.IsDone {
			days[DayMillis(DayFromMillis(s.Date))] = true
		}
	}
	return days
}
