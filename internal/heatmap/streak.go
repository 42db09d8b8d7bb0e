// Package heatmap holds the pure date-reconciliation logic: streak
// counting and calendar-grid layout over a habit's completion records.
// Everything here is deterministic given (today, statuses) and works on
// calendar days in UTC.
package heatmap

import (
	"sort"
	"time"

	"github.com/julianstephens/hitmaker/internal/models"
)

// CurrentStreak counts consecutive done days ending at today, or at
// yesterday when today is not yet done. Returns 0 when neither anchors.
func CurrentStreak(today time.Time, statuses []models.DailyStatus) int {
	doneDays := models.DoneDays(statuses)
	if len(doneDays) == 0 {
		return 0
	}

	day := models.DayFromMillis(models.DayMillis(today))
	if !doneDays[day.UnixMilli()] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for doneDays[day.UnixMilli()] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak
}

// LongestStreak returns the length of the longest run of consecutive done
// days anywhere in the habit's history.
func LongestStreak(statuses []models.DailyStatus) int {
	doneDays := models.DoneDays(statuses)
	if len(doneDays) == 0 {
		return 0
	}

	days := make([]int64, 0, len(doneDays))
	for d := range doneDays {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	longest := 1
	current := 1
	for i := 1; i < len(days); i++ {
		prev := models.DayFromMillis(days[i-1])
		if models.DayFromMillis(days[i]).Equal(prev.AddDate(0, 0, 1)) {
			current++
		} else {
			if current > longest {
				longest = current
			}
			current = 1
		}
	}
	if current > longest {
		longest = current
	}

	return longest
}
