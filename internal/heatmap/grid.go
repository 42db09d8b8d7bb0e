package heatmap

import (
	"time"

	"github.com/julianstephens/hitmaker/internal/models"
)

// CellState classifies one calendar-grid cell.
type CellState int

const (
	// CellEmpty is a placeholder before day 1 or after the last day
	CellEmpty CellState = iota
	// CellPending is a past or present day with no done record
	CellPending
	// CellDone is a day with a done record
	CellDone
	// CellFuture is a day after today
	CellFuture
)

// MonthGrid is the display model for one month: a Monday-start grid of
// Rows x 7 cells. Cells[row*7+col] addresses a cell; Day is 0 for empty
// placeholders.
type MonthGrid struct {
	Year   int
	Month  time.Month
	Offset int // leading empty cells, ISO weekday of day 1 minus 1
	Rows   int
	Cells  []Cell
}

type Cell struct {
	Day   int
	State CellState
}

// Month lays out one calendar month against the habit's done days.
func Month(year int, month time.Month, today time.Time, statuses []models.DailyStatus) MonthGrid {
	doneDays := models.DoneDays(statuses)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// ISO weekday: Monday=1 .. Sunday=7
	isoWeekday := int(first.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7
	}
	offset := isoWeekday - 1

	rows := (offset + daysInMonth + 6) / 7
	todayDay := models.DayFromMillis(models.DayMillis(today))

	cells := make([]Cell, rows*7)
	for i := range cells {
		day := i - offset + 1
		if day < 1 || day > daysInMonth {
			cells[i] = Cell{State: CellEmpty}
			continue
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		state := CellPending
		switch {
		case doneDays[date.UnixMilli()]:
			state = CellDone
		case date.After(todayDay):
			state = CellFuture
		}
		cells[i] = Cell{Day: day, State: state}
	}

	return MonthGrid{
		Year:   year,
		Month:  month,
		Offset: offset,
		Rows:   rows,
		Cells:  cells,
	}
}

// Year lays out all twelve months of a year.
func Year(year int, today time.Time, statuses []models.DailyStatus) []MonthGrid {
	grids := make([]MonthGrid, 0, 12)
	for m := time.January; m <= time.December; m++ {
		grids = append(grids, Month(year, m, today, statuses))
	}
	return grids
}
