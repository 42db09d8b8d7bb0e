package heatmap

import (
	"testing"
	"time"
)

func TestMonth_OffsetForMidweekStart(t *testing.T) {
	// January 2025 starts on a Wednesday, so the Monday-start grid has
	// two leading empty cells.
	grid := Month(2025, time.January, day(2025, time.January, 15), nil)

	if grid.Offset != 2 {
		t.Errorf("expected offset 2 for a Wednesday start, got %d", grid.Offset)
	}
	for i := 0; i < grid.Offset; i++ {
		if grid.Cells[i].State != CellEmpty {
			t.Errorf("cell %d should be empty padding, got state %v", i, grid.Cells[i].State)
		}
	}
	if grid.Cells[grid.Offset].Day != 1 {
		t.Errorf("first real cell should be day 1, got %d", grid.Cells[grid.Offset].Day)
	}
}

func TestMonth_OffsetForSundayStart(t *testing.T) {
	// June 2025 starts on a Sunday, the last ISO weekday.
	grid := Month(2025, time.June, day(2025, time.June, 15), nil)

	if grid.Offset != 6 {
		t.Errorf("expected offset 6 for a Sunday start, got %d", grid.Offset)
	}
}

func TestMonth_RowCount(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		rows  int
	}{
		// Feb 2021: starts Monday, 28 days, exactly 4 rows
		{"four row february", 2021, time.February, 4},
		// Jan 2025: offset 2 + 31 days = 33 cells over 5 rows
		{"five row january", 2025, time.January, 5},
		// Mar 2025: starts Saturday, offset 5 + 31 days = 36 cells over 6 rows
		{"six row march", 2025, time.March, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := Month(tt.year, tt.month, day(tt.year, tt.month, 15), nil)
			if grid.Rows != tt.rows {
				t.Errorf("expected %d rows, got %d", tt.rows, grid.Rows)
			}
			if len(grid.Cells) != tt.rows*7 {
				t.Errorf("expected %d cells, got %d", tt.rows*7, len(grid.Cells))
			}
		})
	}
}

func TestMonth_CellStates(t *testing.T) {
	statuses := doneOn(day(2025, time.January, 10))
	grid := Month(2025, time.January, day(2025, time.January, 15), statuses)

	cellFor := func(dayNum int) Cell {
		return grid.Cells[grid.Offset+dayNum-1]
	}

	if got := cellFor(10).State; got != CellDone {
		t.Errorf("done day should be CellDone, got %v", got)
	}
	if got := cellFor(12).State; got != CellPending {
		t.Errorf("past undone day should be CellPending, got %v", got)
	}
	if got := cellFor(15).State; got != CellPending {
		t.Errorf("today should be CellPending when not done, got %v", got)
	}
	if got := cellFor(16).State; got != CellFuture {
		t.Errorf("tomorrow should be CellFuture, got %v", got)
	}
}

func TestYear_TwelveMonths(t *testing.T) {
	grids := Year(2025, day(2025, time.June, 1), nil)

	if len(grids) != 12 {
		t.Fatalf("expected 12 month grids, got %d", len(grids))
	}
	if grids[0].Month != time.January || grids[11].Month != time.December {
		t.Errorf("grids out of order: first %v, last %v", grids[0].Month, grids[11].Month)
	}
	for _, g := range grids {
		if g.Year != 2025 {
			t.Errorf("expected year 2025 on every grid, got %d for %v", g.Year, g.Month)
		}
	}
}
