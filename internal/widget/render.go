// Package widget renders pinned habit widgets: a name header, the short
// month, and a Monday-start month grid of done/future/pending cells in
// the habit's color. Surfaces are plain text files external bars and
// launchers can display.
package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hitmaker/internal/heatmap"
	"github.com/julianstephens/hitmaker/internal/models"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true)
	monthStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	futureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// HexColor converts a packed ARGB color to a lipgloss hex color,
// dropping the alpha channel.
func HexColor(argb int64) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", argb&0xFFFFFF))
}

// Render produces the widget surface for one habit and month.
func Render(habit models.Hitmaker, statuses []models.DailyStatus, today time.Time) string {
	grid := heatmap.Month(today.Year(), today.Month(), today, statuses)
	doneStyle := lipgloss.NewStyle().Foreground(HexColor(habit.Color))

	var b strings.Builder
	b.WriteString(nameStyle.Render(habit.Name))
	b.WriteString("\n")
	b.WriteString(monthStyle.Render(today.Format("Jan")))
	b.WriteString("\n")

	for row := 0; row < grid.Rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			cell := grid.Cells[row*7+col]
			switch cell.State {
			case heatmap.CellDone:
				cells = append(cells, doneStyle.Render("■"))
			case heatmap.CellPending:
				cells = append(cells, pendingStyle.Render("■"))
			case heatmap.CellFuture:
				cells = append(cells, futureStyle.Render("■"))
			default:
				cells = append(cells, " ")
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderMissing is the placeholder for a binding whose habit is gone.
func RenderMissing() string {
	return missingStyle.Render("Habit not found") + "\n"
}

// RenderYear lays the twelve month grids out in rows of three, the
// arrangement the detail heatmap uses.
func RenderYear(habit models.Hitmaker, statuses []models.DailyStatus, year int, today time.Time) string {
	doneStyle := lipgloss.NewStyle().Foreground(HexColor(habit.Color))
	grids := heatmap.Year(year, today, statuses)

	months := make([]string, 0, 12)
	for _, grid := range grids {
		var b strings.Builder
		b.WriteString(monthStyle.Render(grid.Month.String()[:3]))
		b.WriteString("\n")
		for row := 0; row < grid.Rows; row++ {
			cells := make([]string, 0, 7)
			for col := 0; col < 7; col++ {
				cell := grid.Cells[row*7+col]
				switch cell.State {
				case heatmap.CellDone:
					cells = append(cells, doneStyle.Render("■"))
				case heatmap.CellPending:
					cells = append(cells, pendingStyle.Render("■"))
				case heatmap.CellFuture:
					cells = append(cells, futureStyle.Render("■"))
				default:
					cells = append(cells, " ")
				}
			}
			b.WriteString(strings.Join(cells, " "))
			b.WriteString("\n")
		}
		months = append(months, b.String())
	}

	rows := make([]string, 0, 4)
	for i := 0; i < len(months); i += 3 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, months[i], "   ", months[i+1], "   ", months[i+2]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
