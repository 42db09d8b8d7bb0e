package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/hitmaker/internal/heatmap"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/widget"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateList:
		content = docStyle.Render(m.habitList.View())
	case StateDetail:
		content = docStyle.Render(m.viewDetail())
	case StateAddHabit, StateEditHabit:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Hitmaker"),
		content,
		m.help.View(m),
	)
}

func (m Model) viewForm() string {
	if m.formError != "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			errorStyle.Render(m.formError),
			m.form.View(),
		)
	}
	return m.form.View()
}

func (m Model) viewDetail() string {
	habit, ok := m.habitByID(m.detailID)
	if !ok {
		return errorStyle.Render("habit no longer exists")
	}
	statuses := m.statusesFor(habit.ID)

	now := time.Now()
	done := models.DoneDays(statuses)

	total := 0
	for _, ok := range done {
		if ok {
			total++
		}
	}
	stats := statStyle.Render(fmt.Sprintf(
		"current streak %d · longest streak %d · %d days done",
		heatmap.CurrentStreak(now, statuses),
		heatmap.LongestStreak(statuses),
		total,
	))

	var grid string
	if m.detailYear {
		grid = widget.RenderYear(habit, statuses, now.Year(), now)
	} else {
		grid = widget.Render(habit, statuses, now)
	}

	return lipgloss.JoinVertical(lipgloss.Left, stats, "", grid)
}

func (m Model) viewConfirmDelete() string {
	prompt := fmt.Sprintf("Delete %q and all of its history?", m.habitToDeleteName)
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
