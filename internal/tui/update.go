package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/constants"
	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Feed snapshots arrive in every state and each one re-arms the wait
	// so the subscription stays live for the whole session.
	switch msg := msg.(type) {
	case habitsSnapshotMsg:
		m.habits = msg
		m.rebuildEntries()
		return m, waitForHabits(m.habitsCh)
	case statusesSnapshotMsg:
		m.statuses = msg
		m.rebuildEntries()
		return m, waitForStatuses(m.statusesCh)
	}

	// Handle Add/Edit Habit State
	if m.state == StateAddHabit || m.state == StateEditHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.formError = ""
			m.state = StateList
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			color, err := cli.ParseColor(m.habitForm.Color)
			if err != nil {
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			var reminderTime, reminderDays *string
			if t := strings.TrimSpace(m.habitForm.ReminderTime); t != "" {
				reminderTime = &t
				days := m.habitForm.ReminderDays
				reminderDays = &days
			}

			var saveErr error
			if m.state == StateAddHabit {
				_, saveErr = m.orch.AddHitmaker(
					strings.TrimSpace(m.habitForm.Name), color, m.habitForm.Icon,
					reminderTime, reminderDays,
				)
			} else {
				h := *m.editing
				h.Name = strings.TrimSpace(m.habitForm.Name)
				h.Color = color
				h.Icon = m.habitForm.Icon
				h.ReminderTime = reminderTime
				h.ReminderDays = reminderDays
				saveErr = m.orch.UpdateHitmaker(h)
			}

			if saveErr != nil {
				m.formError = saveErr.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			m.formError = ""
			m.state = StateList
		case huh.StateAborted:
			m.formError = ""
			m.state = StateList
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.orch.DeleteHitmaker(m.habitToDelete); err != nil {
					logger.Warn("failed to delete habit", "error", err)
				}
				m.state = StateList
				m.habitToDelete = 0
				m.habitToDeleteName = ""
			case "n", "N", "esc", "q":
				m.state = StateList
				m.habitToDelete = 0
				m.habitToDeleteName = ""
			}
		}
		return m, nil
	}

	// Handle Detail State
	if m.state == StateDetail {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				m.unsubscribe()
				return m, tea.Quit
			case key.Matches(msg, m.keys.Back):
				m.state = StateList
				m.detailYear = false
			case key.Matches(msg, m.keys.Year):
				m.detailYear = !m.detailYear
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-3-v)

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Color:        fmt.Sprintf("#%06X", m.orch.DefaultColor()&0xFFFFFF),
			Icon:         constants.DefaultIcon,
			ReminderDays: models.DayFilterEveryday,
		}
		m.editing = nil
		m.form = NewHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.EditHabitMsg:
		habit := msg.Habit
		m.editing = &habit
		fm := &HabitFormModel{
			Name:         habit.Name,
			Color:        fmt.Sprintf("#%06X", habit.Color&0xFFFFFF),
			Icon:         habit.Icon,
			ReminderDays: habit.DayFilter(),
		}
		if habit.ReminderTime != nil {
			fm.ReminderTime = *habit.ReminderTime
		}
		m.habitForm = fm
		m.form = NewHabitForm(fm)
		m.state = StateEditHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		progress := 0.0
		if msg.Done {
			progress = 1.0
		}
		if err := m.orch.MarkDone(msg.ID, msg.Done, progress); err != nil {
			logger.Warn("failed to toggle habit", "error", err)
		}
		return m, nil

	case habitlist.OpenHabitMsg:
		m.detailID = msg.ID
		m.detailYear = false
		m.state = StateDetail
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDelete = msg.ID
		if h, ok := m.habitByID(msg.ID); ok {
			m.habitToDeleteName = h.Name
		}
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.MoveHabitMsg:
		var err error
		if msg.Dir < 0 {
			err = m.orch.MoveUp(msg.ID)
		} else {
			err = m.orch.MoveDown(msg.ID)
		}
		if err != nil {
			logger.Warn("failed to move habit", "error", err)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.unsubscribe()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.habitList, cmd = m.habitList.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
