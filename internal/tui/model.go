package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hitmaker/internal/heatmap"
	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/orchestrator"
	"github.com/julianstephens/hitmaker/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateList SessionState = iota
	StateDetail
	StateAddHabit
	StateEditHabit
	StateConfirmDelete
)

// habitsSnapshotMsg carries a full replacement habit list from the
// orchestrator feed.
type habitsSnapshotMsg []models.Hitmaker

// statusesSnapshotMsg carries a full replacement completion history from
// the orchestrator feed.
type statusesSnapshotMsg []models.DailyStatus

type Model struct {
	orch              *orchestrator.Orchestrator
	state             SessionState
	keys              KeyMap
	help              help.Model
	habitList         habitlist.Model
	habits            []models.Hitmaker
	statuses          []models.DailyStatus
	habitsCh          <-chan []models.Hitmaker
	statusesCh        <-chan []models.DailyStatus
	unsubscribe       func()
	form              *huh.Form
	habitForm         *HabitFormModel
	editing           *models.Hitmaker
	detailID          int64
	detailYear        bool
	habitToDelete     int64
	habitToDeleteName string
	formError         string
	quitting          bool
	width             int
	height            int
}

func NewModel(orch *orchestrator.Orchestrator) Model {
	m := Model{
		orch:      orch,
		state:     StateList,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(nil, 0, 0),
	}

	habitsCh, cancelHabits := orch.Habits().Subscribe()
	statusesCh, cancelStatuses := orch.Statuses().Subscribe()
	m.habitsCh = habitsCh
	m.statusesCh = statusesCh
	m.unsubscribe = func() {
		cancelHabits()
		cancelStatuses()
	}

	if err := orch.Refresh(); err != nil {
		logger.Warn("failed to prime feeds", "error", err)
	}
	return m
}

// waitForHabits blocks on the habit feed and delivers the next snapshot.
func waitForHabits(ch <-chan []models.Hitmaker) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-ch
		if !ok {
			return nil
		}
		return habitsSnapshotMsg(snapshot)
	}
}

// waitForStatuses blocks on the status feed and delivers the next
// snapshot.
func waitForStatuses(ch <-chan []models.DailyStatus) tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-ch
		if !ok {
			return nil
		}
		return statusesSnapshotMsg(snapshot)
	}
}

// rebuildEntries rederives the listing from the latest snapshots.
func (m *Model) rebuildEntries() {
	now := time.Now()
	today := models.DayMillis(now)

	byHabit := make(map[int64][]models.DailyStatus)
	for _, s := range m.statuses {
		byHabit[s.HitmakerID] = append(byHabit[s.HitmakerID], s)
	}

	entries := make([]habitlist.Entry, len(m.habits))
	for i, h := range m.habits {
		statuses := byHabit[h.ID]
		done := models.DoneDays(statuses)
		entries[i] = habitlist.Entry{
			Habit:     h,
			DoneToday: done[today],
			Streak:    heatmap.CurrentStreak(now, statuses),
		}
	}
	m.habitList.SetEntries(entries)
}

func (m Model) habitByID(id int64) (models.Hitmaker, bool) {
	for _, h := range m.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hitmaker{}, false
}

func (m Model) statusesFor(id int64) []models.DailyStatus {
	var out []models.DailyStatus
	for _, s := range m.statuses {
		if s.HitmakerID == id {
			out = append(out, s)
		}
	}
	return out
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateDetail:
		return []key.Binding{m.keys.Back, m.keys.Year, m.keys.Quit}
	default:
		return []key.Binding{m.keys.Quit, m.keys.Help}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Quit, m.keys.Back},
		{m.keys.Up, m.keys.Down, m.keys.Year, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.habitList.Init(),
		waitForHabits(m.habitsCh),
		waitForStatuses(m.statusesCh),
	)
}
