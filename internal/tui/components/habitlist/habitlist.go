package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/hitmaker/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID   int64
	Done bool
}

type OpenHabitMsg struct {
	ID int64
}

type EditHabitMsg struct {
	Habit models.Hitmaker
}

type DeleteHabitMsg struct {
	ID int64
}

type MoveHabitMsg struct {
	ID  int64
	Dir int // -1 up, +1 down
}

// Entry pairs a habit with its derived display state.
type Entry struct {
	Habit     models.Hitmaker
	DoneToday bool
	Streak    int
}

type Item struct {
	Entry Entry
}

func (i Item) Title() string {
	icon := models.IconByKey(i.Entry.Habit.Icon).Glyph
	if i.Entry.DoneToday {
		return fmt.Sprintf("✓ %s %s", icon, i.Entry.Habit.Name)
	}
	return fmt.Sprintf("○ %s %s", icon, i.Entry.Habit.Name)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("streak %d", i.Entry.Streak)
	if i.Entry.Habit.HasReminder() {
		desc += fmt.Sprintf(" · reminder %s", *i.Entry.Habit.ReminderTime)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	Toggle   key.Binding
	Open     key.Binding
	Edit     key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space", "toggle done"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "heatmap"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []Entry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Open, keys.Edit, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Open, keys.Edit, keys.Delete, keys.MoveUp, keys.MoveDown}
	}

	return Model{
		list: l,
		keys: keys,
	}
}

// SetEntries replaces the listing while keeping the cursor close to where
// it was.
func (m *Model) SetEntries(entries []Entry) {
	idx := m.list.Index()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m Model) Selected() (Entry, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Entry, true
	}
	return Entry{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg {
					return ToggleHabitMsg{ID: i.Entry.Habit.ID, Done: !i.Entry.DoneToday}
				}
			}
		case key.Matches(msg, m.keys.Open):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenHabitMsg{ID: i.Entry.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditHabitMsg{Habit: i.Entry.Habit} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Entry.Habit.ID} }
			}
		case key.Matches(msg, m.keys.MoveUp):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MoveHabitMsg{ID: i.Entry.Habit.ID, Dir: -1} }
			}
		case key.Matches(msg, m.keys.MoveDown):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MoveHabitMsg{ID: i.Entry.Habit.ID, Dir: 1} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
