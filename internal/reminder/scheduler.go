package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/hitmaker/internal/constants"
	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/utils"
)

// State of one habit's reminder. Armed is the only non-terminal state
// while a reminder is enabled: every fire re-arms for the next day.
type State int

const (
	Unscheduled State = iota
	Armed
)

// Notifier delivers a reminder notification.
type Notifier interface {
	Notify(title, body string) error
}

// Alarms registers one-shot alarms keyed by habit id. Setting an alarm
// for an id that already has one replaces the prior registration.
type Alarms interface {
	Set(id int64, at time.Time, payload Payload) error
	Cancel(id int64)
}

// Scheduler maps habits with reminder times onto alarm registrations and
// handles fires: evaluate the day filter at fire time, notify or
// suppress, then re-arm for the next day either way.
type Scheduler struct {
	mu       sync.Mutex
	alarms   Alarms
	notifier Notifier
	now      func() time.Time
	armed    map[int64]time.Time
}

func NewScheduler(alarms Alarms, notifier Notifier) *Scheduler {
	return &Scheduler{
		alarms:   alarms,
		notifier: notifier,
		now:      time.Now,
		armed:    make(map[int64]time.Time),
	}
}

// SetClock replaces the scheduler's time source. Tests only.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

// Arm registers the habit's reminder alarm. Habits without a reminder
// time are cancelled instead, so callers can pass any updated habit.
func (s *Scheduler) Arm(h models.Hitmaker) error {
	if !h.HasReminder() {
		s.Cancel(h.ID)
		return nil
	}

	hour, minute, err := utils.ParseClock(*h.ReminderTime)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for %q: %w", h.Name, err)
	}

	payload := Payload{
		HabitID:   h.ID,
		Name:      h.Name,
		DayFilter: h.DayFilter(),
		Hour:      hour,
		Minute:    minute,
	}

	fire := NextFire(s.now(), hour, minute)
	if err := s.alarms.Set(h.ID, fire, payload); err != nil {
		return fmt.Errorf("failed to register alarm for %q: %w", h.Name, err)
	}

	s.mu.Lock()
	s.armed[h.ID] = fire
	s.mu.Unlock()

	logger.Debug("reminder armed", "habit", h.Name, "fire", fire)
	return nil
}

// Cancel unregisters the habit's alarm, transitioning to Unscheduled.
func (s *Scheduler) Cancel(id int64) {
	s.alarms.Cancel(id)

	s.mu.Lock()
	delete(s.armed, id)
	s.mu.Unlock()
}

// StateOf reports the reminder state for a habit id.
func (s *Scheduler) StateOf(id int64) (State, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fire, ok := s.armed[id]; ok {
		return Armed, fire
	}
	return Unscheduled, time.Time{}
}

// HandleFire is invoked by the alarm backend when an alarm goes off. The
// day filter is re-evaluated against the weekday at fire time; a filtered
// day suppresses the notification but still re-arms, so the schedule
// self-heals without a distinct skip state.
func (s *Scheduler) HandleFire(p Payload) {
	now := s.now()

	if FiresOn(p.DayFilter, now.Weekday()) {
		title := constants.NotificationTitlePrefix + p.Name
		if err := s.notifier.Notify(title, constants.NotificationBody); err != nil {
			logger.Warn("reminder notification failed", "habit", p.Name, "error", err)
		}
	} else {
		logger.Debug("reminder suppressed by day filter", "habit", p.Name, "filter", p.DayFilter)
	}

	s.rearm(now, p)
}

func (s *Scheduler) rearm(fired time.Time, p Payload) {
	next := time.Date(fired.Year(), fired.Month(), fired.Day(), p.Hour, p.Minute, 0, 0, fired.Location()).AddDate(0, 0, 1)
	if err := s.alarms.Set(p.HabitID, next, p); err != nil {
		logger.Warn("failed to re-arm reminder", "habit", p.Name, "error", err)
		return
	}

	s.mu.Lock()
	s.armed[p.HabitID] = next
	s.mu.Unlock()
}

// ArmAll arms every habit that has a reminder configured. Used by the
// remind daemon on startup to rebuild alarm state from the store.
func (s *Scheduler) ArmAll(hitmakers []models.Hitmaker) {
	for _, h := range hitmakers {
		if !h.HasReminder() {
			continue
		}
		if err := s.Arm(h); err != nil {
			logger.Warn("skipping reminder", "habit", h.Name, "error", err)
		}
	}
}
