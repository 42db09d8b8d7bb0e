// Package orchestrator mediates between the store and the interactive
// surfaces: it owns the mutation commands and the live snapshot feeds
// the TUI renders from, and fans side effects (reminder re-arming,
// widget refresh) out after each successful write.
package orchestrator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/hitmaker/internal/constants"
	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/reminder"
	"github.com/julianstephens/hitmaker/internal/storage"
)

// Refresher pushes re-rendered widget surfaces after a write.
type Refresher interface {
	Push()
}

type noopRefresher struct{}

func (noopRefresher) Push() {}

type Orchestrator struct {
	store     storage.Provider
	scheduler *reminder.Scheduler
	refresher Refresher
	habits    *Feed[[]models.Hitmaker]
	statuses  *Feed[[]models.DailyStatus]
	now       func() time.Time
}

func New(store storage.Provider, scheduler *reminder.Scheduler, refresher Refresher) *Orchestrator {
	if refresher == nil {
		refresher = noopRefresher{}
	}
	return &Orchestrator{
		store:     store,
		scheduler: scheduler,
		refresher: refresher,
		habits:    NewFeed[[]models.Hitmaker](),
		statuses:  NewFeed[[]models.DailyStatus](),
		now:       time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (o *Orchestrator) SetClock(now func() time.Time) {
	o.now = now
}

// Habits is the live collection of habits, ordered by priority ascending.
func (o *Orchestrator) Habits() *Feed[[]models.Hitmaker] {
	return o.habits
}

// Statuses is the live collection of all completion records.
func (o *Orchestrator) Statuses() *Feed[[]models.DailyStatus] {
	return o.statuses
}

// Refresh republishes current snapshots. Surfaces call it once after
// subscribing so the first frame has data.
func (o *Orchestrator) Refresh() error {
	if err := o.publishHabits(); err != nil {
		return err
	}
	return o.publishStatuses()
}

// DefaultColor returns the saved default accent color for new habits,
// falling back to the built-in default when none is stored or the stored
// value does not parse.
func (o *Orchestrator) DefaultColor() int64 {
	value, err := o.store.GetSetting(constants.SettingDefaultColor)
	if err != nil {
		return constants.DefaultColor
	}
	rgb, err := strconv.ParseInt(strings.TrimPrefix(value, "#"), 16, 64)
	if err != nil || rgb < 0 || rgb > 0xFFFFFF {
		return constants.DefaultColor
	}
	return 0xFF000000 | rgb
}

// SetDefaultColor persists the default accent color for new habits.
func (o *Orchestrator) SetDefaultColor(color int64) error {
	return o.store.SetSetting(constants.SettingDefaultColor, fmt.Sprintf("#%06X", color&0xFFFFFF))
}

// AddHitmaker creates a habit at the end of the display order.
func (o *Orchestrator) AddHitmaker(name string, color int64, icon string, reminderTime, reminderDays *string) (models.Hitmaker, error) {
	if !models.ValidIconKey(icon) {
		icon = constants.DefaultIcon
	}

	count, err := o.store.CountHitmakers()
	if err != nil {
		return models.Hitmaker{}, err
	}

	h := models.Hitmaker{
		Name:         name,
		Color:        color,
		StartDate:    models.DayMillis(o.now()),
		Icon:         icon,
		Priority:     count,
		ReminderTime: reminderTime,
		ReminderDays: reminderDays,
	}

	id, err := o.store.AddHitmaker(h)
	if err != nil {
		return models.Hitmaker{}, err
	}
	h.ID = id

	o.afterWrite(func() {
		if h.HasReminder() {
			if err := o.scheduler.Arm(h); err != nil {
				logger.Warn("failed to arm reminder", "habit", h.Name, "error", err)
			}
		}
	})
	if err := o.publishHabits(); err != nil {
		return h, err
	}
	return h, nil
}

// UpdateHitmaker persists edits to a habit, re-arming or cancelling its
// reminder to match the new fields.
func (o *Orchestrator) UpdateHitmaker(h models.Hitmaker) error {
	if err := o.store.UpdateHitmaker(h); err != nil {
		return err
	}

	o.afterWrite(func() {
		// Arm handles the disabled case by cancelling
		if err := o.scheduler.Arm(h); err != nil {
			logger.Warn("failed to re-arm reminder", "habit", h.Name, "error", err)
		}
	})
	return o.publishHabits()
}

// RenameHitmaker changes only the display name.
func (o *Orchestrator) RenameHitmaker(id int64, name string) error {
	h, err := o.store.GetHitmaker(id)
	if err != nil {
		return fmt.Errorf("hitmaker %d not found", id)
	}
	h.Name = name
	return o.UpdateHitmaker(h)
}

// DeleteHitmaker removes the habit, cancels any armed reminder, and lets
// the store cascade its completion records and widget bindings.
func (o *Orchestrator) DeleteHitmaker(id int64) error {
	o.scheduler.Cancel(id)

	if err := o.store.DeleteHitmaker(id); err != nil {
		return err
	}

	o.afterWrite(nil)
	if err := o.publishHabits(); err != nil {
		return err
	}
	return o.publishStatuses()
}

// MarkDone upserts today's completion record for the habit. A done day
// always stores progress 1.0; partial progress is only kept for not-done
// days, where it drives the ring fill.
func (o *Orchestrator) MarkDone(id int64, done bool, progress float64) error {
	if done {
		progress = 1.0
	}

	status := models.DailyStatus{
		HitmakerID: id,
		Date:       models.DayMillis(o.now()),
		IsDone:     done,
		Progress:   progress,
	}
	if err := o.store.UpsertDailyStatus(status); err != nil {
		return err
	}

	o.afterWrite(nil)
	return o.publishStatuses()
}

// Reorder rewrites priorities to the dense sequence 0..N-1 following the
// order of ids. Habits absent from ids keep their relative order after
// the listed ones.
func (o *Orchestrator) Reorder(ids []int64) error {
	hitmakers, err := o.store.GetAllHitmakers()
	if err != nil {
		return err
	}

	byID := make(map[int64]models.Hitmaker, len(hitmakers))
	for _, h := range hitmakers {
		byID[h.ID] = h
	}

	ordered := make([]models.Hitmaker, 0, len(hitmakers))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		h, ok := byID[id]
		if !ok {
			return fmt.Errorf("hitmaker %d not found", id)
		}
		ordered = append(ordered, h)
		seen[id] = true
	}
	for _, h := range hitmakers {
		if !seen[h.ID] {
			ordered = append(ordered, h)
		}
	}

	return o.applyOrder(ordered)
}

// MoveUp swaps the habit with its predecessor in display order.
func (o *Orchestrator) MoveUp(id int64) error {
	return o.swapNeighbor(id, -1)
}

// MoveDown swaps the habit with its successor in display order.
func (o *Orchestrator) MoveDown(id int64) error {
	return o.swapNeighbor(id, 1)
}

// MoveToTop moves the habit to the front of the display order.
func (o *Orchestrator) MoveToTop(id int64) error {
	hitmakers, err := o.store.GetAllHitmakers()
	if err != nil {
		return err
	}

	idx := indexOf(hitmakers, id)
	if idx < 0 {
		return fmt.Errorf("hitmaker %d not found", id)
	}

	moved := hitmakers[idx]
	ordered := append([]models.Hitmaker{moved}, append(append([]models.Hitmaker{}, hitmakers[:idx]...), hitmakers[idx+1:]...)...)
	return o.applyOrder(ordered)
}

func (o *Orchestrator) swapNeighbor(id int64, dir int) error {
	hitmakers, err := o.store.GetAllHitmakers()
	if err != nil {
		return err
	}

	idx := indexOf(hitmakers, id)
	if idx < 0 {
		return fmt.Errorf("hitmaker %d not found", id)
	}

	other := idx + dir
	if other < 0 || other >= len(hitmakers) {
		// Already at the boundary
		return nil
	}

	hitmakers[idx], hitmakers[other] = hitmakers[other], hitmakers[idx]
	return o.applyOrder(hitmakers)
}

// applyOrder persists dense 0..N-1 priorities matching the given order.
func (o *Orchestrator) applyOrder(ordered []models.Hitmaker) error {
	for i := range ordered {
		ordered[i].Priority = i
	}
	if err := o.store.UpdateHitmakerPriorities(ordered); err != nil {
		return err
	}

	o.afterWrite(nil)
	return o.publishHabits()
}

func indexOf(hitmakers []models.Hitmaker, id int64) int {
	for i, h := range hitmakers {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// afterWrite runs post-write side effects. Their failure never rolls
// back or fails the command.
func (o *Orchestrator) afterWrite(extra func()) {
	if extra != nil {
		extra()
	}
	o.refresher.Push()
}

func (o *Orchestrator) publishHabits() error {
	hitmakers, err := o.store.GetAllHitmakers()
	if err != nil {
		return err
	}
	o.habits.Publish(hitmakers)
	return nil
}

func (o *Orchestrator) publishStatuses() error {
	statuses, err := o.store.GetAllDailyStatuses()
	if err != nil {
		return err
	}
	o.statuses.Publish(statuses)
	return nil
}
