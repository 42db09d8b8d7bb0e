package reminder

import (
	"testing"
	"time"

	"github.com/julianstephens/hitmaker/internal/models"
)

type fakeAlarms struct {
	set    map[int64]time.Time
	loads  map[int64]Payload
	cancel []int64
}

func newFakeAlarms() *fakeAlarms {
	return &fakeAlarms{
		set:   make(map[int64]time.Time),
		loads: make(map[int64]Payload),
	}
}

func (f *fakeAlarms) Set(id int64, at time.Time, payload Payload) error {
	f.set[id] = at
	f.loads[id] = payload
	return nil
}

func (f *fakeAlarms) Cancel(id int64) {
	delete(f.set, id)
	delete(f.loads, id)
	f.cancel = append(f.cancel, id)
}

type fakeNotifier struct {
	titles []string
	bodies []string
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, body)
	return nil
}

func strPtr(s string) *string { return &s }

func habitWithReminder(id int64, name, at, days string) models.Hitmaker {
	h := models.Hitmaker{ID: id, Name: name, Icon: "Star"}
	if at != "" {
		h.ReminderTime = strPtr(at)
	}
	if days != "" {
		h.ReminderDays = strPtr(days)
	}
	return h
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestScheduler_ArmRegistersNextFire(t *testing.T) {
	alarms := newFakeAlarms()
	s := NewScheduler(alarms, &fakeNotifier{})
	// Monday morning
	s.SetClock(fixedClock(time.Date(2025, time.May, 12, 8, 0, 0, 0, time.UTC)))

	h := habitWithReminder(1, "Read", "09:30", models.DayFilterEveryday)
	if err := s.Arm(h); err != nil {
		t.Fatalf("Arm failed: %v", err)
	}

	want := time.Date(2025, time.May, 12, 9, 30, 0, 0, time.UTC)
	if got := alarms.set[1]; !got.Equal(want) {
		t.Errorf("expected alarm at %v, got %v", want, got)
	}

	state, fire := s.StateOf(1)
	if state != Armed {
		t.Errorf("expected state Armed, got %v", state)
	}
	if !fire.Equal(want) {
		t.Errorf("expected armed fire time %v, got %v", want, fire)
	}
}

func TestScheduler_ArmWithoutReminderCancels(t *testing.T) {
	alarms := newFakeAlarms()
	s := NewScheduler(alarms, &fakeNotifier{})
	s.SetClock(fixedClock(time.Date(2025, time.May, 12, 8, 0, 0, 0, time.UTC)))

	h := habitWithReminder(1, "Read", "09:30", models.DayFilterEveryday)
	if err := s.Arm(h); err != nil {
		t.Fatalf("Arm failed: %v", err)
	}

	// Clearing the reminder and re-arming must cancel the alarm
	h.ReminderTime = nil
	if err := s.Arm(h); err != nil {
		t.Fatalf("Arm after clearing reminder failed: %v", err)
	}

	if state, _ := s.StateOf(1); state != Unscheduled {
		t.Errorf("expected state Unscheduled after clearing, got %v", state)
	}
	if len(alarms.cancel) == 0 {
		t.Error("expected the alarm backend to receive a cancel")
	}
}

func TestScheduler_ArmRejectsMalformedTime(t *testing.T) {
	s := NewScheduler(newFakeAlarms(), &fakeNotifier{})

	h := habitWithReminder(1, "Read", "9:3am", models.DayFilterEveryday)
	if err := s.Arm(h); err == nil {
		t.Error("expected an error for a malformed reminder time")
	}
}

func TestScheduler_HandleFireNotifiesAndRearms(t *testing.T) {
	alarms := newFakeAlarms()
	notifier := &fakeNotifier{}
	s := NewScheduler(alarms, notifier)
	// Monday at fire time
	fired := time.Date(2025, time.May, 12, 9, 30, 0, 0, time.UTC)
	s.SetClock(fixedClock(fired))

	s.HandleFire(Payload{
		HabitID:   1,
		Name:      "Read",
		DayFilter: models.DayFilterEveryday,
		Hour:      9,
		Minute:    30,
	})

	if len(notifier.titles) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.titles))
	}
	if notifier.titles[0] != "Self Message: Read" {
		t.Errorf("unexpected notification title %q", notifier.titles[0])
	}

	next := time.Date(2025, time.May, 13, 9, 30, 0, 0, time.UTC)
	if got := alarms.set[1]; !got.Equal(next) {
		t.Errorf("expected re-arm for tomorrow at %v, got %v", next, got)
	}
}

func TestScheduler_HandleFireSuppressedDayStillRearms(t *testing.T) {
	alarms := newFakeAlarms()
	notifier := &fakeNotifier{}
	s := NewScheduler(alarms, notifier)
	// Saturday: a WEEKDAYS filter suppresses the notification
	fired := time.Date(2025, time.May, 17, 9, 30, 0, 0, time.UTC)
	s.SetClock(fixedClock(fired))

	s.HandleFire(Payload{
		HabitID:   1,
		Name:      "Read",
		DayFilter: models.DayFilterWeekdays,
		Hour:      9,
		Minute:    30,
	})

	if len(notifier.titles) != 0 {
		t.Errorf("expected no notification on a filtered day, got %d", len(notifier.titles))
	}

	// The schedule must keep running through the filtered day
	next := time.Date(2025, time.May, 18, 9, 30, 0, 0, time.UTC)
	if got := alarms.set[1]; !got.Equal(next) {
		t.Errorf("expected re-arm at %v despite suppression, got %v", next, got)
	}
	if state, _ := s.StateOf(1); state != Armed {
		t.Errorf("expected state Armed after suppressed fire, got %v", state)
	}
}

func TestScheduler_Cancel(t *testing.T) {
	alarms := newFakeAlarms()
	s := NewScheduler(alarms, &fakeNotifier{})
	s.SetClock(fixedClock(time.Date(2025, time.May, 12, 8, 0, 0, 0, time.UTC)))

	h := habitWithReminder(7, "Stretch", "22:00", "")
	if err := s.Arm(h); err != nil {
		t.Fatalf("Arm failed: %v", err)
	}

	s.Cancel(7)

	if state, _ := s.StateOf(7); state != Unscheduled {
		t.Errorf("expected Unscheduled after cancel, got %v", state)
	}
	if _, ok := alarms.set[7]; ok {
		t.Error("alarm should have been removed from the backend")
	}
}

func TestScheduler_ArmAllSkipsDisabledAndBroken(t *testing.T) {
	alarms := newFakeAlarms()
	s := NewScheduler(alarms, &fakeNotifier{})
	s.SetClock(fixedClock(time.Date(2025, time.May, 12, 8, 0, 0, 0, time.UTC)))

	hitmakers := []models.Hitmaker{
		habitWithReminder(1, "Read", "09:30", models.DayFilterEveryday),
		habitWithReminder(2, "No Reminder", "", ""),
		habitWithReminder(3, "Broken", "later", ""),
		habitWithReminder(4, "Run", "06:00", models.DayFilterWeekdays),
	}

	s.ArmAll(hitmakers)

	if len(alarms.set) != 2 {
		t.Fatalf("expected 2 armed alarms, got %d", len(alarms.set))
	}
	if _, ok := alarms.set[1]; !ok {
		t.Error("habit 1 should be armed")
	}
	if _, ok := alarms.set[4]; !ok {
		t.Error("habit 4 should be armed")
	}
}
