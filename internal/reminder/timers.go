package reminder

import (
	"sync"
	"time"
)

// TimerAlarms backs the Alarms interface with in-process timers. It is
// the alarm surface used by `hitmaker remind serve`.
type TimerAlarms struct {
	mu     sync.Mutex
	fire   func(Payload)
	timers map[int64]*time.Timer
}

func NewTimerAlarms(fire func(Payload)) *TimerAlarms {
	return &TimerAlarms{
		fire:   fire,
		timers: make(map[int64]*time.Timer),
	}
}

func (a *TimerAlarms) Set(id int64, at time.Time, payload Payload) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.timers[id]; ok {
		t.Stop()
	}

	d := time.Until(at)
	if d < 0 {
		d = 0
	}
	a.timers[id] = time.AfterFunc(d, func() {
		a.fire(payload)
	})

	return nil
}

func (a *TimerAlarms) Cancel(id int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if t, ok := a.timers[id]; ok {
		t.Stop()
		delete(a.timers, id)
	}
}

// Stop cancels every pending timer. Called on daemon shutdown.
func (a *TimerAlarms) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for id, t := range a.timers {
		t.Stop()
		delete(a.timers, id)
	}
}
