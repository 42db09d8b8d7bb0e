package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestHitmakerValidate(t *testing.T) {
	tests := []struct {
		name    string
		habit   Hitmaker
		wantErr bool
	}{
		{"valid", Hitmaker{Name: "Read"}, false},
		{"valid with reminder", Hitmaker{Name: "Read", ReminderTime: strPtr("21:00")}, false},
		{"empty name", Hitmaker{}, true},
		{"malformed reminder", Hitmaker{Name: "Read", ReminderTime: strPtr("9pm")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.habit.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHitmakerHasReminder(t *testing.T) {
	h := Hitmaker{Name: "Read"}
	if h.HasReminder() {
		t.Error("no reminder time set, HasReminder should be false")
	}

	h.ReminderTime = strPtr("")
	if h.HasReminder() {
		t.Error("empty reminder time should not count as a reminder")
	}

	h.ReminderTime = strPtr("21:00")
	if !h.HasReminder() {
		t.Error("expected HasReminder true")
	}
}

func TestHitmakerDayFilter_DefaultsToEveryday(t *testing.T) {
	h := Hitmaker{Name: "Read"}
	if got := h.DayFilter(); got != DayFilterEveryday {
		t.Errorf("expected default %s, got %s", DayFilterEveryday, got)
	}

	h.ReminderDays = strPtr("")
	if got := h.DayFilter(); got != DayFilterEveryday {
		t.Errorf("expected default %s for empty token, got %s", DayFilterEveryday, got)
	}

	h.ReminderDays = strPtr(DayFilterWeekends)
	if got := h.DayFilter(); got != DayFilterWeekends {
		t.Errorf("expected %s, got %s", DayFilterWeekends, got)
	}
}

func TestDayMillis_TruncatesToMidnightUTC(t *testing.T) {
	late := time.Date(2025, time.May, 12, 23, 45, 30, 123, time.UTC)

	got := DayMillis(late)

	want := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}

	// Same calendar day maps to the same key regardless of clock time
	early := time.Date(2025, time.May, 12, 0, 0, 1, 0, time.UTC)
	if DayMillis(early) != got {
		t.Error("two instants on the same day must share a day key")
	}
}

func TestDayFromMillis_RoundTrip(t *testing.T) {
	day := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)

	if got := DayFromMillis(day.UnixMilli()); !got.Equal(day) {
		t.Errorf("expected %v, got %v", day, got)
	}
}

func TestDoneDays_OnlyDoneRecords(t *testing.T) {
	d1 := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC).UnixMilli()
	d2 := time.Date(2025, time.May, 13, 0, 0, 0, 0, time.UTC).UnixMilli()

	statuses := []DailyStatus{
		{HitmakerID: 1, Date: d1, IsDone: true, Progress: 1.0},
		{HitmakerID: 1, Date: d2, IsDone: false, Progress: 0.5},
	}

	done := DoneDays(statuses)
	if !done[d1] {
		t.Error("expected the done day present")
	}
	if done[d2] {
		t.Error("a partial-progress day must not appear as done")
	}
}

func TestIconByKey(t *testing.T) {
	ic := IconByKey("Star")
	if ic.Key != "Star" || ic.Glyph == "" {
		t.Errorf("unexpected catalog entry: %+v", ic)
	}

	fallback := IconByKey("NotARealIcon")
	if fallback.Key != "Star" {
		t.Errorf("expected Star fallback for unknown key, got %q", fallback.Key)
	}

	if ValidIconKey("NotARealIcon") {
		t.Error("unknown key should not validate")
	}
	if !ValidIconKey("Star") {
		t.Error("catalog key should validate")
	}
}
