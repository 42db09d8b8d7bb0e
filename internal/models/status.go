package models

// DailyStatus is one day's completion record for one habit. At most one
// row exists per (HitmakerID, Date) pair; the storage layer enforces this
// with a unique index. Progress is only meaningful while IsDone is false,
// where it drives the partial-completion ring fill.
type DailyStatus struct {
	ID         int64   `json:"id"`
	HitmakerID int64   `json:"hitmaker_id"`
	Date       int64   `json:"date"` // midnight UTC of the day, epoch millis
	IsDone     bool    `json:"is_done"`
	Progress   float64 `json:"progress"`
}
