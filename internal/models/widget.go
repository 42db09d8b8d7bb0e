package models

import "time"

// WidgetBinding pins one widget surface to one habit. Each pinned
// placement gets its own instance id at pin time.
type WidgetBinding struct {
	ID         string    `json:"id"` // instance uuid
	HitmakerID int64     `json:"hitmaker_id"`
	CreatedAt  time.Time `json:"created_at"`
}
