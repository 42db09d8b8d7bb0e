package widget

import (
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/hitmaker/internal/logger"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/storage"
)

// Refresher re-renders every pinned widget surface. It is invoked after
// each mutating command; failures are logged and never surfaced to the
// command that triggered the push.
type Refresher struct {
	store storage.Provider
	dir   string
	now   func() time.Time
}

func NewRefresher(store storage.Provider, dir string) *Refresher {
	return &Refresher{store: store, dir: dir, now: time.Now}
}

// Dir is where surfaces are written, one file per widget instance id.
func (r *Refresher) Dir() string {
	return r.dir
}

func (r *Refresher) Push() {
	bindings, err := r.store.GetAllWidgetBindings()
	if err != nil {
		logger.Warn("widget refresh failed", "error", err)
		return
	}
	if len(bindings) == 0 {
		return
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		logger.Warn("widget refresh failed", "error", err)
		return
	}

	for _, b := range bindings {
		if err := os.WriteFile(filepath.Join(r.dir, b.ID), []byte(r.renderBinding(b)), 0644); err != nil {
			logger.Warn("widget surface write failed", "widget", b.ID, "error", err)
		}
	}
}

// renderBinding renders one instance; a binding whose habit no longer
// exists renders the placeholder but is left in place.
func (r *Refresher) renderBinding(b models.WidgetBinding) string {
	habit, err := r.store.GetHitmaker(b.HitmakerID)
	if err != nil {
		return RenderMissing()
	}

	statuses, err := r.store.GetDailyStatusesForHitmaker(b.HitmakerID)
	if err != nil {
		return RenderMissing()
	}

	return Render(habit, statuses, r.now())
}

// RemoveSurface deletes the rendered file for an unpinned instance.
func (r *Refresher) RemoveSurface(id string) {
	if err := os.Remove(filepath.Join(r.dir, id)); err != nil && !os.IsNotExist(err) {
		logger.Warn("widget surface removal failed", "widget", id, "error", err)
	}
}
