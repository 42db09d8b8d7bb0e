package widget

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/storage/sqlite"
)

func setupRefresher(t *testing.T) (*Refresher, *sqlite.Store) {
	t.Helper()

	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewRefresher(store, filepath.Join(dir, "widgets")), store
}

func TestPush_WritesOneSurfacePerBinding(t *testing.T) {
	r, store := setupRefresher(t)

	id, err := store.AddHitmaker(models.Hitmaker{
		Name:      "Read",
		Color:     0xFF22C55E,
		StartDate: time.Now().UnixMilli(),
		Icon:      "Book",
	})
	if err != nil {
		t.Fatalf("AddHitmaker failed: %v", err)
	}

	binding := models.WidgetBinding{ID: uuid.New().String(), HitmakerID: id, CreatedAt: time.Now()}
	if err := store.AddWidgetBinding(binding); err != nil {
		t.Fatalf("AddWidgetBinding failed: %v", err)
	}

	r.Push()

	data, err := os.ReadFile(filepath.Join(r.Dir(), binding.ID))
	if err != nil {
		t.Fatalf("expected a surface file for the binding: %v", err)
	}
	if !strings.Contains(string(data), "Read") {
		t.Error("surface should contain the habit name")
	}
}

func TestPush_MissingHabitRendersPlaceholder(t *testing.T) {
	r, store := setupRefresher(t)

	id, err := store.AddHitmaker(models.Hitmaker{
		Name:      "Read",
		Color:     0xFF22C55E,
		StartDate: time.Now().UnixMilli(),
		Icon:      "Book",
	})
	if err != nil {
		t.Fatalf("AddHitmaker failed: %v", err)
	}

	out := r.renderBinding(models.WidgetBinding{ID: uuid.New().String(), HitmakerID: id + 1})
	if !strings.Contains(out, "Habit not found") {
		t.Error("expected the placeholder for a missing habit")
	}
}

func TestRemoveSurface(t *testing.T) {
	r, store := setupRefresher(t)

	id, _ := store.AddHitmaker(models.Hitmaker{
		Name:      "Read",
		Color:     0xFF22C55E,
		StartDate: time.Now().UnixMilli(),
		Icon:      "Book",
	})
	binding := models.WidgetBinding{ID: uuid.New().String(), HitmakerID: id, CreatedAt: time.Now()}
	store.AddWidgetBinding(binding)
	r.Push()

	r.RemoveSurface(binding.ID)

	if _, err := os.Stat(filepath.Join(r.Dir(), binding.ID)); !os.IsNotExist(err) {
		t.Error("expected the surface file removed")
	}

	// Removing a surface that is already gone is quiet
	r.RemoveSurface(binding.ID)
}
