package habits

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/constants"
	"github.com/julianstephens/hitmaker/internal/orchestrator"
	"github.com/julianstephens/hitmaker/internal/reminder"
	"github.com/julianstephens/hitmaker/internal/storage/sqlite"
)

type noopAlarms struct{}

func (noopAlarms) Set(id int64, at time.Time, payload reminder.Payload) error { return nil }
func (noopAlarms) Cancel(id int64)                                            {}

type noopNotifier struct{}

func (noopNotifier) Notify(title, body string) error { return nil }

func setupContext(t *testing.T) *cli.Context {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	sched := reminder.NewScheduler(noopAlarms{}, noopNotifier{})
	return &cli.Context{
		Store:        store,
		Orchestrator: orchestrator.New(store, sched, nil),
		Scheduler:    sched,
	}
}

func TestAddCmd_UsesSavedDefaultColor(t *testing.T) {
	ctx := setupContext(t)

	if err := ctx.Orchestrator.SetDefaultColor(0xFF112233); err != nil {
		t.Fatalf("SetDefaultColor failed: %v", err)
	}

	cmd := &AddCmd{Name: "Read", Icon: constants.DefaultIcon, Days: "everyday"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("AddCmd failed: %v", err)
	}

	h, err := ctx.Store.GetHitmakerByName("Read")
	if err != nil {
		t.Fatalf("habit not stored: %v", err)
	}
	if h.Color != 0xFF112233 {
		t.Errorf("expected saved default color 0xFF112233, got %#X", h.Color)
	}
}

func TestAddCmd_ExplicitColorWinsOverDefault(t *testing.T) {
	ctx := setupContext(t)

	if err := ctx.Orchestrator.SetDefaultColor(0xFF112233); err != nil {
		t.Fatalf("SetDefaultColor failed: %v", err)
	}

	cmd := &AddCmd{Name: "Run", Color: "3B82F6", Icon: constants.DefaultIcon, Days: "everyday"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("AddCmd failed: %v", err)
	}

	h, err := ctx.Store.GetHitmakerByName("Run")
	if err != nil {
		t.Fatalf("habit not stored: %v", err)
	}
	if h.Color != 0xFF3B82F6 {
		t.Errorf("expected explicit color 0xFF3B82F6, got %#X", h.Color)
	}
}

func TestColorCmd_DefaultFlagSavesTunable(t *testing.T) {
	ctx := setupContext(t)

	add := &AddCmd{Name: "Read", Icon: constants.DefaultIcon, Days: "everyday"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("AddCmd failed: %v", err)
	}

	cmd := &ColorCmd{Name: "Read", Color: "8B5CF6", Default: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("ColorCmd failed: %v", err)
	}

	h, err := ctx.Store.GetHitmakerByName("Read")
	if err != nil {
		t.Fatalf("habit not stored: %v", err)
	}
	if h.Color != 0xFF8B5CF6 {
		t.Errorf("expected recolored habit 0xFF8B5CF6, got %#X", h.Color)
	}
	if got := ctx.Orchestrator.DefaultColor(); got != 0xFF8B5CF6 {
		t.Errorf("expected saved default 0xFF8B5CF6, got %#X", got)
	}
}

func TestColorCmd_WithoutDefaultFlagLeavesTunable(t *testing.T) {
	ctx := setupContext(t)

	add := &AddCmd{Name: "Read", Icon: constants.DefaultIcon, Days: "everyday"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("AddCmd failed: %v", err)
	}

	cmd := &ColorCmd{Name: "Read", Color: "8B5CF6"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("ColorCmd failed: %v", err)
	}

	if got := ctx.Orchestrator.DefaultColor(); got != constants.DefaultColor {
		t.Errorf("expected builtin default %#X, got %#X", int64(constants.DefaultColor), got)
	}
}

func TestDeleteCmd_ForceSkipsConfirmation(t *testing.T) {
	ctx := setupContext(t)

	add := &AddCmd{Name: "Read", Icon: constants.DefaultIcon, Days: "everyday"}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("AddCmd failed: %v", err)
	}

	cmd := &DeleteCmd{Name: "Read", Force: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("DeleteCmd failed: %v", err)
	}

	if _, err := ctx.Store.GetHitmakerByName("Read"); err == nil {
		t.Error("expected habit to be gone after forced delete")
	}
}
