package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/orchestrator"
	"github.com/julianstephens/hitmaker/internal/reminder"
	"github.com/julianstephens/hitmaker/internal/storage"
	"github.com/julianstephens/hitmaker/internal/widget"
)

// Context is passed to every command Run method. The store and its
// collaborators are constructed once in main and injected here; nothing
// reaches for a global handle.
type Context struct {
	Store        storage.Provider
	Orchestrator *orchestrator.Orchestrator
	Scheduler    *reminder.Scheduler
	Refresher    *widget.Refresher
	Debug        bool
}

// ResolveHitmaker finds a habit by name or numeric id.
func ResolveHitmaker(ctx *Context, nameOrID string) (models.Hitmaker, error) {
	if id, err := strconv.ParseInt(nameOrID, 10, 64); err == nil {
		if h, err := ctx.Store.GetHitmaker(id); err == nil {
			return h, nil
		}
	}

	h, err := ctx.Store.GetHitmakerByName(nameOrID)
	if err != nil {
		return models.Hitmaker{}, fmt.Errorf("habit %q not found", nameOrID)
	}
	return h, nil
}

// ParseColor parses a hex color like "#22C55E" or "22C55E" into the
// packed ARGB form used by the store, with full alpha.
func ParseColor(s string) (int64, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q (expected RRGGBB hex)", s)
	}
	rgb, err := strconv.ParseInt(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q (expected RRGGBB hex)", s)
	}
	return 0xFF000000 | rgb, nil
}

// ParseDayFilter validates and normalizes a day-filter token.
func ParseDayFilter(s string) (string, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	switch token {
	case models.DayFilterEveryday, models.DayFilterWeekends, models.DayFilterWeekdays:
		return token, nil
	default:
		return "", fmt.Errorf("invalid day filter %q (expected everyday, weekends, or weekdays)", s)
	}
}
