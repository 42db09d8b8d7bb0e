package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/utils"
)

type HabitFormModel struct {
	Name         string
	Color        string
	Icon         string
	ReminderTime string
	ReminderDays string
}

// NewHabitForm builds the add/edit form. The same form serves both; the
// caller pre-fills the model when editing.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	iconOpts := make([]huh.Option[string], 0, len(models.IconCatalog))
	for _, ic := range models.IconCatalog {
		iconOpts = append(iconOpts, huh.NewOption(fmt.Sprintf("%s %s", ic.Glyph, ic.Key), ic.Key))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Color (#RRGGBB)").
				Value(&fm.Color).
				Validate(func(s string) error {
					hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
					if len(hex) != 6 {
						return fmt.Errorf("expected RRGGBB hex")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Icon").
				Options(iconOpts...).
				Value(&fm.Icon),
			huh.NewInput().
				Title("Reminder Time (HH:MM)").
				Description("Leave empty for no reminder").
				Value(&fm.ReminderTime).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("invalid time format, use HH:MM")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Reminder Days").
				Options(
					huh.NewOption("Every day", models.DayFilterEveryday),
					huh.NewOption("Weekdays", models.DayFilterWeekdays),
					huh.NewOption("Weekends", models.DayFilterWeekends),
				).
				Value(&fm.ReminderDays),
		),
	).WithTheme(huh.ThemeDracula())
}
