package habits

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/models"
)

type RenameCmd struct {
	Name    string `arg:"" help:"Habit name or id."`
	NewName string `arg:"" help:"New habit name."`
}

func (c *RenameCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetHitmakerByName(c.NewName); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.NewName)
	}

	if err := ctx.Orchestrator.RenameHitmaker(h.ID, c.NewName); err != nil {
		return err
	}

	fmt.Printf("Renamed %q to %q\n", h.Name, c.NewName)
	return nil
}

type ColorCmd struct {
	Name    string `arg:"" help:"Habit name or id."`
	Color   string `arg:"" help:"New accent color (RRGGBB hex)."`
	Default bool   `help:"Also save this color as the default for new habits."`
}

func (c *ColorCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	color, err := cli.ParseColor(c.Color)
	if err != nil {
		return err
	}

	h.Color = color
	if err := ctx.Orchestrator.UpdateHitmaker(h); err != nil {
		return err
	}

	if c.Default {
		if err := ctx.Orchestrator.SetDefaultColor(color); err != nil {
			return err
		}
	}

	fmt.Printf("Updated color for %q\n", h.Name)
	return nil
}

type IconCmd struct {
	Name string `arg:"" help:"Habit name or id."`
	Icon string `arg:"" help:"New icon key."`
}

func (c *IconCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	if !models.ValidIconKey(c.Icon) {
		return fmt.Errorf("unknown icon %q", c.Icon)
	}

	h.Icon = c.Icon
	if err := ctx.Orchestrator.UpdateHitmaker(h); err != nil {
		return err
	}

	fmt.Printf("Updated icon for %q: %s\n", h.Name, models.IconByKey(c.Icon).Glyph)
	return nil
}
