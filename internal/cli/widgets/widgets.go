package widgets

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/models"
	"github.com/julianstephens/hitmaker/internal/widget"
)

type PinCmd struct {
	Name string `arg:"" help:"Habit name or id to pin."`
}

func (c *PinCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	binding := models.WidgetBinding{
		ID:         uuid.New().String(),
		HitmakerID: h.ID,
		CreatedAt:  time.Now(),
	}
	if err := ctx.Store.AddWidgetBinding(binding); err != nil {
		return err
	}

	ctx.Refresher.Push()

	fmt.Printf("Pinned widget %s for %q\n", binding.ID, h.Name)
	fmt.Printf("Surface: %s\n", ctx.Refresher.Dir())
	return nil
}

type UnpinCmd struct {
	ID string `arg:"" help:"Widget instance id."`
}

func (c *UnpinCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Store.DeleteWidgetBinding(c.ID); err != nil {
		return err
	}
	ctx.Refresher.RemoveSurface(c.ID)

	fmt.Printf("Unpinned widget %s\n", c.ID)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	bindings, err := ctx.Store.GetAllWidgetBindings()
	if err != nil {
		return err
	}

	if len(bindings) == 0 {
		fmt.Println("No widgets pinned.")
		return nil
	}

	for _, b := range bindings {
		name := "(deleted habit)"
		if h, err := ctx.Store.GetHitmaker(b.HitmakerID); err == nil {
			name = h.Name
		}
		fmt.Printf("%s  %s\n", b.ID, name)
	}

	return nil
}

type ShowCmd struct {
	ID string `arg:"" help:"Widget instance id."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	binding, err := ctx.Store.GetWidgetBinding(c.ID)
	if err != nil {
		return fmt.Errorf("widget %s not found", c.ID)
	}

	h, err := ctx.Store.GetHitmaker(binding.HitmakerID)
	if err != nil {
		fmt.Print(widget.RenderMissing())
		return nil
	}

	statuses, err := ctx.Store.GetDailyStatusesForHitmaker(h.ID)
	if err != nil {
		return err
	}

	fmt.Print(widget.Render(h, statuses, time.Now()))
	return nil
}
