package habits

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
)

type MoveCmd struct {
	Name      string `arg:"" help:"Habit name or id."`
	Direction string `arg:"" enum:"up,down,top" help:"Direction: up, down, or top."`
}

func (c *MoveCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	switch c.Direction {
	case "up":
		err = ctx.Orchestrator.MoveUp(h.ID)
	case "down":
		err = ctx.Orchestrator.MoveDown(h.ID)
	case "top":
		err = ctx.Orchestrator.MoveToTop(h.ID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Moved %q %s\n", h.Name, c.Direction)
	return nil
}

type ReorderCmd struct {
	Names []string `arg:"" help:"Habit names in the desired display order."`
}

func (c *ReorderCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	ids := make([]int64, 0, len(c.Names))
	for _, name := range c.Names {
		h, err := cli.ResolveHitmaker(ctx, name)
		if err != nil {
			return err
		}
		ids = append(ids, h.ID)
	}

	if err := ctx.Orchestrator.Reorder(ids); err != nil {
		return err
	}

	fmt.Println("Reordered habits")
	return nil
}
