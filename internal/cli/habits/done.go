package habits

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
)

type DoneCmd struct {
	Name string `arg:"" help:"Habit name or id."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Orchestrator.MarkDone(h.ID, true, 1.0); err != nil {
		return err
	}

	fmt.Printf("Marked %q done for today\n", h.Name)
	return nil
}

type UndoneCmd struct {
	Name     string  `arg:"" help:"Habit name or id."`
	Progress float64 `short:"p" help:"Partial progress (0..1) to keep for today." default:"0"`
}

func (c *UndoneCmd) Validate() error {
	if c.Progress < 0 || c.Progress > 1 {
		return fmt.Errorf("progress must be between 0 and 1")
	}
	return nil
}

func (c *UndoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Orchestrator.MarkDone(h.ID, false, c.Progress); err != nil {
		return err
	}

	fmt.Printf("Unmarked %q for today\n", h.Name)
	return nil
}
