package habits

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/hitmaker/internal/cli"
)

type DeleteCmd struct {
	Name  string `arg:"" help:"Habit name or id."`
	Force bool   `short:"f" help:"Delete without confirmation."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := cli.ResolveHitmaker(ctx, c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q and all of its history?", h.Name)).
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Orchestrator.DeleteHitmaker(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", h.Name)
	return nil
}
