package system

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized hitmaker storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
