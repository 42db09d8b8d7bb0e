package habits

import (
	"fmt"

	"github.com/julianstephens/hitmaker/internal/cli"
	"github.com/julianstephens/hitmaker/internal/models"
)

type IconsCmd struct{}

func (c *IconsCmd) Run(ctx *cli.Context) error {
	category := ""
	for _, icon := range models.IconCatalog {
		if icon.Category != category {
			category = icon.Category
			fmt.Printf("\n%s\n", category)
		}
		fmt.Printf("  %s  %s\n", icon.Glyph, icon.Key)
	}
	return nil
}
