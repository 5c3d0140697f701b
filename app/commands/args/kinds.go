package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
)

// KindsCommand lists the element kinds that can be added.
type KindsCommand struct{}

func init() {
	RegisterCommand(&KindsCommand{})
}

func (c *KindsCommand) Name() string { return "kinds" }

func (c *KindsCommand) Description() string {
	return "Lists the element kinds and where each may be placed."
}

func (c *KindsCommand) Usage() string { return "" }

func (c *KindsCommand) ExpectedArgs() []ArgDef { return []ArgDef{} }

func (c *KindsCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *KindsCommand) Execute(args cli.CommandArgs) error {
	for _, k := range outline.AddableKinds {
		fmt.Fprintf(stdout, "  %-8s %s\n", k.Tag(), kindRule(k))
	}
	return nil
}

func kindRule(k outline.Kind) string {
	switch {
	case k.IsLandmark():
		return "landmark: once, at the top level, in header/nav/main/footer order"
	case k == outline.KindListItem:
		return "only inside a ul"
	case k == outline.KindLink:
		return "leaf: renders placeholder link text"
	case k == outline.KindImage:
		return "leaf: renders placeholder src and alt"
	}
	return "anywhere"
}
