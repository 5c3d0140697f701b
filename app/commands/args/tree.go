package args

import (
	"fmt"
	"log/slog"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/utils"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

// TreeCommand replays a script and prints the outline tree.
type TreeCommand struct{}

func init() {
	RegisterCommand(&TreeCommand{})
}

func (c *TreeCommand) Name() string { return "tree" }

func (c *TreeCommand) Description() string {
	return "Prints the outline a YAML script builds, marking the final selection."
}

func (c *TreeCommand) Usage() string { return "<script.yaml>" }

func (c *TreeCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "script", Description: "Path to the YAML command script.", Required: true},
	}
}

func (c *TreeCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *TreeCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Warn("using default settings", "error", err)
	}
	_, s, err := replayScript(args.Variables[0], cfg)
	if err != nil {
		return err
	}
	tree := utils.RenderOutlineTree(s.Root(), utils.SelectedMark(s))
	if tree == "" {
		tree = "(empty outline)"
	}
	fmt.Fprintln(stdout, tree)
	return nil
}
