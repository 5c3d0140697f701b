package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
)

// ListCommandsCommand lists all registered commands.
type ListCommandsCommand struct{}

func init() {
	RegisterCommand(&ListCommandsCommand{})
}

// Name returns the command's name.
func (c *ListCommandsCommand) Name() string {
	return "commands"
}

// Description returns a brief help description.
func (c *ListCommandsCommand) Description() string {
	return "Lists all available commands."
}

// Usage returns a brief usage string.
func (c *ListCommandsCommand) Usage() string {
	return ""
}

// ExpectedArgs returns definitions for expected positional arguments.
func (c *ListCommandsCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{}
}

// ExpectedFlags returns definitions for expected flags.
func (c *ListCommandsCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{}
}

// Execute prints every command except itself.
func (c *ListCommandsCommand) Execute(args cli.CommandArgs) error {
	fmt.Fprintln(stdout, "Available Commands:")
	for _, cmd := range GetAllCommands() {
		if cmd.Name() == c.Name() {
			continue
		}
		fmt.Fprintf(stdout, "  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Fprintln(stdout, "\nRun 'ng-skeleton [command] --help' for more information on a specific command.")
	return nil
}
