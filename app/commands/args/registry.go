package args

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
)

// ArgDef is an alias for cli.ArgDef.
type ArgDef = cli.ArgDef

// FlagDef is an alias for cli.FlagDef.
type FlagDef = cli.FlagDef

// Command represents a CLI command that can be executed directly.
type Command interface {
	// Name returns the command's name (e.g., "generate", "config set").
	Name() string
	// Description returns a brief help description for the command.
	Description() string
	// Execute runs the command logic with the parsed arguments.
	Execute(args cli.CommandArgs) error
	// Usage returns a brief usage string (e.g., "<script.yaml> [--out file]").
	Usage() string
	// ExpectedArgs returns definitions for expected positional arguments.
	ExpectedArgs() []ArgDef
	// ExpectedFlags returns definitions for expected flags.
	ExpectedFlags() []FlagDef
}

// commandRegistry holds all registered CLI commands by name.
var commandRegistry = make(map[string]Command)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// SetOutput redirects command output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := stdout
	stdout = w
	return prev
}

// RegisterCommand adds a command to the registry. It is called from the
// init() function of each command's file.
func RegisterCommand(cmd Command) {
	if _, exists := commandRegistry[cmd.Name()]; exists {
		panic(fmt.Sprintf("Command already registered: %s", cmd.Name()))
	}
	commandRegistry[cmd.Name()] = cmd
}

// GetCommand retrieves a command from the registry by its name.
func GetCommand(name string) (Command, bool) {
	cmd, found := commandRegistry[name]
	return cmd, found
}

// CommandExists checks if a command with the given name is registered.
func CommandExists(name string) bool {
	_, found := commandRegistry[name]
	return found
}

// GetAllCommands returns all registered commands sorted by name.
func GetAllCommands() []Command {
	cmds := make([]Command, 0, len(commandRegistry))
	for _, cmd := range commandRegistry {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Registry exposes the package registry to the cli parser. It satisfies
// cli.CommandRegistryChecker and cli.FlagSpecProvider.
type Registry struct{}

// CommandExists implements cli.CommandRegistryChecker.
func (Registry) CommandExists(name string) bool { return CommandExists(name) }

// FlagTakesValue implements cli.FlagSpecProvider.
func (Registry) FlagTakesValue(command, flag string) (bool, bool) {
	cmd, ok := GetCommand(command)
	if !ok {
		return false, false
	}
	for _, f := range cmd.ExpectedFlags() {
		if f.Name == flag || (f.ShortName != "" && f.ShortName == flag) {
			return f.HasValue, true
		}
	}
	return false, false
}

// Execute validates the parsed arguments against the command's definitions
// and runs it.
func Execute(args cli.CommandArgs) error {
	cmd, ok := GetCommand(args.CommandName)
	if !ok {
		return fmt.Errorf("unknown command: %s", args.CommandName)
	}
	if err := validateArgs(cmd, args); err != nil {
		return err
	}
	slog.Debug("executing command",
		"command", cmd.Name(),
		"variables", args.Variables,
		"flags", args.Flags,
		"bool_flags", args.BoolFlags)
	return cmd.Execute(args)
}

// validateArgs checks required positionals, unknown flags and flag values.
func validateArgs(cmd Command, args cli.CommandArgs) error {
	required := 0
	for _, a := range cmd.ExpectedArgs() {
		if a.Required {
			required++
		}
	}
	if len(args.Variables) < required {
		missing := cmd.ExpectedArgs()[len(args.Variables)].Name
		return fmt.Errorf("missing required argument: %s", missing)
	}
	if len(args.Variables) > len(cmd.ExpectedArgs()) {
		return fmt.Errorf("too many arguments for %s: %v", cmd.Name(), args.Variables[len(cmd.ExpectedArgs()):])
	}

	defs := make(map[string]FlagDef)
	for _, f := range cmd.ExpectedFlags() {
		defs[f.Name] = f
		if f.ShortName != "" {
			defs[f.ShortName] = f
		}
	}
	for name := range args.BoolFlags {
		if name == "help" || name == "h" {
			continue
		}
		def, ok := defs[name]
		if !ok {
			return fmt.Errorf("unknown flag for %s: %s", cmd.Name(), name)
		}
		if def.HasValue {
			return fmt.Errorf("flag --%s needs a value", def.Name)
		}
	}
	for name := range args.Flags {
		def, ok := defs[name]
		if !ok {
			return fmt.Errorf("unknown flag for %s: %s", cmd.Name(), name)
		}
		if !def.HasValue {
			return fmt.Errorf("flag --%s does not take a value", def.Name)
		}
	}
	return nil
}

// flagValue looks a valued flag up under its long and short names.
func flagValue(args cli.CommandArgs, def FlagDef) (string, bool) {
	if v, ok := args.Flags[def.Name]; ok {
		return v, true
	}
	if def.ShortName != "" {
		if v, ok := args.Flags[def.ShortName]; ok {
			return v, true
		}
	}
	return "", false
}

// boolFlag reports whether a boolean flag was given under either name.
func boolFlag(args cli.CommandArgs, def FlagDef) bool {
	return args.BoolFlags[def.Name] || (def.ShortName != "" && args.BoolFlags[def.ShortName])
}
