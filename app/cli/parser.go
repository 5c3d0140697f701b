package cli

import (
	"fmt"
	"strings"
)

// CommandRegistryChecker reports whether a command name exists.
// It keeps the cli package free of a dependency on the commands package.
type CommandRegistryChecker interface {
	CommandExists(name string) bool
}

// FlagSpecProvider is implemented by registries that know the flags of their
// commands. When the parser can ask, a known boolean flag never consumes the
// next argument as its value.
type FlagSpecProvider interface {
	// FlagTakesValue reports whether flag of command expects a value, and
	// whether the flag is known at all.
	FlagTakesValue(command, flag string) (takesValue, known bool)
}

// ArgDef defines an expected positional argument.
type ArgDef struct {
	Name        string // e.g. "script"
	Description string
	Required    bool
}

// FlagDef defines an expected flag.
type FlagDef struct {
	Name        string // Long name (e.g. "out")
	ShortName   string // Short name (e.g. "o"), empty if none
	Description string
	HasValue    bool // true for --flag=v, false for --flag
	Required    bool
}

// CommandArgs holds the structured result of parsing the command line.
type CommandArgs struct {
	RawArgs          []string
	CommandName      string            // "generate", "config set", ...
	Variables        []string          // Positional arguments after the command name
	Flags            map[string]string // --out=page.html -> map["out"]="page.html"
	BoolFlags        map[string]bool   // --copy -> map["copy"]=true
	HelpRequested    bool              // --help or -h anywhere
	VersionRequested bool              // --version anywhere
	DebugRequested   bool              // --debug anywhere
	VerboseRequested bool              // --verbose anywhere
	Errors           []error
}

// HasFlag reports whether name was given either as a boolean flag or with a value.
func (a CommandArgs) HasFlag(name string) bool {
	if a.BoolFlags[name] {
		return true
	}
	_, ok := a.Flags[name]
	return ok
}

// Flag returns the value of a valued flag, or def.
func (a CommandArgs) Flag(name, def string) string {
	if v, ok := a.Flags[name]; ok {
		return v
	}
	return def
}

var debugEnabled bool

// SetDebugEnabled enables or disables debug logging for this process.
func SetDebugEnabled(on bool) { debugEnabled = on }

// IsDebugEnabled reports whether debug logging is enabled.
func IsDebugEnabled() bool { return debugEnabled }

var verboseEnabled bool

// SetVerboseEnabled enables or disables verbose informational output.
func SetVerboseEnabled(on bool) { verboseEnabled = on }

// IsVerboseEnabled reports whether verbose mode is enabled.
func IsVerboseEnabled() bool { return verboseEnabled }

// globalFlags are handled by main and removed before command flag parsing.
var globalFlags = map[string]bool{
	"--version": true,
	"--debug":   true,
	"--verbose": true,
}

// ParseCommandLineArgs processes the raw command-line arguments using a command registry checker.
func ParseCommandLineArgs(rawArgs []string, registry CommandRegistryChecker) CommandArgs {
	parsed := CommandArgs{
		RawArgs:   rawArgs,
		Variables: make([]string, 0),
		Flags:     make(map[string]string),
		BoolFlags: make(map[string]bool),
		Errors:    make([]error, 0),
	}

	// Stage 0: global flags count wherever they appear.
	for _, arg := range rawArgs {
		switch arg {
		case "--help", "-h":
			parsed.HelpRequested = true
		case "--version":
			parsed.VersionRequested = true
		case "--debug":
			parsed.DebugRequested = true
		case "--verbose":
			parsed.VerboseRequested = true
		}
	}

	// Stage 1: resolve the command name, preferring two-word commands.
	rest := make([]string, 0, len(rawArgs))
	for _, arg := range rawArgs {
		if !globalFlags[arg] {
			rest = append(rest, arg)
		}
	}
	parsed.CommandName, rest = resolveCommand(rest, registry)

	// Stage 2: flags and positional variables.
	specs, _ := registry.(FlagSpecProvider)
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		next := ""
		if i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			next = rest[i+1]
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
			if !hasValue && next != "" && takesValue(specs, parsed.CommandName, name) {
				value, hasValue = next, true
				i++
			}
			parsed.setFlag("--", name, value, hasValue)

		case strings.HasPrefix(arg, "-"):
			chars := strings.TrimPrefix(arg, "-")
			if chars == "" {
				parsed.Errors = append(parsed.Errors, fmt.Errorf("invalid flag format: %s", arg))
				continue
			}
			for j, c := range chars {
				name := string(c)
				last := j == len(chars)-1
				if last && next != "" && takesValue(specs, parsed.CommandName, name) {
					parsed.setFlag("-", name, next, true)
					i++
					continue
				}
				parsed.setFlag("-", name, "", false)
			}

		default:
			parsed.Variables = append(parsed.Variables, arg)
		}
	}

	return parsed
}

// resolveCommand finds the command among the first two non-flag arguments and
// returns the remaining arguments without the command words.
func resolveCommand(args []string, registry CommandRegistryChecker) (string, []string) {
	first, second := -1, -1
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if first == -1 {
			first = i
		} else {
			second = i
			break
		}
	}
	if first == -1 {
		return "", args
	}

	without := func(skip ...int) []string {
		out := make([]string, 0, len(args))
		for i, arg := range args {
			drop := false
			for _, s := range skip {
				if i == s {
					drop = true
				}
			}
			if !drop {
				out = append(out, arg)
			}
		}
		return out
	}

	if second != -1 {
		if name := args[first] + " " + args[second]; registry.CommandExists(name) {
			return name, without(first, second)
		}
	}
	if registry.CommandExists(args[first]) {
		return args[first], without(first)
	}
	return "", args
}

// takesValue decides whether a flag given without "=" consumes the next
// argument. Unknown flags fall back to consuming it.
func takesValue(specs FlagSpecProvider, command, flag string) bool {
	if flag == "help" || flag == "h" {
		return false
	}
	if specs == nil {
		return true
	}
	hasValue, known := specs.FlagTakesValue(command, flag)
	if !known {
		return true
	}
	return hasValue
}

func (a *CommandArgs) setFlag(dash, name, value string, hasValue bool) {
	if hasValue {
		if _, exists := a.Flags[name]; exists {
			a.Errors = append(a.Errors, fmt.Errorf("flag provided more than once: %s%s", dash, name))
		}
		a.Flags[name] = value
		return
	}
	if _, exists := a.BoolFlags[name]; exists {
		a.Errors = append(a.Errors, fmt.Errorf("boolean flag provided more than once: %s%s", dash, name))
	}
	a.BoolFlags[name] = true
}
