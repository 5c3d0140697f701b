package args

import (
	"fmt"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

// ConfigGetCommand prints one setting.
type ConfigGetCommand struct{}

// ConfigSetCommand changes one setting and saves the config file.
type ConfigSetCommand struct{}

// ConfigListCommand prints every setting.
type ConfigListCommand struct{}

func init() {
	RegisterCommand(&ConfigGetCommand{})
	RegisterCommand(&ConfigSetCommand{})
	RegisterCommand(&ConfigListCommand{})
}

func (c *ConfigGetCommand) Name() string        { return "config get" }
func (c *ConfigGetCommand) Description() string { return "Gets the value of a configuration key." }
func (c *ConfigGetCommand) Usage() string       { return "<key>" }
func (c *ConfigGetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{{Name: "key", Description: "The configuration key to get.", Required: true}}
}
func (c *ConfigGetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigGetCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	value, err := cfg.Get(args.Variables[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, value)
	return nil
}

func (c *ConfigSetCommand) Name() string        { return "config set" }
func (c *ConfigSetCommand) Description() string { return "Sets a configuration key to a value." }
func (c *ConfigSetCommand) Usage() string       { return "<key> <value>" }
func (c *ConfigSetCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "key", Description: "The configuration key to set.", Required: true},
		{Name: "value", Description: "The value to assign to the key.", Required: true},
	}
}
func (c *ConfigSetCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigSetCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	key, value := args.Variables[0], args.Variables[1]
	if err := cfg.Set(key, value); err != nil {
		return fmt.Errorf("cannot set %s: %w", key, err)
	}
	if err := config.SaveConfig(cfg); err != nil {
		return err
	}
	saved, _ := cfg.Get(key)
	fmt.Fprintf(stdout, "%s = %s\n", key, saved)
	return nil
}

func (c *ConfigListCommand) Name() string             { return "config list" }
func (c *ConfigListCommand) Description() string      { return "Lists every configuration key and its value." }
func (c *ConfigListCommand) Usage() string            { return "" }
func (c *ConfigListCommand) ExpectedArgs() []ArgDef   { return []ArgDef{} }
func (c *ConfigListCommand) ExpectedFlags() []FlagDef { return []FlagDef{} }

func (c *ConfigListCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	for _, key := range config.Keys() {
		value, _ := cfg.Get(key)
		fmt.Fprintf(stdout, "%-18s %s\n", key, value)
	}
	if path, err := config.Path(); err == nil && cli.IsVerboseEnabled() {
		fmt.Fprintf(stdout, "\n# %s\n", path)
	}
	return nil
}
