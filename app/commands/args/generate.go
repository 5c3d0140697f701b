package args

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/export"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/script"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

// GenerateCommand replays a script and emits the resulting markup.
type GenerateCommand struct{}

var (
	generateOutFlag   = FlagDef{Name: "out", ShortName: "o", Description: "Write the markup to this file instead of stdout.", HasValue: true}
	generateCopyFlag  = FlagDef{Name: "copy", ShortName: "c", Description: "Copy the markup to the clipboard."}
	generateShellFlag = FlagDef{Name: "shell", ShortName: "s", Description: "Wrap the markup in the full HTML document (full mode only)."}
)

func init() {
	RegisterCommand(&GenerateCommand{})
}

func (c *GenerateCommand) Name() string { return "generate" }

func (c *GenerateCommand) Description() string {
	return "Builds an outline from a YAML script and prints the annotated HTML."
}

func (c *GenerateCommand) Usage() string {
	return "<script.yaml> [--out file] [--copy] [--shell]"
}

func (c *GenerateCommand) ExpectedArgs() []ArgDef {
	return []ArgDef{
		{Name: "script", Description: "Path to the YAML command script.", Required: true},
	}
}

func (c *GenerateCommand) ExpectedFlags() []FlagDef {
	return []FlagDef{generateOutFlag, generateCopyFlag, generateShellFlag}
}

func (c *GenerateCommand) Execute(args cli.CommandArgs) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Warn("using default settings", "error", err)
	}

	sc, s, err := replayScript(args.Variables[0], cfg)
	if err != nil {
		return err
	}

	text := s.Output()
	if boolFlag(args, generateShellFlag) {
		text = export.Wrap(text, export.Options{
			Mode:      s.Mode(),
			Bootstrap: sc.Bootstrap || cfg.Bootstrap,
		})
	}

	delivered := false
	if out, ok := flagValue(args, generateOutFlag); ok {
		if err := export.WriteFile(out, text); err != nil {
			return err
		}
		slog.Info("markup written", "path", out)
		delivered = true
	}
	if boolFlag(args, generateCopyFlag) {
		if err := export.CopyToClipboard(text); err != nil {
			return err
		}
		slog.Info("markup copied to clipboard")
		delivered = true
	}
	if !delivered {
		fmt.Fprintln(stdout, text)
	}
	return nil
}

// replayScript loads a script and replays it. A script without a mode uses
// the configured template mode.
func replayScript(path string, cfg config.Config) (*script.Script, *outline.Session, error) {
	sc, err := script.Load(path)
	if err != nil {
		return nil, nil, err
	}
	mode := cfg.Mode()
	if strings.TrimSpace(sc.Mode) != "" {
		mode = sc.TemplateMode()
	}

	s := outline.NewSession(mode)
	results, err := sc.Run(s)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("script replayed", "script", path, "mode", mode, "result", script.Summary(results))
	if cli.IsVerboseEnabled() {
		fmt.Fprintln(stdout, "# "+script.Summary(results))
	}
	return sc, s, nil
}
