package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/cli"
	commands "github.com/Guerrilla-Interactive/ng-skeleton/app/commands/args"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/builder"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/picker"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/preview"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/prompt"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/settings"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

// Version is set via linker flags during build.
var Version = "v0.1.0"

const debugLogFile = "debug.log"

// ProgramModel wraps app.Model so we can hold Update logic in one place.
type ProgramModel struct {
	M app.Model
}

// Init implements tea.Model.
func (pm ProgramModel) Init() tea.Cmd {
	return nil
}

// Update routes messages to the current screen.
func (pm ProgramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typedMsg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.M.TerminalWidth = typedMsg.Width
		pm.M.TerminalHeight = typedMsg.Height
		pm.M.Help.Width = typedMsg.Width
		pm.M = preview.Resize(pm.M)
		return pm, nil

	case app.ExportDoneMsg:
		pm.M = preview.HandleExportDone(pm.M, typedMsg)
		return pm, nil

	case app.SettingsSavedMsg:
		pm.M = settings.HandleSettingsSaved(pm.M, typedMsg)
		return pm, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch pm.M.CurrentScreen {
		case app.ScreenBuilder:
			pm.M, cmd = builder.UpdateScreenBuilder(pm.M, typedMsg)
		case app.ScreenKindPicker:
			pm.M, cmd = picker.UpdateScreenKindPicker(pm.M, typedMsg)
		case app.ScreenPrompt:
			pm.M, cmd = prompt.UpdateScreenPrompt(pm.M, typedMsg)
		case app.ScreenPreview:
			pm.M, cmd = preview.UpdateScreenPreview(pm.M, typedMsg)
		case app.ScreenSettings:
			pm.M, cmd = settings.UpdateScreenSettings(pm.M, typedMsg)
		}
		return pm, cmd
	}

	// Cursor blinks and similar messages belong to the text input.
	if pm.M.CurrentScreen == app.ScreenPrompt {
		var cmd tea.Cmd
		pm.M.Input, cmd = pm.M.Input.Update(msg)
		return pm, cmd
	}
	return pm, nil
}

// View selects which screen's View function to call based on pm.M.CurrentScreen.
func (pm ProgramModel) View() string {
	switch pm.M.CurrentScreen {
	case app.ScreenBuilder:
		return builder.ViewScreenBuilder(pm.M)
	case app.ScreenKindPicker:
		return picker.ViewScreenKindPicker(pm.M)
	case app.ScreenPrompt:
		return prompt.ViewScreenPrompt(pm.M)
	case app.ScreenPreview:
		return preview.ViewScreenPreview(pm.M)
	case app.ScreenSettings:
		return settings.ViewSettingsScreen(pm.M)
	}
	return ""
}

func main() {
	args := os.Args[1:]
	parsedArgs := cli.ParseCommandLineArgs(args, commands.Registry{})

	cli.SetDebugEnabled(parsedArgs.DebugRequested)
	cli.SetVerboseEnabled(parsedArgs.VerboseRequested)
	closeLog, err := setupLogging(len(args) > 0 && parsedArgs.CommandName != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open %s: %v\n", debugLogFile, err)
	}
	defer closeLog()

	if len(parsedArgs.Errors) > 0 {
		fmt.Println("Error parsing arguments:")
		for _, err := range parsedArgs.Errors {
			fmt.Printf("  - %v\n", err)
		}
		os.Exit(1)
	}

	if parsedArgs.VersionRequested {
		fmt.Printf("ng-skeleton %s\n", Version)
		os.Exit(0)
	}

	if parsedArgs.CommandName != "" {
		if parsedArgs.HelpRequested {
			displayCommandHelp(parsedArgs.CommandName)
			os.Exit(0)
		}
		executeAndExit(parsedArgs, closeLog)
	}
	if parsedArgs.HelpRequested {
		displayGeneralHelp()
		os.Exit(0)
	}
	if len(parsedArgs.Variables) > 0 || len(parsedArgs.Flags) > 0 || len(parsedArgs.BoolFlags) > 0 {
		fmt.Println("Error: Invalid arguments or flags provided without a command name.")
		fmt.Println("Run `ng-skeleton --help` for usage.")
		os.Exit(1)
	}

	// --- Interactive Mode ---
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Warn("using default settings", "error", err)
	}

	p := tea.NewProgram(ProgramModel{M: app.NewModel(cfg, Version)}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}

// setupLogging installs the default slog logger. With --debug everything
// down to Debug goes to debug.log (the terminal belongs to the TUI); direct
// commands with --verbose log Info to stderr; otherwise only warnings are
// shown.
func setupLogging(direct bool) (func(), error) {
	level := slog.LevelWarn
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cli.IsDebugEnabled():
		f, err := tea.LogToFile(debugLogFile, "ng-skeleton")
		if err != nil {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return closeFn, err
		}
		w, level = f, slog.LevelDebug
		closeFn = func() { _ = f.Close() }
	case cli.IsVerboseEnabled() && direct:
		level = slog.LevelInfo
	case !direct:
		// Stray warnings would draw over the TUI.
		w = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// displayGeneralHelp prints the top-level help message.
func displayGeneralHelp() {
	fmt.Println("ng-skeleton - annotated HTML skeleton builder")
	fmt.Println("Usage: ng-skeleton [command] [variables...] [--flags...]")
	fmt.Println("Run without arguments to enter interactive mode.")

	fmt.Println("\nAvailable Commands:")
	for _, cmd := range commands.GetAllCommands() {
		fmt.Printf("  %-15s %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println("\nRun 'ng-skeleton [command] --help' for more information on a specific command.")
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug, --verbose")
}

// displayCommandHelp displays detailed help for a specific command.
func displayCommandHelp(commandName string) {
	cmd, found := commands.GetCommand(commandName)
	if !found {
		fmt.Printf("Error: Unknown command '%s'\n", commandName)
		displayGeneralHelp()
		return
	}

	fmt.Printf("Usage: ng-skeleton %s %s\n\n", cmd.Name(), cmd.Usage())
	fmt.Printf("  %s\n", cmd.Description())

	if args := cmd.ExpectedArgs(); len(args) > 0 {
		fmt.Println("\nArguments:")
		for _, arg := range args {
			required := ""
			if arg.Required {
				required = " (required)"
			}
			fmt.Printf("  %-15s %s%s\n", arg.Name, arg.Description, required)
		}
	}

	if flags := cmd.ExpectedFlags(); len(flags) > 0 {
		fmt.Println("\nFlags:")
		for _, flag := range flags {
			flagUsage := "--" + flag.Name
			if flag.ShortName != "" {
				flagUsage += ", -" + flag.ShortName
			}
			if flag.HasValue {
				flagUsage += " <value>"
			}
			fmt.Printf("  %-20s %s\n", flagUsage, flag.Description)
		}
	}
	fmt.Println("\nGlobal Flags: --help, -h, --version, --debug, --verbose")
}

// executeAndExit runs a direct command and exits with its status.
func executeAndExit(parsedArgs cli.CommandArgs, closeLog func()) {
	err := commands.Execute(parsedArgs)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command '%s': %v\n", parsedArgs.CommandName, err)
		os.Exit(1)
	}
	os.Exit(0)
}
