package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/shared"
	config "github.com/Guerrilla-Interactive/ng-skeleton/internal"
)

// saveConfig is replaceable in tests.
var saveConfig = config.SaveConfig

// cycles lists the values enter steps through for each toggleable key.
var cycles = map[string][]string{
	"template_mode":     {"full", "empty"},
	"bootstrap":         {"false", "true"},
	"default_placement": {"child", "sibling"},
}

// UpdateScreenSettings handles input on the Settings screen.
func UpdateScreenSettings(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	keys := config.Keys()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "o":
		m.CurrentScreen = app.ScreenBuilder
		m.SettingsIndex = 0
		return m, nil
	case "up", "k":
		m.SettingsIndex = (m.SettingsIndex + len(keys) - 1) % len(keys)
	case "down", "j":
		m.SettingsIndex = (m.SettingsIndex + 1) % len(keys)
	case "enter", " ":
		key := keys[m.SettingsIndex]
		values, ok := cycles[key]
		if !ok {
			m.SetError(fmt.Sprintf("set %s with: ng-skeleton config set %s <value>", key, key))
			return m, nil
		}
		current, _ := m.Settings.Get(key)
		next := values[0]
		for i, v := range values {
			if v == current {
				next = values[(i+1)%len(values)]
			}
		}
		if err := m.Settings.Set(key, next); err != nil {
			m.SetError(err.Error())
			return m, nil
		}
		if key == "bootstrap" {
			m.Bootstrap = m.Settings.Bootstrap
		}
		return m, SaveCmd(m.Settings)
	}
	return m, nil
}

// SaveCmd persists cfg off the update loop.
func SaveCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		return app.SettingsSavedMsg{Err: saveConfig(cfg)}
	}
}

// HandleSettingsSaved turns a save result into a status message.
func HandleSettingsSaved(m app.Model, msg app.SettingsSavedMsg) app.Model {
	if msg.Err != nil {
		m.SetError("settings not saved: " + msg.Err.Error())
		return m
	}
	m.SetStatus("settings saved")
	return m
}

// ViewSettingsScreen renders the settings list.
func ViewSettingsScreen(m app.Model) string {
	header := app.TitleStyle.Render("Settings")

	var b strings.Builder
	for i, key := range config.Keys() {
		value, _ := m.Settings.Get(key)
		line := fmt.Sprintf("%-18s %s", key, value)
		if i == m.SettingsIndex {
			b.WriteString(app.HighlightStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(app.ChoiceStyle.Render("  "+line) + "\n")
		}
	}

	note := app.HelpStyle.Render("template_mode applies on the next reset (r).")
	if path, err := config.Path(); err == nil {
		note += "\n" + app.PathStyle.Render(path)
	}
	panel := app.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", b.String(), note))
	footer := shared.Footer("↑/↓ navigate", "enter toggle", "esc back")
	return shared.Frame(m, lipgloss.JoinVertical(lipgloss.Left, panel, shared.StatusLine(m), footer))
}
