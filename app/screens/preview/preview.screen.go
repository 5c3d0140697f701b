package preview

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/export"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/shared"
)

// Clipboard and file writers, replaceable in tests.
var (
	copyText  = export.CopyToClipboard
	writeFile = export.WriteFile
)

// UpdateScreenPreview handles the generated document view.
func UpdateScreenPreview(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "g":
		m.CurrentScreen = app.ScreenBuilder
		return m, nil
	case "y":
		return m, CopyCmd(m.Document())
	case "w":
		return m, WriteCmd(m.Settings.OutputPath, m.Document())
	}

	var cmd tea.Cmd
	m.Preview, cmd = m.Preview.Update(msg)
	return m, cmd
}

// CopyCmd copies text to the clipboard off the update loop.
func CopyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		err := copyText(text)
		if err != nil {
			slog.Warn("clipboard copy failed", "error", err)
		}
		return app.ExportDoneMsg{Target: "clipboard", Err: err}
	}
}

// WriteCmd writes text to path off the update loop.
func WriteCmd(path, text string) tea.Cmd {
	return func() tea.Msg {
		err := writeFile(path, text)
		if err != nil {
			slog.Warn("file write failed", "path", path, "error", err)
		}
		return app.ExportDoneMsg{Target: path, Err: err}
	}
}

// HandleExportDone turns an export result into a status message.
func HandleExportDone(m app.Model, msg app.ExportDoneMsg) app.Model {
	if msg.Err != nil {
		m.SetError(msg.Err.Error())
		return m
	}
	if msg.Target == "clipboard" {
		m.SetStatus("copied to clipboard")
	} else {
		m.SetStatus("wrote " + msg.Target)
	}
	return m
}

// Resize fits the viewport to the terminal.
func Resize(m app.Model) app.Model {
	m.Preview.Width = max(m.TerminalWidth-6, 20)
	m.Preview.Height = max(m.TerminalHeight-8, 5)
	return m
}

// ViewScreenPreview renders the document in a scrollable viewport.
func ViewScreenPreview(m app.Model) string {
	title := app.TitleStyle.Render("Generated document")
	target := app.PathStyle.Render("w → " + m.Settings.OutputPath)
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", target)

	body := app.PanelStyle.Render(m.Preview.View())
	footer := shared.Footer("y copy", "w write file", "↑/↓ scroll", "esc back")
	return shared.Frame(m, lipgloss.JoinVertical(lipgloss.Left, header, body, shared.StatusLine(m), footer))
}
