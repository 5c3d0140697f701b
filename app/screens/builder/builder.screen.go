package builder

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/shared"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/utils"
)

// UpdateScreenBuilder handles input on the main outline screen.
func UpdateScreenBuilder(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	k := m.Keys
	s := m.Session

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		stepSelection(s, -1)
	case key.Matches(msg, k.Down):
		stepSelection(s, 1)

	case key.Matches(msg, k.Add):
		return openPicker(m, m.Settings.Placement()), nil
	case key.Matches(msg, k.AddChild):
		return openPicker(m, outline.PlaceChild), nil
	case key.Matches(msg, k.AddSibling):
		return openPicker(m, outline.PlaceSibling), nil

	case key.Matches(msg, k.Delete):
		report(&m, "delete", s.Delete())
	case key.Matches(msg, k.MoveUp):
		report(&m, "move up", s.Move(-1))
	case key.Matches(msg, k.MoveDown):
		report(&m, "move down", s.Move(1))
	case key.Matches(msg, k.Indent):
		report(&m, "indent", s.Indent())
	case key.Matches(msg, k.Outdent):
		report(&m, "outdent", s.Outdent())
	case key.Matches(msg, k.Duplicate):
		report(&m, "duplicate", s.Duplicate())

	case key.Matches(msg, k.Edit):
		if s.Selected() == s.Root() {
			m.SetError("nothing selected to edit")
			return m, nil
		}
		return openPrompt(m, app.PurposeEdit, s.Selected().Annotation), textinput.Blink

	case key.Matches(msg, k.Reset):
		s.Initialize(m.Settings.Mode())
		m.SetStatus(fmt.Sprintf("reset to %s template", s.Mode()))
	case key.Matches(msg, k.ToggleMode):
		next := outline.ModeEmpty
		if s.Mode() == outline.ModeEmpty {
			next = outline.ModeFull
		}
		s.Initialize(next)
		m.SetStatus(fmt.Sprintf("switched to %s template", next))
	case key.Matches(msg, k.ToggleBootstrap):
		m.Bootstrap = !m.Bootstrap
		m.SetStatus(fmt.Sprintf("bootstrap %s", onOff(m.Bootstrap)))

	case key.Matches(msg, k.Preview):
		m.Preview.SetContent(m.Document())
		m.Preview.GotoTop()
		m.CurrentScreen = app.ScreenPreview
	case key.Matches(msg, k.Settings):
		m.SettingsIndex = 0
		m.CurrentScreen = app.ScreenSettings
	case key.Matches(msg, k.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}
	return m, nil
}

// stepSelection moves the selection to the previous or next node in
// document order. From the root, down selects the first node.
func stepSelection(s *outline.Session, delta int) {
	entries := s.Flatten()
	if len(entries) == 0 {
		return
	}
	cur := -1
	for i, e := range entries {
		if e.Node == s.Selected() {
			cur = i
			break
		}
	}
	next := cur + delta
	if cur == -1 {
		next = 0
	}
	if next < 0 || next >= len(entries) {
		return
	}
	s.Select(entries[next].Node.ID)
}

func openPicker(m app.Model, placement outline.Placement) app.Model {
	m.PendingPlacement = placement
	m.KindIndex = 0
	m.KindPager.Page = 0
	m.Status = ""
	m.CurrentScreen = app.ScreenKindPicker
	return m
}

// openPrompt starts the annotation/class prompt; initial pre-fills the
// annotation field.
func openPrompt(m app.Model, purpose app.PromptPurpose, initial string) app.Model {
	m.PromptPurpose = purpose
	m.PromptField = app.FieldAnnotation
	m.PendingAnnotation = ""
	m.Input.Reset()
	m.Input.SetValue(initial)
	m.Input.CursorEnd()
	m.Input.Focus()
	m.Status = ""
	m.CurrentScreen = app.ScreenPrompt
	return m
}

// OpenAddPrompt is used by the kind picker once a kind is chosen.
func OpenAddPrompt(m app.Model, kind outline.Kind) (app.Model, tea.Cmd) {
	m.PendingKind = kind
	return openPrompt(m, app.PurposeAdd, ""), textinput.Blink
}

func report(m *app.Model, op string, applied bool) {
	if applied {
		m.SetStatus(op)
		return
	}
	slog.Debug("operation rejected", "op", op, "selected", m.Session.Selected().ID)
	m.SetError(op + " not allowed here")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// ViewScreenBuilder renders the tree panel next to the live output panel.
func ViewScreenBuilder(m app.Model) string {
	s := m.Session

	badges := []string{app.BadgeStyle.Render(string(s.Mode()))}
	if m.Bootstrap {
		badges = append(badges, app.BadgeStyle.Render("bootstrap"))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		app.TitleStyle.Render("ng-skeleton "+m.Version), "  ", strings.Join(badges, " "))

	footer := m.Help.View(m.Keys)
	status := shared.StatusLine(m)
	chrome := lipgloss.Height(header) + lipgloss.Height(footer) + 2 + 4 // blank lines, panel borders and padding
	bodyHeight := shared.BodyHeight(m, chrome)

	leftWidth := shared.ComputeLeftPanelWidth(m.TerminalWidth)
	rightWidth := shared.ComputeRightPanelWidth(m.TerminalWidth, leftWidth)

	tree := RenderTree(s, leftWidth-6)
	if tree == "" {
		tree = app.ChoiceStyle.Render("(empty) press a to add")
	}
	left := app.PanelStyle.Width(leftWidth - 2).Render(shared.TruncateLines(tree, bodyHeight))

	output := s.Output()
	if output == "" {
		output = app.ChoiceStyle.Render("(no output)")
	}
	right := app.PanelStyle.Width(max(rightWidth-2, 10)).Render(
		shared.TruncateLines(shared.ClipWidth(output, rightWidth-6), bodyHeight))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", shared.PanelGap), right)
	view := lipgloss.JoinVertical(lipgloss.Left, header, "", panels, status, footer)
	return shared.Frame(m, view)
}

// RenderTree renders the outline clipped to width, with the selection
// highlighted.
func RenderTree(s *outline.Session, width int) string {
	lines, marked := utils.OutlineLines(s.Root(), utils.SelectedMark(s))
	if len(lines) == 0 {
		return ""
	}
	for i, line := range lines {
		lines[i] = shared.ClipWidth(line, width)
	}
	for _, i := range marked {
		lines[i] = app.HighlightStyle.Render(lines[i])
	}
	return strings.Join(lines, "\n")
}
