package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/shared"
)

// UpdateScreenPrompt asks for the annotation, then the class, and applies
// them. Esc abandons the whole prompt without touching the outline.
func UpdateScreenPrompt(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.Input.Blur()
		m.CurrentScreen = app.ScreenBuilder
		m.SetStatus("cancelled")
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.Input.Value())
		if m.PromptField == app.FieldAnnotation {
			m.PendingAnnotation = value
			m.PromptField = app.FieldClass
			m.Input.Reset()
			if m.PromptPurpose == app.PurposeEdit {
				m.Input.SetValue(m.Session.Selected().StyleClass)
				m.Input.CursorEnd()
			}
			return m, textinput.Blink
		}
		return finish(m, value), nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func finish(m app.Model, class string) app.Model {
	m.Input.Blur()
	m.CurrentScreen = app.ScreenBuilder

	annotation := m.PendingAnnotation
	switch m.PromptPurpose {
	case app.PurposeAdd:
		if m.Session.Add(m.PendingKind, annotation, class, m.PendingPlacement) {
			m.SetStatus(fmt.Sprintf("added %s", m.PendingKind))
		} else {
			m.SetError(fmt.Sprintf("cannot add %s %s here", m.PendingKind, m.PendingPlacement))
		}
	case app.PurposeEdit:
		if m.Session.Edit(&annotation, &class) {
			m.SetStatus("edited")
		} else {
			m.SetError("edit not allowed here")
		}
	}
	return m
}

// ViewScreenPrompt renders the current question and input.
func ViewScreenPrompt(m app.Model) string {
	verb := "New " + m.PendingKind.Tag()
	if m.PromptPurpose == app.PurposeEdit {
		verb = "Edit " + m.Session.Selected().Kind.Tag()
	}
	question := "Annotation (comment label, optional)"
	if m.PromptField == app.FieldClass {
		question = "Class (optional)"
	}

	lines := []string{app.TitleStyle.Render(verb), "", app.SubtitleStyle.Render(question), m.Input.View()}
	if m.PromptField == app.FieldClass && m.PendingAnnotation != "" {
		lines = append(lines, "", app.PathStyle.Render("annotation: "+m.PendingAnnotation))
	}
	panel := app.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	footer := shared.Footer("enter next", "esc cancel")
	return shared.Frame(m, lipgloss.JoinVertical(lipgloss.Left, panel, footer))
}
