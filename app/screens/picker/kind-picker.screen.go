package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/builder"
	"github.com/Guerrilla-Interactive/ng-skeleton/app/screens/shared"
)

// UpdateScreenKindPicker handles input while choosing the kind to add.
func UpdateScreenKindPicker(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	kinds := outline.AddableKinds

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.CurrentScreen = app.ScreenBuilder
		return m, nil
	case "up", "k":
		m.KindIndex = (m.KindIndex + len(kinds) - 1) % len(kinds)
	case "down", "j":
		m.KindIndex = (m.KindIndex + 1) % len(kinds)
	case "tab":
		if m.PendingPlacement == outline.PlaceChild {
			m.PendingPlacement = outline.PlaceSibling
		} else {
			m.PendingPlacement = outline.PlaceChild
		}
	case "enter":
		return builder.OpenAddPrompt(m, kinds[m.KindIndex])
	case "right", "l":
		m.KindIndex = min(m.KindIndex+m.KindPager.PerPage, len(kinds)-1)
	case "left", "h":
		m.KindIndex = max(m.KindIndex-m.KindPager.PerPage, 0)
	default:
		// Typing a tag jumps straight to it.
		if k, ok := outline.ParseKind(msg.String()); ok {
			for i, candidate := range kinds {
				if candidate == k {
					m.KindIndex = i
				}
			}
		}
	}
	m.KindPager.Page = m.KindIndex / m.KindPager.PerPage
	return m, nil
}

// ViewScreenKindPicker renders the kind list with the placement in the title.
func ViewScreenKindPicker(m app.Model) string {
	title := app.TitleStyle.Render(fmt.Sprintf("Add %s", m.PendingPlacement))

	kinds := outline.AddableKinds
	start, end := m.KindPager.GetSliceBounds(len(kinds))

	var b strings.Builder
	for i := start; i < end; i++ {
		k := kinds[i]
		line := fmt.Sprintf("%-8s %s", k.Tag(), hint(k))
		if i == m.KindIndex {
			b.WriteString(app.HighlightStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString(app.ChoiceStyle.Render("  "+line) + "\n")
		}
	}

	sel := m.Session.Selected()
	target := "document root"
	if sel != m.Session.Root() {
		target = sel.Label()
	}
	context := app.PathStyle.Render("selected: " + target)

	panel := app.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", b.String(), m.KindPager.View(), "", context))
	footer := shared.Footer("↑/↓ choose", "←/→ page", "enter confirm", "tab child/sibling", "esc back")
	return shared.Frame(m, lipgloss.JoinVertical(lipgloss.Left, panel, shared.StatusLine(m), footer))
}

func hint(k outline.Kind) string {
	switch {
	case k.IsLandmark():
		return "landmark, top level"
	case k == outline.KindListItem:
		return "inside ul"
	case k.IsLeaf():
		return "placeholder"
	}
	return ""
}
