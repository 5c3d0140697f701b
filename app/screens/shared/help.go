package shared

import (
	"strings"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
)

// Footer joins navigation tips with a consistent separator and applies
// the global help style for footers.
func Footer(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return app.HelpStyle.Render(strings.Join(parts, "  •  "))
}

// StatusLine renders the model's status message, or an empty line.
func StatusLine(m app.Model) string {
	if m.Status == "" {
		return ""
	}
	if m.StatusIsError {
		return app.ErrorStyle.Render("✗ " + m.Status)
	}
	return app.ChoiceStyle.Render("✓ " + m.Status)
}
