package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Guerrilla-Interactive/ng-skeleton/app"
)

// PanelGap is the number of columns between side-by-side panels.
const PanelGap = 1

// ComputeLeftPanelWidth returns the tree column width: about 40% of the
// terminal, clamped, leaving at least rightMin columns for the output panel.
func ComputeLeftPanelWidth(termWidth int) int {
	const (
		defaultLeft = 40
		minLeft     = 28
		maxLeft     = 64
		rightMin    = 30
	)
	if termWidth <= 0 {
		return defaultLeft
	}
	left := termWidth * 2 / 5
	left = max(minLeft, min(left, maxLeft))
	if left+PanelGap+rightMin > termWidth {
		left = termWidth - PanelGap - rightMin
	}
	return max(left, 20)
}

// ComputeRightPanelWidth returns the remaining width after the left panel and a gap.
func ComputeRightPanelWidth(termWidth, left int) int {
	return max(termWidth-left-PanelGap, 0)
}

// BodyHeight is the height left for panels once the header and footer
// lines are drawn.
func BodyHeight(m app.Model, chromeLines int) int {
	return max(m.TerminalHeight-chromeLines, 6)
}

// Frame places a rendered view at the bottom left of the terminal, the way
// every screen anchors itself.
func Frame(m app.Model, view string) string {
	if m.TerminalWidth > 0 && m.TerminalHeight > 0 {
		return lipgloss.Place(m.TerminalWidth, m.TerminalHeight, lipgloss.Left, lipgloss.Bottom, view)
	}
	return view
}
