package shared

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TruncateLines limits s to at most limit lines. When lines are dropped the
// last kept line says how many.
func TruncateLines(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	hidden := len(lines) - limit + 1
	kept := append(lines[:limit-1:limit-1], HiddenLines(hidden))
	return strings.Join(kept, "\n")
}

// HiddenLines is the marker TruncateLines appends.
func HiddenLines(n int) string {
	return "… " + strconv.Itoa(n) + " more lines"
}

// ClipWidth cuts every line of s to width display cells.
func ClipWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) <= width {
			continue
		}
		runes := []rune(line)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		lines[i] = string(runes) + "…"
	}
	return strings.Join(lines, "\n")
}
