package utils

import (
	"fmt"
	"strings"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
)

// MarkFunc decides which nodes get a marker in front of their label.
type MarkFunc func(n *outline.Node) bool

// RenderOutlineTree renders the children of root using branch characters,
// one node per line. Nodes for which mark returns true are prefixed with "▶".
func RenderOutlineTree(root *outline.Node, mark MarkFunc) string {
	lines, _ := OutlineLines(root, mark)
	return strings.Join(lines, "\n")
}

// OutlineLines is RenderOutlineTree split into lines, together with the
// indexes of the marked lines. Callers that style the marked nodes use the
// indexes; labels may contain the marker glyph themselves.
func OutlineLines(root *outline.Node, mark MarkFunc) (lines []string, marked []int) {
	r := &treeRenderer{mark: mark}
	for i, child := range root.Children {
		r.renderNode(child, "", i == len(root.Children)-1)
	}
	return r.lines, r.marked
}

type treeRenderer struct {
	mark   MarkFunc
	lines  []string
	marked []int
}

func (r *treeRenderer) renderNode(n *outline.Node, prefix string, isLast bool) {
	branch := "┣"
	if isLast {
		branch = "┗"
	}
	cursor := " "
	if r.mark != nil && r.mark(n) {
		cursor = "▶"
		r.marked = append(r.marked, len(r.lines))
	}
	r.lines = append(r.lines, fmt.Sprintf("%s%s%s %s", prefix, branch, cursor, n.Label()))

	// Update prefix for children.
	if isLast {
		prefix += "   "
	} else {
		prefix += "┃  "
	}
	for i, child := range n.Children {
		r.renderNode(child, prefix, i == len(n.Children)-1)
	}
}

// SelectedMark marks the session's current selection.
func SelectedMark(s *outline.Session) MarkFunc {
	return func(n *outline.Node) bool { return n == s.Selected() }
}
