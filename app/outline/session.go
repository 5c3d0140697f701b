// Package outline holds the document outline: the node tree, the rules for
// where landmark elements may live, the edit operations, and the generator
// that turns a tree into annotated markup.
//
// Every edit targets the session's current selection. Invalid edits are
// ignored: the operation reports false and leaves the tree and selection
// exactly as they were.
package outline

import (
	"fmt"
	"strings"
)

// Mode selects the starting template for Initialize.
type Mode string

const (
	// ModeFull starts with header, nav, main and footer, and selects main.
	ModeFull Mode = "full"
	// ModeEmpty starts with the bare root selected.
	ModeEmpty Mode = "empty"
)

// ParseMode accepts "full" or "empty" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFull:
		return ModeFull, nil
	case ModeEmpty:
		return ModeEmpty, nil
	}
	return "", fmt.Errorf("unknown template mode %q (want full or empty)", s)
}

// Placement decides where Add puts a non-landmark node.
type Placement int

const (
	// PlaceChild appends to the selection's children.
	PlaceChild Placement = iota
	// PlaceSibling appends to the selection's parent's children.
	PlaceSibling
)

func (p Placement) String() string {
	if p == PlaceSibling {
		return "sibling"
	}
	return "child"
}

// ParsePlacement accepts "child" or "sibling".
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "child":
		return PlaceChild, nil
	case "sibling":
		return PlaceSibling, nil
	}
	return PlaceChild, fmt.Errorf("unknown placement %q (want child or sibling)", s)
}

// firstID is the id handed to the first node after Initialize.
const firstID = 1

// Session is one editing session: a tree, its selection and the id counter.
// It is not safe for concurrent use; a single caller drives it.
type Session struct {
	root     *Node
	selected *Node
	nextID   int
	mode     Mode
}

// NewSession returns a session initialized in the given mode.
func NewSession(mode Mode) *Session {
	s := &Session{}
	s.Initialize(mode)
	return s
}

// Initialize discards the current tree and resets the id counter.
// Unknown modes are treated as ModeEmpty.
func (s *Session) Initialize(mode Mode) {
	s.nextID = firstID
	s.root = &Node{ID: 0, Kind: KindRoot}
	s.selected = s.root
	s.mode = ModeEmpty

	if mode != ModeFull {
		return
	}
	s.mode = ModeFull
	for _, k := range landmarkOrder {
		s.root.appendChild(s.newNode(k, "", ""))
	}
	s.selected = s.root.Children[2]
}

// Mode returns the mode of the last Initialize.
func (s *Session) Mode() Mode { return s.mode }

// Root returns the document root.
func (s *Session) Root() *Node { return s.root }

// Selected returns the current selection. It is never nil.
func (s *Session) Selected() *Node { return s.selected }

// Find returns the reachable node with the given id. Id 0 is the root.
func (s *Session) Find(id int) (*Node, bool) {
	var found *Node
	s.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// Select moves the selection to the node with the given id.
func (s *Session) Select(id int) bool {
	n, ok := s.Find(id)
	if !ok || n == s.selected {
		return false
	}
	s.selected = n
	return true
}

// Entry is a node with its depth below the root (root children are depth 0).
type Entry struct {
	Node  *Node
	Depth int
}

// Flatten lists every node below the root in pre-order.
func (s *Session) Flatten() []Entry {
	var out []Entry
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for _, c := range n.Children {
			out = append(out, Entry{Node: c, Depth: depth})
			walk(c, depth+1)
		}
	}
	walk(s.root, 0)
	return out
}

// Output renders the whole document body.
func (s *Session) Output() string {
	return Generate(s.root)
}

func (s *Session) issueID() int {
	id := s.nextID
	s.nextID++
	return id
}
