package outline

import (
	"strings"
)

// Add creates a node of the given kind next to the selection and selects it.
//
// Landmarks always go to the root, whatever the placement, and only when the
// landmark rules allow it. A list item needs a list to land in. A sibling
// cannot be added next to the root.
func (s *Session) Add(kind Kind, annotation, styleClass string, placement Placement) bool {
	if !kind.Valid() || kind == KindRoot {
		return false
	}

	if kind.IsLandmark() {
		if !s.canAppendLandmark(kind) {
			return false
		}
		n := s.newNode(kind, annotation, styleClass)
		s.root.appendChild(n)
		s.selected = n
		return true
	}

	target := s.selected
	if placement == PlaceSibling {
		target = s.selected.parent
		if target == nil {
			return false
		}
	}
	if kind == KindListItem && target.Kind != KindList {
		return false
	}

	n := s.newNode(kind, annotation, styleClass)
	target.appendChild(n)
	s.selected = n
	return true
}

// Delete removes the selection and its whole subtree, then selects the
// former parent.
func (s *Session) Delete() bool {
	n := s.selected
	parent := n.parent
	if n == s.root || parent == nil {
		return false
	}
	parent.removeChild(n)
	s.selected = parent
	return true
}

// Move swaps the selection with its previous (-1) or next (+1) sibling.
// The selection stays on the moved node.
func (s *Session) Move(direction int) bool {
	n := s.selected
	parent := n.parent
	if n == s.root || parent == nil || (direction != -1 && direction != 1) {
		return false
	}
	i := n.Index()
	j := i + direction
	if j < 0 || j >= len(parent.Children) {
		return false
	}
	parent.Children[i], parent.Children[j] = parent.Children[j], parent.Children[i]
	return true
}

// Indent makes the selection the last child of its preceding sibling.
func (s *Session) Indent() bool {
	n := s.selected
	parent := n.parent
	if n == s.root || parent == nil {
		return false
	}
	i := n.Index()
	if i <= 0 {
		return false
	}
	prev := parent.Children[i-1]
	parent.removeChild(n)
	prev.appendChild(n)
	return true
}

// Outdent moves the selection out of its parent, right after the parent in
// the grandparent's children. Children of the root cannot be outdented.
func (s *Session) Outdent() bool {
	n := s.selected
	parent := n.parent
	if n == s.root || parent == nil || parent == s.root {
		return false
	}
	grand := parent.parent
	if grand == nil {
		return false
	}
	parent.removeChild(n)
	grand.insertChild(parent.Index()+1, n)
	return true
}

// Edit replaces the annotation and/or the style class of the selection.
// A nil argument leaves that field alone; values are trimmed. Callers model
// a cancelled prompt by not calling Edit at all.
func (s *Session) Edit(annotation, styleClass *string) bool {
	n := s.selected
	if n == s.root || (annotation == nil && styleClass == nil) {
		return false
	}
	if annotation != nil {
		n.Annotation = strings.TrimSpace(*annotation)
	}
	if styleClass != nil {
		n.StyleClass = strings.TrimSpace(*styleClass)
	}
	return true
}

// reservedAttributes are emitted by the generator itself and cannot be set
// through SetAttribute.
var reservedAttributes = map[Kind][]string{
	KindLink:  {"href"},
	KindImage: {"src", "alt"},
}

// validAttributeName rejects empty names and names that would break the
// attribute clause.
func validAttributeName(kind Kind, name string) bool {
	if name == "" || name == "class" {
		return false
	}
	if strings.ContainsAny(name, " \t\n\r\"'<>/=`") {
		return false
	}
	for _, r := range reservedAttributes[kind] {
		if r == name {
			return false
		}
	}
	return true
}

// SetAttribute sets one extra attribute on the selection.
func (s *Session) SetAttribute(name, value string) bool {
	n := s.selected
	name = strings.ToLower(strings.TrimSpace(name))
	if n == s.root || !validAttributeName(n.Kind, name) {
		return false
	}
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	n.Attributes[name] = value
	return true
}

// RemoveAttribute deletes one extra attribute from the selection.
func (s *Session) RemoveAttribute(name string) bool {
	n := s.selected
	name = strings.ToLower(strings.TrimSpace(name))
	if n == s.root {
		return false
	}
	if _, ok := n.Attributes[name]; !ok {
		return false
	}
	delete(n.Attributes, name)
	if len(n.Attributes) == 0 {
		n.Attributes = nil
	}
	return true
}
