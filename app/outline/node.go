package outline

import "slices"

// copyrightMarker is the annotation (and class) of the div every footer is born with.
const copyrightMarker = "copyright"

// Node is one element of the outline tree.
//
// Children are owned exclusively; parent is a non-owning back-reference that
// every re-parenting operation keeps in sync.
type Node struct {
	ID         int
	Kind       Kind
	Annotation string
	StyleClass string
	Attributes map[string]string
	Children   []*Node

	parent *Node
}

// Parent returns the node's parent, or nil for the root and detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Index returns the position of n among its parent's children, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.Children, n)
}

// Depth is 0 for the root, 1 for its children and so on.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Label is the one-line summary shown in tree views:
// tag, then annotation, then ".class", separated by full-width spaces.
func (n *Node) Label() string {
	label := n.Kind.Tag()
	if n.Annotation != "" {
		label += "　" + n.Annotation
	}
	if n.StyleClass != "" {
		label += "　." + n.StyleClass
	}
	return label
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// isAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) isAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

func (n *Node) appendChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) insertChild(i int, c *Node) {
	c.parent = n
	n.Children = slices.Insert(n.Children, i, c)
}

// removeChild detaches c and returns the index it had, or -1.
func (n *Node) removeChild(c *Node) int {
	i := slices.Index(n.Children, c)
	if i < 0 {
		return -1
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	c.parent = nil
	return i
}

// newNode is the single node constructor. A footer gets its copyright div
// attached as first child in the same step.
func (s *Session) newNode(kind Kind, annotation, styleClass string) *Node {
	n := &Node{
		ID:         s.issueID(),
		Kind:       kind,
		Annotation: annotation,
		StyleClass: styleClass,
	}
	if kind == KindFooter {
		n.appendChild(&Node{
			ID:         s.issueID(),
			Kind:       KindDiv,
			Annotation: copyrightMarker,
			StyleClass: copyrightMarker,
		})
	}
	return n
}

// cloneTree deep-copies n with fresh ids. The copy is detached.
func (s *Session) cloneTree(n *Node) *Node {
	c := &Node{
		ID:         s.issueID(),
		Kind:       n.Kind,
		Annotation: n.Annotation,
		StyleClass: n.StyleClass,
	}
	if n.Attributes != nil {
		c.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			c.Attributes[k] = v
		}
	}
	for _, child := range n.Children {
		c.appendChild(s.cloneTree(child))
	}
	return c
}
