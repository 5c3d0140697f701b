package outline

import (
	"regexp"
	"strconv"
)

// suffixPattern matches a single trailing "-<digits>" group.
var suffixPattern = regexp.MustCompile(`-\d+$`)

// BaseAnnotation strips one trailing "-<digits>" group: "card-2" becomes
// "card", "card-1-2" becomes "card-1".
func BaseAnnotation(annotation string) string {
	return suffixPattern.ReplaceAllString(annotation, "")
}

// Duplicate inserts a deep copy of the selection right after it and selects
// the copy. The copy gets fresh ids, and every non-empty annotation in it is
// renumbered "<base>-<n>", where n is one more than the number of other
// siblings sharing the original's kind and base annotation.
func (s *Session) Duplicate() bool {
	orig := s.selected
	parent := orig.parent
	if orig == s.root || parent == nil {
		return false
	}

	n := 1
	if orig.Annotation != "" {
		base := BaseAnnotation(orig.Annotation)
		for _, c := range parent.Children {
			if c == orig || c.Kind != orig.Kind || c.Annotation == "" {
				continue
			}
			if BaseAnnotation(c.Annotation) == base {
				n++
			}
		}
	}

	clone := s.cloneTree(orig)
	applySuffix(clone, n)
	parent.insertChild(orig.Index()+1, clone)
	s.selected = clone
	return true
}

// applySuffix renumbers every non-empty annotation in the subtree with the same n.
func applySuffix(n *Node, no int) {
	n.Walk(func(c *Node) bool {
		if c.Annotation != "" {
			c.Annotation = BaseAnnotation(c.Annotation) + "-" + strconv.Itoa(no)
		}
		return true
	})
}
