package outline

// landmarkOrder is the required order of landmark children of the root.
var landmarkOrder = []Kind{KindHeader, KindNav, KindMain, KindFooter}

// landmarkPriority returns the position of k in landmarkOrder, or -1 when k
// is not a landmark.
func landmarkPriority(k Kind) int {
	for i, l := range landmarkOrder {
		if l == k {
			return i
		}
	}
	return -1
}

// hasRootChild reports whether a node of kind k already sits directly under the root.
func (s *Session) hasRootChild(k Kind) bool {
	for _, c := range s.root.Children {
		if c.Kind == k {
			return true
		}
	}
	return false
}

// canAppendLandmark reports whether a landmark of kind k may be appended to
// the root: the kind is not present yet and no root child outranks it.
// Existing landmarks are never reordered to make room.
func (s *Session) canAppendLandmark(k Kind) bool {
	if s.hasRootChild(k) {
		return false
	}
	p := landmarkPriority(k)
	for _, c := range s.root.Children {
		if landmarkPriority(c.Kind) > p {
			return false
		}
	}
	return true
}
