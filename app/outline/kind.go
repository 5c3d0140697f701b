package outline

import (
	"fmt"
	"strings"
)

// Kind is the element kind of a node. The set is closed.
type Kind int

const (
	// KindRoot is the synthetic document root. It is never rendered.
	KindRoot Kind = iota

	// Landmark kinds: at most once each, directly under the root, in this order.
	KindHeader
	KindNav
	KindMain
	KindFooter

	// Structural kinds.
	KindDiv
	KindSection
	KindParagraph
	KindList
	KindListItem

	// Leaf kinds. The generator never descends into their children.
	KindLink
	KindImage
)

// kindTags maps each kind to the element tag it renders as.
var kindTags = map[Kind]string{
	KindRoot:      "body",
	KindHeader:    "header",
	KindNav:       "nav",
	KindMain:      "main",
	KindFooter:    "footer",
	KindDiv:       "div",
	KindSection:   "section",
	KindParagraph: "p",
	KindList:      "ul",
	KindListItem:  "li",
	KindLink:      "a",
	KindImage:     "img",
}

// kindNames are the long names accepted by ParseKind next to the tags.
var kindNames = map[string]Kind{
	"paragraph": KindParagraph,
	"list":      KindList,
	"list-item": KindListItem,
	"link":      KindLink,
	"image":     KindImage,
}

// AddableKinds lists the kinds a user may create, in button order.
var AddableKinds = []Kind{
	KindHeader, KindNav, KindMain, KindFooter,
	KindDiv, KindSection, KindParagraph,
	KindList, KindListItem,
	KindLink, KindImage,
}

// Tag returns the element tag for k ("p" for KindParagraph, "ul" for KindList, ...).
func (k Kind) Tag() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) String() string { return k.Tag() }

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindTags[k]
	return ok
}

// IsLandmark reports whether k is header, nav, main or footer.
func (k Kind) IsLandmark() bool {
	return landmarkPriority(k) >= 0
}

// IsLeaf reports whether k renders without its children.
func (k Kind) IsLeaf() bool {
	return k == KindLink || k == KindImage
}

// ParseKind resolves a tag ("ul") or long name ("list") to a Kind.
// The document root cannot be parsed.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindNames[s]; ok {
		return k, true
	}
	for k, tag := range kindTags {
		if k != KindRoot && tag == s {
			return k, true
		}
	}
	return KindRoot, false
}
