package outline

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

const (
	indentUnit = "  "

	linkHref        = "#"
	linkLabel       = "リンク"
	linkPlaceholder = "のリンクを入れる"

	imageLabel       = "画像"
	imagePlaceholder = "の画像を入れる"
)

// Generate renders the children of n (never n itself) as annotated markup,
// two spaces of indentation per level, without leading or trailing blank
// lines. The same tree always renders to the same text.
func Generate(n *Node) string {
	var b strings.Builder
	writeChildren(&b, n, 0)
	return strings.TrimSpace(b.String())
}

func writeChildren(b *strings.Builder, n *Node, depth int) {
	space := strings.Repeat(indentUnit, depth)
	for _, child := range n.Children {
		writeNode(b, child, depth, space)
	}
}

func writeNode(b *strings.Builder, n *Node, depth int, space string) {
	if n.Annotation != "" {
		b.WriteString(space + "<!-- " + commentText(n.Annotation) + " start -->\n")
	}

	attrs := attributeClause(n)
	tag := n.Kind.Tag()

	switch n.Kind {
	case KindLink:
		label := orDefault(n.Annotation, linkLabel)
		b.WriteString(space + "<" + tag + attrs + ">" + html.EscapeString(label+linkPlaceholder) + "</" + tag + ">\n")
	case KindImage:
		label := orDefault(n.Annotation, imageLabel)
		b.WriteString(space + "<" + tag + attrs +
			` src="` + html.EscapeString(label+imagePlaceholder) + `"` +
			` alt="` + html.EscapeString(label) + `">` + "\n")
	default:
		b.WriteString(space + "<" + tag + attrs + ">\n")
		writeChildren(b, n, depth+1)
		b.WriteString(space + "</" + tag + ">\n")
	}

	if n.Annotation != "" {
		b.WriteString(space + "<!-- " + commentText(n.Annotation) + " end -->\n")
	}
}

// attributeClause builds ` class="..." href="#" k="v"...`; extra attributes
// are sorted by name.
func attributeClause(n *Node) string {
	var b strings.Builder
	if n.StyleClass != "" {
		writeAttr(&b, "class", n.StyleClass)
	}
	if n.Kind == KindLink {
		writeAttr(&b, "href", linkHref)
	}
	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeAttr(&b, k, n.Attributes[k])
	}
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}

// commentText keeps an annotation inside its comment marker: "--" may not
// appear in a comment and the marker must stay on one line.
func commentText(annotation string) string {
	s := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(annotation)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
