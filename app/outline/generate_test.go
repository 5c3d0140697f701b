package outline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestGenerateFullTemplateWithSection(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindSection, "intro", "", PlaceChild))

	want := strings.Join([]string{
		"<header>",
		"</header>",
		"<nav>",
		"</nav>",
		"<main>",
		"  <!-- intro start -->",
		"  <section>",
		"  </section>",
		"  <!-- intro end -->",
		"</main>",
		"<footer>",
		"  <!-- copyright start -->",
		`  <div class="copyright">`,
		"  </div>",
		"  <!-- copyright end -->",
		"</footer>",
	}, "\n")
	assert.Equal(t, want, s.Output())
}

func TestGenerateLinkDefaultLabel(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindLink, "", "", PlaceChild))
	assert.Equal(t, `<a href="#">リンクのリンクを入れる</a>`, s.Output())
}

func TestGenerateLinkAndImage(t *testing.T) {
	testCases := []struct {
		name       string
		kind       Kind
		annotation string
		class      string
		want       string
	}{
		{
			name:       "annotated link",
			kind:       KindLink,
			annotation: "お問い合わせ",
			class:      "btn",
			want: "<!-- お問い合わせ start -->\n" +
				`<a class="btn" href="#">お問い合わせのリンクを入れる</a>` + "\n" +
				"<!-- お問い合わせ end -->",
		},
		{
			name: "bare image",
			kind: KindImage,
			want: `<img src="画像の画像を入れる" alt="画像">`,
		},
		{
			name:       "annotated image",
			kind:       KindImage,
			annotation: "ロゴ",
			class:      "logo",
			want: "<!-- ロゴ start -->\n" +
				`<img class="logo" src="ロゴの画像を入れる" alt="ロゴ">` + "\n" +
				"<!-- ロゴ end -->",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(ModeEmpty)
			require.True(t, s.Add(tc.kind, tc.annotation, tc.class, PlaceChild))
			assert.Equal(t, tc.want, s.Output())
		})
	}
}

func TestGenerateLeavesSkipChildren(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindLink, "", "", PlaceChild))
	// Children under a leaf are kept in the tree but never rendered.
	require.True(t, s.Add(KindDiv, "hidden", "", PlaceChild))
	assert.NotContains(t, s.Output(), "hidden")
	assert.Len(t, s.Root().Children[0].Children, 1)
}

func TestGenerateAttributesSorted(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindDiv, "", "box", PlaceChild))
	require.True(t, s.SetAttribute("data-z", "2"))
	require.True(t, s.SetAttribute("data-a", "1"))
	require.True(t, s.SetAttribute("id", "top"))

	assert.Equal(t, "<div class=\"box\" data-a=\"1\" data-z=\"2\" id=\"top\">\n</div>", s.Output())
}

func TestGenerateEscapesAttributeValues(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindDiv, "", `a"b<c>`, PlaceChild))
	assert.Equal(t, "<div class=\"a&#34;b&lt;c&gt;\">\n</div>", s.Output())
}

func TestGenerateCommentMarkersStayClosed(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindDiv, "a --> <b>", "", PlaceChild))
	require.True(t, s.Add(KindParagraph, "x---y\nz", "", PlaceChild))

	want := "" +
		"<!-- a - -> <b> start -->\n" +
		"<div>\n" +
		"  <!-- x- - -y z start -->\n" +
		"  <p>\n" +
		"  </p>\n" +
		"  <!-- x- - -y z end -->\n" +
		"</div>\n" +
		"<!-- a - -> <b> end -->"
	assert.Equal(t, want, s.Output())

	doc, err := html.Parse(strings.NewReader(s.Output()))
	require.NoError(t, err)
	var comments, elements int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.CommentNode:
			comments++
		case n.Type == html.ElementNode && n.DataAtom == atom.B:
			elements++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	assert.Equal(t, 4, comments)
	assert.Zero(t, elements, "annotation text must not leak into the markup")
}

func TestGenerateNestedIndentation(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindList, "menu", "", PlaceChild))
	require.True(t, s.Add(KindListItem, "", "", PlaceChild))
	require.True(t, s.Add(KindLink, "home", "", PlaceChild))

	want := strings.Join([]string{
		"<!-- menu start -->",
		"<ul>",
		"  <li>",
		"    <!-- home start -->",
		`    <a href="#">homeのリンクを入れる</a>`,
		"    <!-- home end -->",
		"  </li>",
		"</ul>",
		"<!-- menu end -->",
	}, "\n")
	assert.Equal(t, want, s.Output())
}

func TestGenerateDeterministic(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindSection, "x", "y", PlaceChild))
	for i := 0; i < 8; i++ {
		require.True(t, s.SetAttribute("data-"+string(rune('a'+i)), "v"))
	}
	first := s.Output()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Output())
	}
}

func TestGenerateSubtree(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindParagraph, "", "", PlaceChild))
	assert.Equal(t, "<p>\n</p>", Generate(s.Selected().Parent()))
}

// findElement returns the first element with the given atom, depth first.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func TestGenerateParsesBack(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindSection, "intro", "", PlaceChild))
	require.True(t, s.Add(KindList, "", "", PlaceChild))
	require.True(t, s.Add(KindListItem, "", "", PlaceChild))
	require.True(t, s.Add(KindImage, "", "", PlaceChild))

	doc, err := html.Parse(strings.NewReader(s.Output()))
	require.NoError(t, err)

	main := findElement(doc, atom.Main)
	require.NotNil(t, main)

	var comments []string
	var section *html.Node
	for c := main.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.CommentNode:
			comments = append(comments, strings.TrimSpace(c.Data))
		case html.ElementNode:
			section = c
		}
	}
	assert.Equal(t, []string{"intro start", "intro end"}, comments)
	require.NotNil(t, section)
	assert.Equal(t, atom.Section, section.DataAtom)

	img := findElement(section, atom.Img)
	require.NotNil(t, img)
	assert.Equal(t, atom.Li, img.Parent.DataAtom)
}
