package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLandmarkUniqueness(t *testing.T) {
	s := NewSession(ModeFull)
	before := s.Output()
	selected := s.Selected()

	for _, k := range []Kind{KindHeader, KindNav, KindMain, KindFooter} {
		assert.False(t, s.Add(k, "again", "", PlaceChild), "second %s", k)
	}
	assert.Equal(t, before, s.Output())
	assert.Same(t, selected, s.Selected())
}

func TestAddLandmarkOrder(t *testing.T) {
	testCases := []struct {
		name     string
		adds     []Kind
		accepted []bool
		want     []Kind
	}{
		{
			name:     "in order",
			adds:     []Kind{KindHeader, KindNav, KindMain, KindFooter},
			accepted: []bool{true, true, true, true},
			want:     []Kind{KindHeader, KindNav, KindMain, KindFooter},
		},
		{
			name:     "gaps are fine",
			adds:     []Kind{KindHeader, KindFooter},
			accepted: []bool{true, true},
			want:     []Kind{KindHeader, KindFooter},
		},
		{
			name:     "late header rejected",
			adds:     []Kind{KindMain, KindHeader, KindFooter, KindNav},
			accepted: []bool{true, false, true, false},
			want:     []Kind{KindMain, KindFooter},
		},
		{
			name:     "duplicate rejected",
			adds:     []Kind{KindNav, KindNav},
			accepted: []bool{true, false},
			want:     []Kind{KindNav},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(ModeEmpty)
			for i, k := range tc.adds {
				assert.Equal(t, tc.accepted[i], s.Add(k, "", "", PlaceChild), "add #%d (%s)", i, k)
			}
			assert.Equal(t, tc.want, kindsOf(s.Root().Children))
		})
	}
}

func TestAddLandmarkIgnoresPlacement(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindDiv, "", "", PlaceChild))
	require.True(t, s.Add(KindSection, "", "", PlaceChild))

	require.True(t, s.Add(KindHeader, "top", "", PlaceChild))
	header := s.Selected()
	assert.Same(t, s.Root(), header.Parent(), "landmarks always land on the root")
	assert.Equal(t, 1, header.Index())
}

func TestAddFooterSynthesizesCopyright(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindFooter, "foot", "f", PlaceChild))

	footer := s.Selected()
	require.Len(t, footer.Children, 1)
	assert.Equal(t, "copyright", footer.Children[0].Annotation)
	assert.Equal(t, footer.ID+1, footer.Children[0].ID)
}

func TestAddChildAndSibling(t *testing.T) {
	s := NewSession(ModeFull)
	main := s.Selected()

	require.True(t, s.Add(KindSection, "a", "", PlaceChild))
	a := s.Selected()
	assert.Same(t, main, a.Parent())

	require.True(t, s.Add(KindSection, "b", "", PlaceSibling))
	b := s.Selected()
	assert.Same(t, main, b.Parent())
	assert.Equal(t, []*Node{a, b}, main.Children)
}

func TestAddSiblingOfRootRejected(t *testing.T) {
	s := NewSession(ModeEmpty)
	assert.False(t, s.Add(KindDiv, "", "", PlaceSibling))
	assert.Empty(t, s.Root().Children)
}

func TestAddListItemRules(t *testing.T) {
	s := NewSession(ModeFull)

	assert.False(t, s.Add(KindListItem, "", "", PlaceChild), "li needs a ul")
	assert.False(t, s.Add(KindListItem, "", "", PlaceSibling), "parent of main is the root")

	require.True(t, s.Add(KindList, "menu", "", PlaceChild))
	ul := s.Selected()
	assert.False(t, s.Add(KindListItem, "", "", PlaceSibling), "parent of ul is main")

	require.True(t, s.Add(KindListItem, "one", "", PlaceChild))
	require.True(t, s.Add(KindListItem, "two", "", PlaceSibling))
	assert.Len(t, ul.Children, 2)

	assert.False(t, s.Add(KindListItem, "", "", PlaceChild), "li under li")
	require.True(t, s.Add(KindLink, "", "", PlaceChild))
	assert.Equal(t, KindListItem, s.Selected().Parent().Kind)
}

func TestAddInvalidKind(t *testing.T) {
	s := NewSession(ModeFull)
	assert.False(t, s.Add(KindRoot, "", "", PlaceChild))
	assert.False(t, s.Add(Kind(42), "", "", PlaceChild))
}

func TestDelete(t *testing.T) {
	s := NewSession(ModeFull)
	main := s.Selected()
	require.True(t, s.Add(KindSection, "", "", PlaceChild))
	require.True(t, s.Add(KindDiv, "", "", PlaceChild))
	section := s.Selected().Parent()

	require.True(t, s.Select(section.ID))
	require.True(t, s.Delete())
	assert.Same(t, main, s.Selected())
	assert.Empty(t, main.Children)
	assert.Nil(t, section.Parent())

	require.True(t, s.Select(0))
	assert.False(t, s.Delete(), "root cannot be deleted")
}

func TestDeletedIDsNotReused(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindDiv, "", "", PlaceChild))
	id := s.Selected().ID
	require.True(t, s.Delete())
	require.True(t, s.Add(KindDiv, "", "", PlaceChild))
	assert.Greater(t, s.Selected().ID, id)
}

func TestMove(t *testing.T) {
	s := NewSession(ModeFull)
	main := s.Selected()
	require.True(t, s.Add(KindDiv, "a", "", PlaceChild))
	a := s.Selected()
	require.True(t, s.Add(KindDiv, "b", "", PlaceSibling))
	b := s.Selected()

	assert.False(t, s.Move(1), "b is last")
	assert.False(t, s.Move(2))
	assert.True(t, s.Move(-1))
	assert.Equal(t, []*Node{b, a}, main.Children)
	assert.Same(t, b, s.Selected())
	assert.False(t, s.Move(-1), "b is first")

	require.True(t, s.Select(0))
	assert.False(t, s.Move(1))
}

func TestIndentOutdentInverse(t *testing.T) {
	s := NewSession(ModeFull)
	main := s.Selected()
	require.True(t, s.Add(KindDiv, "a", "", PlaceChild))
	a := s.Selected()
	require.True(t, s.Add(KindDiv, "b", "", PlaceSibling))
	b := s.Selected()
	require.True(t, s.Add(KindDiv, "c", "", PlaceSibling))
	c := s.Selected()
	before := s.Output()

	require.True(t, s.Select(b.ID))
	require.True(t, s.Indent())
	assert.Same(t, a, b.Parent())
	assert.Equal(t, []*Node{a, c}, main.Children)
	assert.Same(t, b, s.Selected())

	require.True(t, s.Outdent())
	assert.Same(t, main, b.Parent())
	assert.Equal(t, []*Node{a, b, c}, main.Children)
	assert.Equal(t, before, s.Output())
}

func TestIndentAppendsAsLastChild(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindDiv, "a", "", PlaceChild))
	a := s.Selected()
	require.True(t, s.Add(KindParagraph, "inner", "", PlaceChild))
	require.True(t, s.Select(a.ID))
	require.True(t, s.Add(KindDiv, "b", "", PlaceSibling))
	b := s.Selected()

	require.True(t, s.Indent())
	require.Len(t, a.Children, 2)
	assert.Same(t, b, a.Children[1])
}

func TestIndentOutdentRejections(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Select(1))
	assert.False(t, s.Indent(), "header is the first child")
	assert.False(t, s.Outdent(), "header's parent is the root")

	require.True(t, s.Select(0))
	assert.False(t, s.Indent())
	assert.False(t, s.Outdent())
}

func TestOutdentInsertsAfterParent(t *testing.T) {
	s := NewSession(ModeFull)
	main := s.Selected()
	require.True(t, s.Add(KindSection, "outer", "", PlaceChild))
	outer := s.Selected()
	require.True(t, s.Add(KindDiv, "x", "", PlaceChild))
	x := s.Selected()
	require.True(t, s.Select(outer.ID))
	require.True(t, s.Add(KindSection, "after", "", PlaceSibling))
	after := s.Selected()

	require.True(t, s.Select(x.ID))
	require.True(t, s.Outdent())
	assert.Equal(t, []*Node{outer, x, after}, main.Children)
	assert.Equal(t, 2, x.Depth())
}

func TestEdit(t *testing.T) {
	s := NewSession(ModeFull)
	require.True(t, s.Add(KindDiv, "old", "cls", PlaceChild))
	n := s.Selected()

	ann := "  new  "
	require.True(t, s.Edit(&ann, nil))
	assert.Equal(t, "new", n.Annotation)
	assert.Equal(t, "cls", n.StyleClass)

	cls := " card "
	require.True(t, s.Edit(nil, &cls))
	assert.Equal(t, "card", n.StyleClass)

	assert.False(t, s.Edit(nil, nil), "nothing to change")

	require.True(t, s.Select(0))
	assert.False(t, s.Edit(&ann, &cls))
}

func TestAttributes(t *testing.T) {
	s := NewSession(ModeEmpty)
	require.True(t, s.Add(KindDiv, "", "", PlaceChild))

	assert.True(t, s.SetAttribute("data-role", "hero"))
	assert.True(t, s.SetAttribute("ID", "top"))
	assert.Equal(t, map[string]string{"data-role": "hero", "id": "top"}, s.Selected().Attributes)

	assert.False(t, s.SetAttribute("class", "x"), "class goes through StyleClass")
	assert.False(t, s.SetAttribute("bad name", "x"))
	assert.False(t, s.SetAttribute("", "x"))

	assert.True(t, s.RemoveAttribute("id"))
	assert.False(t, s.RemoveAttribute("id"))
	assert.True(t, s.RemoveAttribute("data-role"))
	assert.Nil(t, s.Selected().Attributes)

	require.True(t, s.Add(KindLink, "", "", PlaceSibling))
	assert.False(t, s.SetAttribute("href", "/x"), "href is emitted by the generator")
	require.True(t, s.Add(KindImage, "", "", PlaceSibling))
	assert.False(t, s.SetAttribute("alt", "x"))

	require.True(t, s.Select(0))
	assert.False(t, s.SetAttribute("id", "x"))
}
