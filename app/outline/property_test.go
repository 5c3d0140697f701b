package outline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkWellFormed verifies parent links, acyclicity, unique ids and a
// reachable selection.
func checkWellFormed(t *testing.T, s *Session) {
	t.Helper()
	ids := map[int]bool{}
	selectedReachable := false
	var walk func(parent, n *Node)
	walk = func(parent, n *Node) {
		require.Same(t, parent, n.parent, "parent link of node %d", n.ID)
		require.False(t, ids[n.ID], "node %d reachable twice or id reused", n.ID)
		require.False(t, n.isAncestorOf(n))
		ids[n.ID] = true
		if n == s.selected {
			selectedReachable = true
		}
		for _, c := range n.Children {
			walk(n, c)
		}
	}
	walk(nil, s.root)
	require.True(t, selectedReachable, "selection must stay reachable")
}

// checkLandmarks verifies uniqueness and order of landmark root children.
func checkLandmarks(t *testing.T, s *Session) {
	t.Helper()
	seen := map[Kind]bool{}
	last := -1
	for _, c := range s.root.Children {
		p := landmarkPriority(c.Kind)
		if p < 0 {
			continue
		}
		require.False(t, seen[c.Kind], "landmark %s twice", c.Kind)
		require.GreaterOrEqual(t, p, last, "landmark %s out of order", c.Kind)
		seen[c.Kind] = true
		last = p
	}
}

func randomSelect(r *rand.Rand, s *Session) {
	entries := s.Flatten()
	if len(entries) == 0 || r.Intn(6) == 0 {
		s.Select(0)
		return
	}
	s.Select(entries[r.Intn(len(entries))].Node.ID)
}

func randomAdd(r *rand.Rand, s *Session) {
	k := AddableKinds[r.Intn(len(AddableKinds))]
	p := Placement(r.Intn(2))
	s.Add(k, []string{"", "a", "b-1"}[r.Intn(3)], "", p)
}

func TestPropertyAddsKeepLandmarkInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := NewSession([]Mode{ModeFull, ModeEmpty}[seed%2])
		for step := 0; step < 80; step++ {
			if r.Intn(3) == 0 {
				randomSelect(r, s)
			} else {
				randomAdd(r, s)
			}
			checkLandmarks(t, s)
			checkWellFormed(t, s)
		}
	}
}

func TestPropertyAllOpsKeepTreeWellFormed(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := NewSession(ModeFull)
		for step := 0; step < 150; step++ {
			before := s.Output()
			selected := s.selected
			var changed bool
			switch r.Intn(9) {
			case 0, 1:
				randomSelect(r, s)
				continue
			case 2:
				randomAdd(r, s)
				continue
			case 3:
				changed = s.Delete()
			case 4:
				changed = s.Move([]int{-1, 1}[r.Intn(2)])
			case 5:
				changed = s.Indent()
			case 6:
				changed = s.Outdent()
			case 7:
				changed = s.Duplicate()
			case 8:
				a := "x-2"
				changed = s.Edit(&a, nil)
			}
			checkWellFormed(t, s)
			if !changed {
				require.Equal(t, before, s.Output(), "rejected op must not mutate")
				require.Same(t, selected, s.selected, "rejected op must not move selection")
			}
		}
	}
}

func TestPropertyIndentOutdentRoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		r := rand.New(rand.NewSource(seed))
		s := NewSession(ModeFull)
		for step := 0; step < 40; step++ {
			randomAdd(r, s)
			randomSelect(r, s)
		}
		n := s.selected
		if n == s.root || n.Index() <= 0 {
			continue
		}
		parent, idx := n.parent, n.Index()
		before := s.Output()

		require.True(t, s.Indent())
		require.True(t, s.Outdent())
		require.Same(t, parent, n.parent)
		require.Equal(t, idx, n.Index())
		require.Equal(t, before, s.Output())
	}
}
