package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relquery/yannakakis/cq"
)

func mustParse(t *testing.T, text string) *cq.Query {
	t.Helper()
	q, err := cq.Parse(text)
	require.NoError(t, err)
	return q
}

func TestBuildPathQuerySingleRoot(t *testing.T) {
	require := require.New(t)

	q := mustParse(t, "q(X, Z) :- r(X, Y), s(Y, Z)")
	forest := Build(q.Body)

	require.Len(forest.Roots, 1)
	require.Equal(2, countNodes(forest))
}

func TestBuildStarQuerySingleRoot(t *testing.T) {
	require := require.New(t)

	q := mustParse(t, "q(C) :- r(C, A), s(C, B), t(C, D)")
	forest := Build(q.Body)

	require.Len(forest.Roots, 1)
	root := forest.Roots[0]
	require.Equal("r", forest.Nodes[root].Atom.Name)
	// All three atoms share C, so a single tree holds all of them; whether
	// s and t both hang directly off r or chain through one another is an
	// algorithm implementation detail, not a guaranteed shape — the running
	// intersection property (checked separately) is what actually matters.
	require.Equal(3, countNodes(forest))
}

func TestBuildForestQueryMultipleRoots(t *testing.T) {
	require := require.New(t)

	q := mustParse(t, "q() :- r(A, B), s(B), t(C, D), u(D)")
	forest := Build(q.Body)

	require.Len(forest.Roots, 2)
	require.Equal(countNodes(forest), len(q.Body))
}

func TestBuildRunningIntersectionProperty(t *testing.T) {
	require := require.New(t)

	q := mustParse(t, "q() :- r(A, B), s(B, C), t(C, D)")
	forest := Build(q.Body)

	for _, v := range q.Variables() {
		owners := ownersOf(forest, v)
		require.NotEmpty(owners)
		require.True(ownersConnected(forest, owners), "nodes owning %q must form a connected subtree", v)
	}
}

func ownersOf(forest *JoinForest, v string) map[int]bool {
	owners := make(map[int]bool)
	for i, n := range forest.Nodes {
		for _, vv := range n.Atom.Vars {
			if vv == v {
				owners[i] = true
				break
			}
		}
	}
	return owners
}

// ownersConnected reports whether owners forms a connected induced subgraph
// of the forest's tree edges: starting from any one owner, a walk that only
// crosses edges between two owners must reach every other owner.
func ownersConnected(forest *JoinForest, owners map[int]bool) bool {
	var start int
	for o := range owners {
		start = o
		break
	}
	visited := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		var neighbors []int
		for _, ce := range forest.Nodes[n].Children {
			neighbors = append(neighbors, ce.to)
		}
		if forest.Nodes[n].Parent != nil {
			neighbors = append(neighbors, forest.Nodes[n].Parent.to)
		}
		for _, nb := range neighbors {
			if owners[nb] && !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}
	for o := range owners {
		if !visited[o] {
			return false
		}
	}
	return true
}

func countNodes(f *JoinForest) int {
	count := 0
	var visit func(int)
	visit = func(n int) {
		count++
		for _, ce := range f.Nodes[n].Children {
			visit(ce.to)
		}
	}
	for _, r := range f.Roots {
		visit(r)
	}
	return count
}
