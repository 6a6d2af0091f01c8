package plan

import (
	"sort"

	"github.com/relquery/yannakakis/cq"
)

// pair is a surviving (non-empty intersection) edge between two body atoms,
// identified by their index in the arena.
type pair struct {
	a, b int
	sep  []string
}

// Build constructs the join forest of atoms.
//
// Step 1: every pair of atoms with a non-empty variable intersection becomes
// a candidate edge.
//
// Step 2: root selection. If some atom shares a variable with all n-1
// others, it is the single root and the whole body forms one tree. Otherwise
// roots are chosen greedily: in descending order of share count (counted
// over all edges), take the next atom that still touches a surviving edge,
// make it a root, and discard every edge touching it or one
// of its one-hop neighbors (those atoms will be absorbed into its tree in
// Step 3); atoms with zero edges at all are singleton roots.
//
// Step 3: each root's tree is grown by walkAndInsert over the edges that
// touch the root or its one-hop neighbors.
func Build(atoms []cq.Atom) *JoinForest {
	n := len(atoms)
	nodes := make([]*Node, n)
	for i, a := range atoms {
		nodes[i] = &Node{Atom: a}
	}
	forest := &JoinForest{Nodes: nodes}
	if n == 0 {
		return forest
	}

	var pairs []pair
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sep := atoms[i].Intersect(atoms[j]); len(sep) > 0 {
				pairs = append(pairs, pair{a: i, b: j, sep: sep})
			}
		}
	}

	counts := make([]int, n)
	for _, p := range pairs {
		counts[p.a]++
		counts[p.b]++
	}

	if n > 1 {
		for i := 0; i < n; i++ {
			if counts[i] == n-1 {
				forest.Roots = []int{i}
				insertTree(forest, i, pairs)
				return forest
			}
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return counts[order[x]] > counts[order[y]]
	})

	remaining := append([]pair(nil), pairs...)
	var roots []int
	for _, idx := range order {
		if len(remaining) == 0 {
			break
		}
		if !touches(remaining, idx) {
			continue
		}
		roots = append(roots, idx)
		linked := oneHopNeighbors(pairs, idx)
		remaining = pruneAround(remaining, idx, linked)
	}
	for i := 0; i < n; i++ {
		if counts[i] == 0 {
			roots = append(roots, i)
		}
	}

	forest.Roots = roots
	for _, root := range roots {
		linked := oneHopNeighbors(pairs, root)
		var treePairs []pair
		for _, p := range pairs {
			if p.a == root || p.b == root || linked[p.a] || linked[p.b] {
				treePairs = append(treePairs, p)
			}
		}
		insertTree(forest, root, treePairs)
	}
	return forest
}

func touches(pairs []pair, idx int) bool {
	for _, p := range pairs {
		if p.a == idx || p.b == idx {
			return true
		}
	}
	return false
}

func oneHopNeighbors(pairs []pair, idx int) map[int]bool {
	linked := make(map[int]bool)
	for _, p := range pairs {
		if p.a == idx {
			linked[p.b] = true
		}
		if p.b == idx {
			linked[p.a] = true
		}
	}
	return linked
}

func pruneAround(pairs []pair, idx int, linked map[int]bool) []pair {
	var next []pair
	for _, p := range pairs {
		if p.a == idx || p.b == idx || linked[p.a] || linked[p.b] {
			continue
		}
		next = append(next, p)
	}
	return next
}

// insertTree grows root's tree from pairs (restricted to those touching root
// or its one-hop neighbors). Pairs with root on either side are processed
// first, root normalized to the left, so every one-hop neighbor of root is
// placed before the remaining pairs are reached. A pair (A, B) is used only
// when A is already placed and B is not; any other pair is skipped, and the
// remaining pairs keep their original orientation.
func insertTree(forest *JoinForest, root int, pairs []pair) {
	inserted := map[int]bool{root: true}

	var sorted []pair
	for _, p := range pairs {
		switch {
		case p.a == root:
			sorted = append(sorted, p)
		case p.b == root:
			sorted = append(sorted, pair{a: p.b, b: p.a, sep: p.sep})
		}
	}
	for _, p := range pairs {
		if p.a != root && p.b != root {
			sorted = append(sorted, p)
		}
	}

	for _, p := range sorted {
		if inserted[p.b] || !inserted[p.a] {
			continue
		}
		if walkAndInsert(forest.Nodes, p.a, p.sep, p.b, sorted) {
			inserted[p.b] = true
			continue
		}
		attachChild(forest.Nodes, p.a, p.b, p.sep)
		inserted[p.b] = true
	}
}
