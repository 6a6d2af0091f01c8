package plan

import "github.com/relquery/yannakakis/internal/varset"

// walkAndInsert looks for a place to attach target under the subtree rooted
// at n's tree (searching via n's children, then its parent, then by direct
// pair lookup at n), consuming path as it descends. The same three-step
// procedure applies uniformly whether n is the original search root or a
// node reached by recursion, since arena indices give every node the same
// identity regardless of how it was reached.
//
// Step 1: try each child c of n whose separator shares a variable with path;
// recurse with path minus that separator.
//
// Step 2: try n's parent the same way.
//
// Step 3: if a pair (n, target) or (target, n) exists whose separator
// contains every variable still in path, attach target as n's child with
// that separator.
//
// If all three steps fail, the caller attaches target directly under the
// original search root.
func walkAndInsert(nodes []*Node, n int, path []string, target int, pairs []pair) bool {
	node := nodes[n]

	for _, ce := range node.Children {
		if len(varset.Intersect(ce.sep, path)) == 0 {
			continue
		}
		remaining := varset.Subtract(path, ce.sep)
		if walkAndInsert(nodes, ce.to, remaining, target, pairs) {
			return true
		}
	}

	if node.Parent != nil && len(varset.Intersect(node.Parent.sep, path)) > 0 {
		remaining := varset.Subtract(path, node.Parent.sep)
		if walkAndInsert(nodes, node.Parent.to, remaining, target, pairs) {
			return true
		}
	}

	for _, p := range pairs {
		var sep []string
		switch {
		case p.a == n && p.b == target:
			sep = p.sep
		case p.b == n && p.a == target:
			sep = p.sep
		default:
			continue
		}
		if varset.ContainsAll(sep, path) {
			attachChild(nodes, n, target, sep)
			return true
		}
	}

	return false
}
