// Package plan builds a join forest from a conjunctive query's body atoms.
// Nodes live in a flat arena (JoinForest.Nodes), addressed by index;
// parent/child links are (index, separator) pairs rather than pointer
// cycles, since an index into a slice is stable identity on its own.
package plan

import "github.com/relquery/yannakakis/cq"

type childEdge struct {
	to  int
	sep []string
}

type parentEdge struct {
	to  int
	sep []string
}

// Node is one body atom placed in the join forest.
type Node struct {
	Atom     cq.Atom
	Children []childEdge
	Parent   *parentEdge
}

// JoinForest is a forest of atoms satisfying the running-intersection
// property: for any variable, the nodes containing it form a connected
// subtree.
type JoinForest struct {
	Nodes []*Node
	Roots []int
}

func attachChild(nodes []*Node, parent, child int, sep []string) {
	nodes[parent].Children = append(nodes[parent].Children, childEdge{to: child, sep: sep})
	nodes[child].Parent = &parentEdge{to: parent, sep: sep}
}
