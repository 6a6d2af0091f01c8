// Package hypergraph builds the variable hypergraph of a conjunctive query's
// body and tests it for alpha-acyclicity via the GYO ear-elimination
// procedure (Graham / Yu-Özsoyoğlu).
package hypergraph

import "github.com/relquery/yannakakis/cq"

// HyperEdge is the vertex set contributed by one body atom.
type HyperEdge struct {
	Atom cq.Atom
	Vars []string // deduplicated, first-occurrence order
}

// Contains reports whether v is one of e's vertices.
func (e HyperEdge) Contains(v string) bool {
	for _, x := range e.Vars {
		if x == v {
			return true
		}
	}
	return false
}

// Equal identifies a hyperedge by the atom it was built from.
func (e HyperEdge) Equal(other HyperEdge) bool {
	return e.Atom.Equal(other.Atom)
}

// Hypergraph is the variable hypergraph of a query body: one vertex per
// variable, one hyperedge per atom.
type Hypergraph struct {
	V []string
	E []HyperEdge
}

// New builds the hypergraph of q's body.
func New(q *cq.Query) *Hypergraph {
	h := &Hypergraph{V: q.Variables()}
	h.E = make([]HyperEdge, len(q.Body))
	for i, atom := range q.Body {
		h.E[i] = HyperEdge{Atom: atom, Vars: atom.Variables()}
	}
	return h
}

func (h *Hypergraph) clone() *Hypergraph {
	e := make([]HyperEdge, len(h.E))
	copy(e, h.E)
	return &Hypergraph{V: h.V, E: e}
}
