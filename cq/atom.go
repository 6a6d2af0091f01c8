package cq

import (
	"fmt"
	"strings"

	"github.com/relquery/yannakakis/internal/varset"
)

// Atom is a relation symbol applied to an ordered tuple of variables. The
// same variable may occur more than once in Vars (e.g. edge(X, X)).
type Atom struct {
	Name string
	Vars []string
}

// Equal reports whether a and other name the same relation with the same
// variable tuple, position for position.
func (a Atom) Equal(other Atom) bool {
	if a.Name != other.Name || len(a.Vars) != len(other.Vars) {
		return false
	}
	for i := range a.Vars {
		if a.Vars[i] != other.Vars[i] {
			return false
		}
	}
	return true
}

// Variables returns a's variables deduplicated, in first-occurrence order.
func (a Atom) Variables() []string {
	return varset.Dedup(a.Vars)
}

// Intersect returns the variables a shares with other, in a's order.
func (a Atom) Intersect(other Atom) []string {
	return varset.Intersect(a.Variables(), other.Variables())
}

func (a Atom) String() string {
	return fmt.Sprintf("%s(%s)", a.Name, strings.Join(a.Vars, ", "))
}

// Query is a conjunctive query Head(HeadVars) :- Body[0], Body[1], ...
type Query struct {
	Head     string
	HeadVars []string
	Body     []Atom
}

// Boolean reports whether the query has zero-arity head (no head variables).
func (q *Query) Boolean() bool {
	return len(q.HeadVars) == 0
}

// Variables returns the deduplicated variables occurring anywhere in the
// body, in first-occurrence order across atoms.
func (q *Query) Variables() []string {
	var all []string
	for _, atom := range q.Body {
		all = append(all, atom.Vars...)
	}
	return varset.Dedup(all)
}

func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(q.Head)
	b.WriteByte('(')
	b.WriteString(strings.Join(q.HeadVars, ", "))
	b.WriteByte(')')
	b.WriteString(" :- ")
	parts := make([]string, len(q.Body))
	for i, atom := range q.Body {
		parts[i] = atom.String()
	}
	b.WriteString(strings.Join(parts, ", "))
	return b.String()
}
