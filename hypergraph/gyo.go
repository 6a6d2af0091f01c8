package hypergraph

// Ears returns the hyperedges of h that are removable in one GYO step: an
// edge e is an ear when every vertex of e that also occurs in some other
// edge is covered, all at once, by a single other edge (its witness).
// A edge with no shared vertices at all is trivially an ear.
func Ears(h *Hypergraph) []HyperEdge {
	var ears []HyperEdge
	for _, e := range h.E {
		var shared []string
		for _, v := range e.Vars {
			if occursElsewhere(h, e, v) {
				shared = append(shared, v)
			}
		}
		if len(shared) == 0 {
			ears = append(ears, e)
			continue
		}
		if hasWitness(h, e, shared) {
			ears = append(ears, e)
		}
	}
	return ears
}

func occursElsewhere(h *Hypergraph, e HyperEdge, v string) bool {
	for _, other := range h.E {
		if other.Equal(e) {
			continue
		}
		if other.Contains(v) {
			return true
		}
	}
	return false
}

func hasWitness(h *Hypergraph, e HyperEdge, shared []string) bool {
	for _, other := range h.E {
		if other.Equal(e) {
			continue
		}
		covers := true
		for _, v := range shared {
			if !other.Contains(v) {
				covers = false
				break
			}
		}
		if covers {
			return true
		}
	}
	return false
}

// GYO runs the ear-elimination procedure on a copy of h's edge set, removing
// the first ear found (in hyperedge order) on each iteration, until no ear
// remains. It reports whether the edge set became empty, i.e. whether h is
// alpha-acyclic.
func GYO(h *Hypergraph) bool {
	cur := h.clone()
	for {
		ears := Ears(cur)
		if len(ears) == 0 {
			break
		}
		cur.E = removeFirst(cur.E, ears[0])
	}
	return len(cur.E) == 0
}

func removeFirst(edges []HyperEdge, target HyperEdge) []HyperEdge {
	next := make([]HyperEdge, 0, len(edges)-1)
	removed := false
	for _, e := range edges {
		if !removed && e.Equal(target) {
			removed = true
			continue
		}
		next = append(next, e)
	}
	return next
}
