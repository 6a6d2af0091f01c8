// Package varset holds the small set/slice operations over variable names
// that the query, join-forest and evaluator packages all need: order
// matters (first-occurrence order is preserved throughout), but membership
// checks should not be O(n^2) on large atoms.
package varset

// ToSet builds a membership set from xs.
func ToSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}

// Dedup returns xs with duplicates removed, preserving first-occurrence order.
func Dedup(xs []string) []string {
	seen := make(map[string]bool, len(xs))
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// Intersect returns the elements of a that also occur in b, in a's order,
// deduplicated.
func Intersect(a, b []string) []string {
	bs := ToSet(b)
	seen := make(map[string]bool, len(a))
	var out []string
	for _, v := range a {
		if bs[v] && !seen[v] {
			out = append(out, v)
			seen[v] = true
		}
	}
	return out
}

// Subtract returns the elements of a that do not occur in b, in a's order.
func Subtract(a, b []string) []string {
	bs := ToSet(b)
	var out []string
	for _, v := range a {
		if !bs[v] {
			out = append(out, v)
		}
	}
	return out
}

// ContainsAll reports whether every element of items occurs in set.
func ContainsAll(set, items []string) bool {
	s := ToSet(set)
	for _, v := range items {
		if !s[v] {
			return false
		}
	}
	return true
}

// AppendMissing appends to base every element of additions not already
// present in base, preserving base's existing order and additions' order.
func AppendMissing(base, additions []string) []string {
	present := ToSet(base)
	out := append([]string(nil), base...)
	for _, v := range additions {
		if !present[v] {
			out = append(out, v)
			present[v] = true
		}
	}
	return out
}
