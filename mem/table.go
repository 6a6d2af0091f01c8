package mem

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/mitchellh/hashstructure"
)

// Table is a named relation: an ordered attribute schema and a bag of
// tuples (join results may carry duplicate rows; only Project deduplicates).
type Table struct {
	Name       string
	Attributes []string
	Records    [][]Value
}

// NewTable returns an empty table with the given schema.
func NewTable(name string, attributes []string) *Table {
	attrs := make([]string, len(attributes))
	copy(attrs, attributes)
	return &Table{Name: name, Attributes: attrs}
}

// HasAttribute reports whether attr is one of t's columns.
func (t *Table) HasAttribute(attr string) bool {
	_, ok := t.indexOf(attr)
	return ok
}

func (t *Table) indexOf(attr string) (int, bool) {
	for i, a := range t.Attributes {
		if a == attr {
			return i, true
		}
	}
	return -1, false
}

func (t *Table) positions(attrs []string) ([]int, error) {
	positions := make([]int, len(attrs))
	for i, a := range attrs {
		idx, ok := t.indexOf(a)
		if !ok {
			return nil, ErrSchema.New(fmt.Sprintf("attribute %q not present in table %q", a, t.Name))
		}
		positions[i] = idx
	}
	return positions, nil
}

// Project restricts every record to attrs (in the given order) and
// deduplicates the result, giving projection set semantics. Unknown
// attributes are ErrSchema.
func (t *Table) Project(attrs []string) (*Table, error) {
	positions, err := t.positions(attrs)
	if err != nil {
		return nil, err
	}

	result := NewTable(t.Name, attrs)
	seen := make(map[uint64][][]Value, len(t.Records))
	for _, record := range t.Records {
		projected := extract(record, positions)
		h, err := hashstructure.Hash(projected, nil)
		if err != nil {
			return nil, err
		}
		if containsValues(seen[h], projected) {
			continue
		}
		seen[h] = append(seen[h], projected)
		result.Records = append(result.Records, projected)
	}
	return result, nil
}

func containsValues(bucket [][]Value, v []Value) bool {
	for _, existing := range bucket {
		if valuesEqual(existing, v) {
			return true
		}
	}
	return false
}

func valuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func extract(record []Value, positions []int) []Value {
	out := make([]Value, len(positions))
	for i, p := range positions {
		out[i] = record[p]
	}
	return out
}

// NaturalJoin computes the natural (hash) join of t and other on their
// shared attribute names. The result schema is t's exclusive columns,
// followed by the shared columns in t's order, followed by other's
// exclusive columns. When t and other share no attribute, the join
// degenerates to the Cartesian product. Multiplicities are preserved: a
// bag semantics join, not deduplicated.
func (t *Table) NaturalJoin(other *Table) *Table {
	common := sharedAttributes(t.Attributes, other.Attributes)
	leftOnly := exclude(t.Attributes, common)
	rightOnly := exclude(other.Attributes, common)

	schema := make([]string, 0, len(leftOnly)+len(common)+len(rightOnly))
	schema = append(schema, leftOnly...)
	schema = append(schema, common...)
	schema = append(schema, rightOnly...)

	result := NewTable(fmt.Sprintf("%s ⋈ %s", t.Name, other.Name), schema)

	leftCommonPos, _ := t.positions(common)
	leftOnlyPos, _ := t.positions(leftOnly)
	rightCommonPos, _ := other.positions(common)
	rightOnlyPos, _ := other.positions(rightOnly)

	type bucket struct {
		key []Value
		row [][]Value
	}
	buckets := make(map[uint64][]bucket, len(t.Records))
	for _, record := range t.Records {
		key := extract(record, leftCommonPos)
		h := hashKey(key)
		left := extract(record, leftOnlyPos)
		placed := false
		for i, b := range buckets[h] {
			if valuesEqual(b.key, key) {
				buckets[h][i].row = append(buckets[h][i].row, left)
				placed = true
				break
			}
		}
		if !placed {
			buckets[h] = append(buckets[h], bucket{key: key, row: [][]Value{left}})
		}
	}

	for _, record := range other.Records {
		key := extract(record, rightCommonPos)
		h := hashKey(key)
		right := extract(record, rightOnlyPos)
		for _, b := range buckets[h] {
			if !valuesEqual(b.key, key) {
				continue
			}
			for _, left := range b.row {
				joined := make([]Value, 0, len(schema))
				joined = append(joined, left...)
				joined = append(joined, key...)
				joined = append(joined, right...)
				result.Records = append(result.Records, joined)
			}
		}
	}

	return result
}

func sharedAttributes(a, b []string) []string {
	bset := make(map[string]bool, len(b))
	for _, x := range b {
		bset[x] = true
	}
	seen := make(map[string]bool, len(a))
	var out []string
	for _, x := range a {
		if bset[x] && !seen[x] {
			out = append(out, x)
			seen[x] = true
		}
	}
	return out
}

func exclude(attrs, remove []string) []string {
	rset := make(map[string]bool, len(remove))
	for _, x := range remove {
		rset[x] = true
	}
	var out []string
	for _, x := range attrs {
		if !rset[x] {
			out = append(out, x)
		}
	}
	return out
}

// hashKey hashes a join key with xxhash: the bucket lookup is a hot path for
// wide tables, so a non-cryptographic hash over the raw value bytes beats
// the reflection-based hashing Project uses for deduplication.
func hashKey(key []Value) uint64 {
	buf := make([]byte, 8*len(key))
	for i, v := range key {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	return xxhash.Sum64(buf)
}
