package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"
)

func TestProjectDeduplicates(t *testing.T) {
	require := require.New(t)

	r := NewTable("r", []string{"X", "Y"})
	r.Records = [][]Value{{1, 10}, {1, 20}, {2, 10}}

	projected, err := r.Project([]string{"X"})
	require.NoError(err)
	require.Equal([]string{"X"}, projected.Attributes)
	require.ElementsMatch([][]Value{{1}, {2}}, projected.Records)
}

func TestProjectUnknownAttributeIsSchemaError(t *testing.T) {
	r := NewTable("r", []string{"X"})
	_, err := r.Project([]string{"Z"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSchema))
}

func TestProjectIsIdempotent(t *testing.T) {
	require := require.New(t)

	r := NewTable("r", []string{"X", "Y"})
	r.Records = [][]Value{{1, 10}, {1, 20}, {2, 10}}

	once, err := r.Project([]string{"X"})
	require.NoError(err)
	twice, err := once.Project([]string{"X"})
	require.NoError(err)
	require.ElementsMatch(once.Records, twice.Records)
}

func TestNaturalJoinOnSharedAttribute(t *testing.T) {
	require := require.New(t)

	r := NewTable("r", []string{"X", "Y"})
	r.Records = [][]Value{{1, 2}, {1, 3}}
	s := NewTable("s", []string{"Y", "Z"})
	s.Records = [][]Value{{2, 100}, {3, 200}, {9, 999}}

	joined := r.NaturalJoin(s)
	require.Equal([]string{"X", "Y", "Z"}, joined.Attributes)
	require.ElementsMatch([][]Value{{1, 2, 100}, {1, 3, 200}}, joined.Records)
}

func TestNaturalJoinIsCommutativeUpToColumnOrder(t *testing.T) {
	require := require.New(t)

	r := NewTable("r", []string{"X", "Y"})
	r.Records = [][]Value{{1, 2}}
	s := NewTable("s", []string{"Y", "Z"})
	s.Records = [][]Value{{2, 100}}

	rs := r.NaturalJoin(s)
	sr := s.NaturalJoin(r)

	rsProjected, err := rs.Project([]string{"X", "Y", "Z"})
	require.NoError(err)
	srProjected, err := sr.Project([]string{"X", "Y", "Z"})
	require.NoError(err)
	require.ElementsMatch(rsProjected.Records, srProjected.Records)
}

func TestNaturalJoinWithNoSharedAttributesIsCartesianProduct(t *testing.T) {
	require := require.New(t)

	r := NewTable("r", []string{"X"})
	r.Records = [][]Value{{1}, {2}}
	s := NewTable("s", []string{"Y"})
	s.Records = [][]Value{{10}, {20}, {30}}

	joined := r.NaturalJoin(s)
	require.Len(joined.Records, 6)
}

func TestNaturalJoinPreservesMultiplicities(t *testing.T) {
	require := require.New(t)

	r := NewTable("r", []string{"X", "Y"})
	r.Records = [][]Value{{1, 2}, {1, 2}}
	s := NewTable("s", []string{"Y"})
	s.Records = [][]Value{{2}}

	joined := r.NaturalJoin(s)
	require.Len(joined.Records, 2, "bag semantics: duplicate left rows are not collapsed")
}
