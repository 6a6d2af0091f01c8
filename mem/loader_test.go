package mem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"
)

func TestLoadDatabaseBasic(t *testing.T) {
	require := require.New(t)

	dump := "r( X, Y )\n1 2\n1 3\n2 4\ns( Y, Z )\n2 100\n3 200\n"
	db, err := LoadDatabase(strings.NewReader(dump))
	require.NoError(err)

	r, err := db.Get("r")
	require.NoError(err)
	require.Equal([]string{"X", "Y"}, r.Attributes)
	require.Equal([][]Value{{1, 2}, {1, 3}, {2, 4}}, r.Records)

	s, err := db.Get("s")
	require.NoError(err)
	require.Len(s.Records, 2)
}

func TestLoadDatabaseNullaryRelation(t *testing.T) {
	require := require.New(t)

	dump := "fact(  )\n"
	db, err := LoadDatabase(strings.NewReader(dump))
	require.NoError(err)

	fact, err := db.Get("fact")
	require.NoError(err)
	require.Empty(fact.Attributes)
}

func TestLoadDatabaseDuplicateRelationIsIOError(t *testing.T) {
	dump := "r( X )\n1\nr( X )\n2\n"
	_, err := LoadDatabase(strings.NewReader(dump))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIO))
}

func TestLoadDatabaseArityMismatchIsSchemaError(t *testing.T) {
	dump := "r( X, Y )\n1\n"
	_, err := LoadDatabase(strings.NewReader(dump))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSchema))
}

func TestLoadDatabaseRecordBeforeHeaderIsIOError(t *testing.T) {
	dump := "1 2\n"
	_, err := LoadDatabase(strings.NewReader(dump))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIO))
}
