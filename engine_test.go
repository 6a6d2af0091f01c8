package cqe

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/relquery/yannakakis/mem"
)

func TestEngineRunEvaluatesAcyclicQuery(t *testing.T) {
	require := require.New(t)

	db, err := mem.LoadDatabase(strings.NewReader("r( X, Y )\n1 2\n2 3\ns( Y, Z )\n2 100\n3 200\n"))
	require.NoError(err)

	engine := New(Config{LogLevel: "error"})
	results, err := engine.Run(context.Background(), "q(X, Z) :- r(X, Y), s(Y, Z)", db)
	require.NoError(err)
	require.Len(results, 1)
	for _, table := range results {
		require.ElementsMatch([][]mem.Value{{1, 100}, {2, 200}}, table.Records)
	}
}

func TestEngineRunRejectsCyclicQuery(t *testing.T) {
	require := require.New(t)

	db := mem.NewDatabase()
	db.Put(mem.NewTable("edge", []string{"A", "B"}))

	engine := New(Config{LogLevel: "error"})
	_, err := engine.Run(context.Background(), "triangle() :- edge(X, Y), edge(Y, Z), edge(Z, X)", db)
	require.Error(err)
	require.True(errors.Is(err, ErrCyclicQuery))
}

func TestEngineRunRejectsMalformedQuery(t *testing.T) {
	engine := New(Config{LogLevel: "error"})
	_, err := engine.Run(context.Background(), "not a query", mem.NewDatabase())
	require.Error(t, err)
}
