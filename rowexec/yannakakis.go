// Package rowexec runs the Yannakakis evaluation pass over a join forest
// built by plan.Build, against the relations stored in a mem.Database.
package rowexec

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"

	"github.com/relquery/yannakakis/cq"
	"github.com/relquery/yannakakis/internal/metrics"
	"github.com/relquery/yannakakis/internal/varset"
	"github.com/relquery/yannakakis/mem"
	"github.com/relquery/yannakakis/plan"
)

// Evaluate runs the post-order semijoin-reduction pass of forest against db,
// then projects each root's reduced relation onto q's head variables. The
// result is one table per root, named "Query result <root atom name>".
//
// A head variable absent from every body atom is rejected here with
// ErrSchema: the evaluator, not the parser, owns this check, since only
// the evaluator has the full picture of vars(body) ∪ HeadVars together.
// A boolean query (no head variables)
// yields a zero-arity result table with either one empty tuple (body
// satisfiable) or none.
func Evaluate(ctx context.Context, db *mem.Database, forest *plan.JoinForest, q *cq.Query, rec *metrics.Recorder) (map[string]*mem.Table, error) {
	if err := checkHeadVars(q); err != nil {
		return nil, err
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "yannakakis.evaluate")
	defer span.Finish()

	results := make(map[string]*mem.Table, len(forest.Roots))
	for _, root := range forest.Roots {
		rootSpan, _ := opentracing.StartSpanFromContext(ctx, "yannakakis.tree")
		rootSpan.SetTag("root", forest.Nodes[root].Atom.Name)

		for _, r := range postOrder(forest, root) {
			for _, ce := range forest.Nodes[r].Children {
				if err := reduce(db, forest, r, ce.to, q); err != nil {
					rootSpan.Finish()
					return nil, err
				}
				if rec != nil {
					rec.ObserveJoin()
				}
			}
		}

		rootTable, err := db.Get(forest.Nodes[root].Atom.Name)
		if err != nil {
			rootSpan.Finish()
			return nil, err
		}
		projected, err := rootTable.Project(q.HeadVars)
		if err != nil {
			rootSpan.Finish()
			return nil, err
		}
		name := fmt.Sprintf("Query result %s", forest.Nodes[root].Atom.Name)
		projected.Name = name
		results[name] = projected
		rootSpan.Finish()
	}
	return results, nil
}

func checkHeadVars(q *cq.Query) error {
	body := varset.ToSet(q.Variables())
	for _, hv := range q.HeadVars {
		if !body[hv] {
			return mem.ErrSchema.New(fmt.Sprintf("head variable %q not present in any body atom", hv))
		}
	}
	return nil
}

// postOrder lists the nodes of root's tree such that every node appears
// after all of its descendants, so that by the time a node is reduced with a
// child, that child has already absorbed its own children.
func postOrder(forest *plan.JoinForest, root int) []int {
	var order []int
	var visit func(int)
	visit = func(n int) {
		for _, ce := range forest.Nodes[n].Children {
			visit(ce.to)
		}
		order = append(order, n)
	}
	visit(root)
	return order
}

// reduce folds child s's (already-reduced) relation into parent r's relation
// via a natural join, then projects back onto r's own variables plus any
// query head variables r or s contributes — so that a head variable living
// only in a non-root node survives all the way up to the root.
func reduce(db *mem.Database, forest *plan.JoinForest, r, s int, q *cq.Query) error {
	tr, err := db.Get(forest.Nodes[r].Atom.Name)
	if err != nil {
		return err
	}
	ts, err := db.Get(forest.Nodes[s].Atom.Name)
	if err != nil {
		return err
	}

	joined := tr.NaturalJoin(ts)

	projection := forest.Nodes[r].Atom.Variables()
	projection = varset.AppendMissing(projection, headVarsIn(q, tr, ts))

	projected, err := joined.Project(projection)
	if err != nil {
		return err
	}
	projected.Name = forest.Nodes[r].Atom.Name
	db.Put(projected)
	return nil
}

func headVarsIn(q *cq.Query, tables ...*mem.Table) []string {
	var out []string
	for _, hv := range q.HeadVars {
		for _, t := range tables {
			if t.HasAttribute(hv) {
				out = append(out, hv)
				break
			}
		}
	}
	return out
}
