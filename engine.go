// Package cqe (conjunctive query engine) ties parsing, acyclicity checking,
// join-forest construction and Yannakakis evaluation into one entry point:
// a small struct holding a logger and instrumentation, and one
// orchestration method.
package cqe

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/relquery/yannakakis/cq"
	"github.com/relquery/yannakakis/hypergraph"
	"github.com/relquery/yannakakis/internal/metrics"
	"github.com/relquery/yannakakis/mem"
	"github.com/relquery/yannakakis/plan"
	"github.com/relquery/yannakakis/rowexec"
)

// ErrCyclicQuery is returned when a query's body hypergraph does not reduce
// to the empty edge set under GYO: the evaluator has no join-forest to walk,
// so it refuses to run rather than guess at a lossy plan.
var ErrCyclicQuery = errors.NewKind("query is not alpha-acyclic: %s")

// Config configures an Engine.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Engine evaluates conjunctive queries against in-memory databases.
type Engine struct {
	log     *logrus.Logger
	metrics *metrics.Recorder
}

// New builds an Engine from cfg. An unrecognized or empty LogLevel leaves
// the logger at its default level.
func New(cfg Config) *Engine {
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return &Engine{log: log, metrics: metrics.NewRecorder()}
}

// MetricsHandler exposes the Engine's Prometheus metrics in exposition
// format, for callers that want to serve Config.MetricsAddr themselves.
func (e *Engine) MetricsHandler() http.Handler {
	return e.metrics.Handler()
}

// Run parses queryText, checks its body for alpha-acyclicity, builds the
// join forest and evaluates it against db, returning one result table per
// forest root. Every log line for this run carries a shared query_id so the
// pipeline's steps can be correlated.
func (e *Engine) Run(ctx context.Context, queryText string, db *mem.Database) (map[string]*mem.Table, error) {
	runID := uuid.NewString()
	entry := e.log.WithField("query_id", runID)
	start := time.Now()

	q, err := cq.Parse(queryText)
	if err != nil {
		entry.WithError(err).Error("parse failed")
		return nil, err
	}
	entry = entry.WithField("query", q.String())

	h := hypergraph.New(q)
	if !hypergraph.GYO(h) {
		cyclicErr := ErrCyclicQuery.New(q.String())
		entry.WithError(cyclicErr).Error("query is cyclic, refusing to evaluate")
		return nil, cyclicErr
	}

	forest := plan.Build(q.Body)
	entry.WithField("roots", len(forest.Roots)).Debug("join forest built")

	results, err := rowexec.Evaluate(ctx, db, forest, q, e.metrics)
	if err != nil {
		entry.WithError(err).Error("evaluation failed")
		return nil, err
	}

	e.metrics.ObserveQuery(time.Since(start))
	entry.WithFields(logrus.Fields{
		"duration_ms": time.Since(start).Milliseconds(),
		"result_sets": len(results),
	}).Info("query evaluated")

	return results, nil
}
