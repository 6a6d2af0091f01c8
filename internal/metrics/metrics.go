// Package metrics holds the Prometheus instrumentation for the evaluation
// pipeline: a private registry per Recorder (not the global default
// registry), so an Engine can be constructed more than once in the same
// process — tests build several — without a duplicate-registration panic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder exposes counters and histograms for queries evaluated and joins
// performed.
type Recorder struct {
	registry *prometheus.Registry
	queries  prometheus.Counter
	duration prometheus.Histogram
	joins    prometheus.Counter
}

// NewRecorder builds a Recorder with its own private registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "yannakakis_queries_total",
			Help: "Number of conjunctive queries evaluated.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "yannakakis_query_duration_seconds",
			Help:    "Wall-clock time spent evaluating a query, from parse to final projection.",
			Buckets: prometheus.DefBuckets,
		}),
		joins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "yannakakis_joins_total",
			Help: "Number of natural joins performed across all Yannakakis reduction steps.",
		}),
	}
	registry.MustRegister(r.queries, r.duration, r.joins)
	return r
}

// ObserveQuery records one completed query evaluation.
func (r *Recorder) ObserveQuery(d time.Duration) {
	r.queries.Inc()
	r.duration.Observe(d.Seconds())
}

// ObserveJoin records one natural join performed during a reduction step.
func (r *Recorder) ObserveJoin() {
	r.joins.Inc()
}

// Handler exposes the Recorder's metrics in Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
