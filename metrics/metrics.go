// Package metrics exports search statistics as Prometheus collectors.
//
// A Recorder owns a private registry so that tests and the CLI never touch
// the global default one. Plug it into a solve with search.WithObserver:
//
//	rec := metrics.NewRecorder()
//	solver, _ := search.NewSolver(ctx, n, "AA", search.WithObserver(rec.Observe))
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/valvesearch/search"
)

const namespace = "valves"

// Recorder accumulates per-mode search statistics.
type Recorder struct {
	registry  *prometheus.Registry
	solves    *prometheus.CounterVec
	calls     *prometheus.CounterVec
	hits      *prometheus.CounterVec
	entries   *prometheus.GaugeVec
	durations *prometheus.HistogramVec
}

// NewRecorder creates the collectors and registers them.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "solves_total",
			Help:      "Number of finished solves.",
		}, []string{"mode"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "calls_total",
			Help:      "Search states visited, cache hits included.",
		}, []string{"mode"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "cache_hits_total",
			Help:      "States answered from the memo cache.",
		}, []string{"mode"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "cache_entries",
			Help:      "Memo cache size at the end of the last solve.",
		}, []string{"mode"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "solve_seconds",
			Help:      "Wall time of a solve.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"mode"}),
	}
	r.registry.MustRegister(r.solves, r.calls, r.hits, r.entries, r.durations)

	return r
}

// Observe records one solve; its signature matches search.WithObserver.
func (r *Recorder) Observe(mode search.Mode, st search.Stats) {
	m := string(mode)
	r.solves.WithLabelValues(m).Inc()
	r.calls.WithLabelValues(m).Add(float64(st.Calls))
	r.hits.WithLabelValues(m).Add(float64(st.CacheHits))
	r.entries.WithLabelValues(m).Set(float64(st.CacheSize))
	r.durations.WithLabelValues(m).Observe(st.Duration.Seconds())
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes every metric in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
