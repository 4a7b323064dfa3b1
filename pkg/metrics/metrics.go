package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry creates a registry with all collectors registered
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.SectionsLoaded = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "tsg_sections_loaded",
			Help: "Number of graph sections in the loaded collection",
		},
	)

	r.NodesLoaded = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "tsg_nodes_loaded",
			Help: "Total number of nodes across all sections",
		},
	)

	r.EdgesLoaded = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "tsg_edges_loaded",
			Help: "Total number of edges across all sections",
		},
	)

	r.LoadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tsg_load_duration_seconds",
			Help:    "Time spent parsing input into a collection",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)

	r.LoadErrors = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsg_load_errors_total",
			Help: "Load failures by error kind",
		},
		[]string{"kind"},
	)

	r.PathsEnumerated = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsg_paths_enumerated_total",
			Help: "Paths emitted by the traversal engine per section",
		},
		[]string{"section"},
	)

	r.TraversalDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tsg_traversal_duration_seconds",
			Help:    "Per-section traversal duration",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"section"},
	)

	r.InvariantViolations = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "tsg_invariant_violations_total",
			Help: "Structural invariant violations surfaced by traversal (engine defects)",
		},
	)

	r.RecordsExported = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tsg_records_exported_total",
			Help: "Records written by renderers, by output format",
		},
		[]string{"format"},
	)

	return r
}

// RecordLoad records the outcome of a successful load
func (r *Registry) RecordLoad(sections, nodes, edges int, duration time.Duration) {
	r.SectionsLoaded.Set(float64(sections))
	r.NodesLoaded.Set(float64(nodes))
	r.EdgesLoaded.Set(float64(edges))
	r.LoadDuration.Observe(duration.Seconds())
}

// RecordLoadError counts a failed load by error kind
func (r *Registry) RecordLoadError(kind string) {
	r.LoadErrors.WithLabelValues(kind).Inc()
}

// RecordTraversal records one section's traversal outcome
func (r *Registry) RecordTraversal(section string, paths int, duration time.Duration) {
	r.PathsEnumerated.WithLabelValues(section).Add(float64(paths))
	r.TraversalDuration.WithLabelValues(section).Observe(duration.Seconds())
}

// RecordInvariantViolation counts a traversal defect
func (r *Registry) RecordInvariantViolation() {
	r.InvariantViolations.Inc()
}

// RecordExport counts records written in the given format
func (r *Registry) RecordExport(format string, records int) {
	r.RecordsExported.WithLabelValues(format).Add(float64(records))
}

// Gather exposes the underlying prometheus registry for scraping or tests
func (r *Registry) Gather() prometheus.Gatherer {
	return r.registry
}
