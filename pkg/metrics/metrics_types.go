package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for a run of the toolkit
type Registry struct {
	// Load metrics
	SectionsLoaded prometheus.Gauge
	NodesLoaded    prometheus.Gauge
	EdgesLoaded    prometheus.Gauge
	LoadDuration   prometheus.Histogram
	LoadErrors     *prometheus.CounterVec

	// Traversal metrics
	PathsEnumerated     *prometheus.CounterVec
	TraversalDuration   *prometheus.HistogramVec
	InvariantViolations prometheus.Counter

	// Export metrics
	RecordsExported *prometheus.CounterVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the process-wide registry, creating it on first use
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
