package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the road-graph tooling
type Registry struct {
	// Graph size metrics
	GraphNodesTotal    prometheus.Gauge
	GraphEdgesTotal    prometheus.Gauge
	GraphEdgeRefsTotal prometheus.Gauge
	RefMapResizesTotal prometheus.Gauge

	// Validation metrics
	ValidationRunsTotal     *prometheus.CounterVec
	ValidationProblemsTotal *prometheus.CounterVec
	ValidationDuration      prometheus.Histogram

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGraphMetrics()
	r.initValidationMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
