// Package metrics exposes Prometheus metrics for the road-graph tooling.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-roadgraph/pkg/graph"
	"github.com/dd0wney/cluso-roadgraph/pkg/validation"
)

// UpdateGraphSize sets the graph size gauges from a stats snapshot
func (r *Registry) UpdateGraphSize(stats graph.Stats) {
	r.GraphNodesTotal.Set(float64(stats.NodeCount))
	r.GraphEdgesTotal.Set(float64(stats.EdgeCount))
	r.GraphEdgeRefsTotal.Set(float64(stats.RefCount))
	r.RefMapResizesTotal.Set(float64(stats.RefResizes))
}

// RecordValidation records the outcome of one validation run
func (r *Registry) RecordValidation(report *validation.Report) {
	result := "ok"
	if !report.OK() {
		result = "problems"
	}
	r.ValidationRunsTotal.WithLabelValues(result).Inc()
	r.ValidationDuration.Observe(report.Duration.Seconds())
	for check, count := range report.Counts {
		r.ValidationProblemsTotal.WithLabelValues(check).Add(float64(count))
	}
}

// RecordValidationError records a validation run that failed on graph access
func (r *Registry) RecordValidationError(duration time.Duration) {
	r.ValidationRunsTotal.WithLabelValues("error").Inc()
	r.ValidationDuration.Observe(duration.Seconds())
}

// Handler returns an HTTP handler serving this registry in the Prometheus
// text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
