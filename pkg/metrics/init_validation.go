package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initValidationMetrics() {
	r.ValidationRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadgraph_validation_runs_total",
			Help: "Total number of validation runs",
		},
		[]string{"result"}, // ok, problems, error
	)

	r.ValidationProblemsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadgraph_validation_problems_total",
			Help: "Total number of problems reported, by check",
		},
		[]string{"check"}, // latitude, longitude, distance, endpoint
	)

	r.ValidationDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "roadgraph_validation_duration_seconds",
			Help:    "Duration of validation runs in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}
