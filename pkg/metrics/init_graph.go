package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadgraph_nodes_total",
			Help: "Number of nodes in the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadgraph_edges_total",
			Help: "Number of edges in the loaded graph",
		},
	)

	r.GraphEdgeRefsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadgraph_edge_refs_total",
			Help: "Number of edges carrying an external reference",
		},
	)

	r.RefMapResizesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "roadgraph_refmap_resizes_total",
			Help: "Times the edge-reference map backing store has grown",
		},
	)
}
