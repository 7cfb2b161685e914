// Package graph defines the read-only traversal protocol that routing and
// validation components consume, and provides RoadGraph, an in-memory
// undirected road-network graph implementing it.
package graph

// Graph is the read-only access contract for a road-network graph. Nodes
// are dense 0-based integers; edges are undirected but traversable in both
// directions, and parallel edges between the same node pair are distinct.
type Graph interface {
	// NodeCount returns the number of nodes. Node IDs are 0..NodeCount-1.
	NodeCount() int
	// EdgeCount returns the number of edges. Edge IDs are 0..EdgeCount-1.
	EdgeCount() int
	// NodeAccess returns the coordinate accessor for this graph.
	NodeAccess() NodeAccess
	// CreateEdgeExplorer returns a fresh explorer. Each call yields an
	// independent traversal; explorers are not safe for shared use.
	CreateEdgeExplorer() EdgeExplorer
	// EdgeDistance returns the stored distance of an edge in meters.
	EdgeDistance(edgeID int) (float64, error)
}

// NodeAccess reads and writes node coordinates in degrees.
type NodeAccess interface {
	Latitude(node int) float64
	Longitude(node int) float64
	// SetNode stores the coordinates for node, growing the node set so
	// that node becomes a valid ID. Coordinates are stored as given; range
	// checking is the validator's job, not the store's.
	SetNode(node int, lat, lon float64)
}

// EdgeExplorer creates iterators over the edges incident to a node.
type EdgeExplorer interface {
	// SetBaseNode starts a new traversal of the edges touching node. The
	// returned iterator is single-pass; call SetBaseNode again for a fresh
	// traversal.
	SetBaseNode(node int) EdgeIterator
}

// EdgeIterator walks the edges incident to a base node, one Next call per
// edge. Every edge touching the base node appears exactly once regardless
// of its stored orientation; parallel edges each appear as distinct
// entries; nodes reachable only through an intermediate node never appear.
type EdgeIterator interface {
	// Next advances to the next incident edge and reports whether one
	// exists. The accessors below are only valid after Next returned true.
	Next() bool
	// EdgeID returns the ID of the current edge.
	EdgeID() int
	// BaseNode returns the node this traversal started from.
	BaseNode() int
	// AdjNode returns the endpoint opposite the base node. For a self-loop
	// this is the base node itself.
	AdjNode() int
	// Distance returns the current edge's distance in meters.
	Distance() float64
}
