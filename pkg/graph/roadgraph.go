package graph

import (
	"fmt"
	"math"

	"github.com/dd0wney/cluso-roadgraph/pkg/coll"
	"github.com/dd0wney/cluso-roadgraph/pkg/edgekey"
)

// edgeRecord is one slot in the edge arena. Orientation is storage detail
// only: iteration returns the opposite endpoint whichever field it occupies.
type edgeRecord struct {
	nodeA    int
	nodeB    int
	distance float64
}

// RoadGraph is an in-memory undirected road-network graph with dense
// 0-based node IDs, per-node coordinates, and an edge arena that permits
// parallel edges. It implements Graph.
//
// RoadGraph is not safe for concurrent mutation; concurrent readers are
// fine once construction is done.
type RoadGraph struct {
	lats  []float64
	lons  []float64
	edges []edgeRecord
	// adjacency holds direction-aware edge keys per node: the direction
	// bit records whether the owning node is the record's nodeB, so
	// iteration finds the opposite endpoint without comparing IDs.
	adjacency [][]int64
	refs      *coll.IntLongMap
}

// NewRoadGraph creates an empty graph.
func NewRoadGraph() *RoadGraph {
	return &RoadGraph{
		refs: coll.NewIntLongMap(),
	}
}

// NewRoadGraphWithCapacity creates an empty graph pre-sized for the given
// node and edge counts.
func NewRoadGraphWithCapacity(nodes, edges int) *RoadGraph {
	return &RoadGraph{
		lats:      make([]float64, 0, nodes),
		lons:      make([]float64, 0, nodes),
		edges:     make([]edgeRecord, 0, edges),
		adjacency: make([][]int64, 0, nodes),
		refs:      coll.NewIntLongMapWithCapacity(edges),
	}
}

// NodeCount returns the number of nodes.
func (g *RoadGraph) NodeCount() int {
	return len(g.lats)
}

// EdgeCount returns the number of edges.
func (g *RoadGraph) EdgeCount() int {
	return len(g.edges)
}

// NodeAccess returns the coordinate accessor for this graph.
func (g *RoadGraph) NodeAccess() NodeAccess {
	return nodeAccess{g: g}
}

// CreateEdgeExplorer returns a fresh explorer over this graph.
func (g *RoadGraph) CreateEdgeExplorer() EdgeExplorer {
	return roadExplorer{g: g}
}

// EdgeDistance returns the stored distance of an edge in meters.
func (g *RoadGraph) EdgeDistance(edgeID int) (float64, error) {
	if edgeID < 0 || edgeID >= len(g.edges) {
		return 0, fmt.Errorf("edge %d: %w", edgeID, ErrEdgeNotFound)
	}
	return g.edges[edgeID].distance, nil
}

// ensureNode grows the node set so that node is a valid ID. New nodes get
// zero coordinates until SetNode is called for them.
func (g *RoadGraph) ensureNode(node int) {
	for len(g.lats) <= node {
		g.lats = append(g.lats, 0)
		g.lons = append(g.lons, 0)
		g.adjacency = append(g.adjacency, nil)
	}
}

// Edge adds an undirected edge between a and b with distance 0 and returns
// a handle for setting its attributes. Both endpoints become valid node
// IDs if they were not already.
func (g *RoadGraph) Edge(a, b int) (*EdgeHandle, error) {
	if a < 0 {
		return nil, fmt.Errorf("edge endpoint %d: %w", a, ErrNodeOutOfRange)
	}
	if b < 0 {
		return nil, fmt.Errorf("edge endpoint %d: %w", b, ErrNodeOutOfRange)
	}

	g.ensureNode(a)
	g.ensureNode(b)

	edgeID := len(g.edges)
	g.edges = append(g.edges, edgeRecord{nodeA: a, nodeB: b})
	g.adjacency[a] = append(g.adjacency[a], edgekey.MustEncode(int64(edgeID), false))
	if b != a {
		g.adjacency[b] = append(g.adjacency[b], edgekey.MustEncode(int64(edgeID), true))
	}

	return &EdgeHandle{g: g, id: edgeID}, nil
}

// EdgeHandle refers to one edge of a RoadGraph.
type EdgeHandle struct {
	g  *RoadGraph
	id int
}

// ID returns the edge's ID.
func (h *EdgeHandle) ID() int {
	return h.id
}

// SetDistance stores the edge's distance in meters. Negative, NaN and
// infinite distances are rejected.
func (h *EdgeHandle) SetDistance(distance float64) (*EdgeHandle, error) {
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return h, fmt.Errorf("edge %d distance %f: %w", h.id, distance, ErrBadDistance)
	}
	h.g.edges[h.id].distance = distance
	return h, nil
}

// SetRef attaches an external reference (e.g. the source OSM way ID) to
// the edge, stored in a primitive map keyed by edge ID.
func (h *EdgeHandle) SetRef(ref int64) (*EdgeHandle, error) {
	if h.id > math.MaxInt32 {
		return h, fmt.Errorf("edge %d: %w", h.id, ErrEdgeNotFound)
	}
	if err := h.g.refs.Put(int32(h.id), ref); err != nil {
		return h, fmt.Errorf("store ref for edge %d: %w", h.id, err)
	}
	return h, nil
}

// EdgeRef returns the external reference attached to an edge, if any.
func (g *RoadGraph) EdgeRef(edgeID int) (int64, bool) {
	if edgeID < 0 || edgeID > math.MaxInt32 {
		return 0, false
	}
	if !g.refs.ContainsKey(int32(edgeID)) {
		return 0, false
	}
	return g.refs.Get(int32(edgeID)), true
}

// Stats is a size snapshot of a RoadGraph.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	RefCount   int
	RefResizes uint64
}

// Stats returns the current graph size, for logging and metrics.
func (g *RoadGraph) Stats() Stats {
	return Stats{
		NodeCount:  g.NodeCount(),
		EdgeCount:  g.EdgeCount(),
		RefCount:   g.refs.Len(),
		RefResizes: g.refs.Resizes(),
	}
}

// nodeAccess implements NodeAccess over a RoadGraph.
type nodeAccess struct {
	g *RoadGraph
}

func (na nodeAccess) Latitude(node int) float64 {
	return na.g.lats[node]
}

func (na nodeAccess) Longitude(node int) float64 {
	return na.g.lons[node]
}

func (na nodeAccess) SetNode(node int, lat, lon float64) {
	if node < 0 {
		panic(fmt.Sprintf("graph: SetNode(%d): negative node", node))
	}
	na.g.ensureNode(node)
	na.g.lats[node] = lat
	na.g.lons[node] = lon
}
