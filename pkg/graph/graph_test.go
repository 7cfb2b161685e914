package graph

import (
	"errors"
	"math"
	"testing"
)

// mustEdge adds an edge with a distance or fails the test
func mustEdge(t *testing.T, g *RoadGraph, a, b int, distance float64) *EdgeHandle {
	t.Helper()
	h, err := g.Edge(a, b)
	if err != nil {
		t.Fatalf("Edge(%d, %d) returned error: %v", a, b, err)
	}
	if _, err := h.SetDistance(distance); err != nil {
		t.Fatalf("SetDistance(%f) returned error: %v", distance, err)
	}
	return h
}

// TestRoadGraph_NodeAccess tests coordinate storage
func TestRoadGraph_NodeAccess(t *testing.T) {
	g := NewRoadGraph()
	na := g.NodeAccess()

	na.SetNode(0, 48.8566, 2.3522)
	na.SetNode(1, 51.5074, -0.1278)

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if got := na.Latitude(0); got != 48.8566 {
		t.Errorf("Latitude(0) = %f, want 48.8566", got)
	}
	if got := na.Longitude(1); got != -0.1278 {
		t.Errorf("Longitude(1) = %f, want -0.1278", got)
	}

	// Overwriting coordinates must not add nodes
	na.SetNode(0, 45.0, 0.0)
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() after overwrite = %d, want 2", g.NodeCount())
	}
}

// TestRoadGraph_EdgeErrors tests construction error paths
func TestRoadGraph_EdgeErrors(t *testing.T) {
	g := NewRoadGraph()

	if _, err := g.Edge(-1, 0); !errors.Is(err, ErrNodeOutOfRange) {
		t.Errorf("Edge(-1, 0) error = %v, want ErrNodeOutOfRange", err)
	}
	if _, err := g.Edge(0, -2); !errors.Is(err, ErrNodeOutOfRange) {
		t.Errorf("Edge(0, -2) error = %v, want ErrNodeOutOfRange", err)
	}

	h, err := g.Edge(0, 1)
	if err != nil {
		t.Fatalf("Edge(0, 1) returned error: %v", err)
	}
	if _, err := h.SetDistance(-5); !errors.Is(err, ErrBadDistance) {
		t.Errorf("SetDistance(-5) error = %v, want ErrBadDistance", err)
	}
	if _, err := h.SetDistance(math.NaN()); !errors.Is(err, ErrBadDistance) {
		t.Errorf("SetDistance(NaN) error = %v, want ErrBadDistance", err)
	}
	if _, err := h.SetDistance(math.Inf(1)); !errors.Is(err, ErrBadDistance) {
		t.Errorf("SetDistance(+Inf) error = %v, want ErrBadDistance", err)
	}

	if _, err := g.EdgeDistance(99); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("EdgeDistance(99) error = %v, want ErrEdgeNotFound", err)
	}
}

// TestRoadGraph_IteratorVisitsBothOrientations tests that an edge appears
// from both endpoints with the correct opposite node
func TestRoadGraph_IteratorVisitsBothOrientations(t *testing.T) {
	g := NewRoadGraph()
	mustEdge(t, g, 0, 1, 100)

	iter := g.CreateEdgeExplorer().SetBaseNode(0)
	if !iter.Next() {
		t.Fatal("iterator from node 0 should yield one edge")
	}
	if iter.BaseNode() != 0 || iter.AdjNode() != 1 {
		t.Errorf("from node 0: base=%d adj=%d, want base=0 adj=1", iter.BaseNode(), iter.AdjNode())
	}
	if iter.Distance() != 100 {
		t.Errorf("Distance() = %f, want 100", iter.Distance())
	}
	if iter.Next() {
		t.Error("iterator from node 0 should be exhausted after one edge")
	}

	iter = g.CreateEdgeExplorer().SetBaseNode(1)
	if !iter.Next() {
		t.Fatal("iterator from node 1 should yield one edge")
	}
	if iter.AdjNode() != 0 {
		t.Errorf("from node 1: adj=%d, want 0", iter.AdjNode())
	}
}

// TestRoadGraph_ParallelEdgesAreDistinct tests that parallel edges each
// appear as separate entries with their own IDs
func TestRoadGraph_ParallelEdgesAreDistinct(t *testing.T) {
	g := NewRoadGraph()
	h1 := mustEdge(t, g, 0, 1, 250)
	h2 := mustEdge(t, g, 0, 1, 80)

	if h1.ID() == h2.ID() {
		t.Fatalf("parallel edges share ID %d", h1.ID())
	}

	seen := make(map[int]float64)
	iter := g.CreateEdgeExplorer().SetBaseNode(0)
	for iter.Next() {
		seen[iter.EdgeID()] = iter.Distance()
	}
	if len(seen) != 2 {
		t.Fatalf("iterator saw %d edges, want 2", len(seen))
	}
	if seen[h1.ID()] != 250 || seen[h2.ID()] != 80 {
		t.Errorf("distances = %v, want {%d:250, %d:80}", seen, h1.ID(), h2.ID())
	}
}

// TestRoadGraph_ExplorerIsReenterable tests that a new traversal can be
// started after one has been consumed
func TestRoadGraph_ExplorerIsReenterable(t *testing.T) {
	g := NewRoadGraph()
	mustEdge(t, g, 0, 1, 10)
	mustEdge(t, g, 0, 2, 20)

	explorer := g.CreateEdgeExplorer()

	first := 0
	iter := explorer.SetBaseNode(0)
	for iter.Next() {
		first++
	}

	second := 0
	iter = explorer.SetBaseNode(0)
	for iter.Next() {
		second++
	}

	if first != 2 || second != 2 {
		t.Errorf("traversal counts = (%d, %d), want (2, 2)", first, second)
	}
}

// TestMinDist_SingleEdge tests the direct distance in both directions
func TestMinDist_SingleEdge(t *testing.T) {
	g := NewRoadGraph()
	na := g.NodeAccess()
	na.SetNode(0, 45.0, 0.0)
	na.SetNode(1, 46.0, 1.0)
	mustEdge(t, g, 0, 1, 100)

	if d := MinDist(g, 0, 1); d != 100 {
		t.Errorf("MinDist(0, 1) = %f, want 100", d)
	}
	if d := MinDist(g, 1, 0); d != 100 {
		t.Errorf("MinDist(1, 0) = %f, want 100", d)
	}
}

// TestMinDist_ParallelEdges tests that the smallest parallel edge wins
func TestMinDist_ParallelEdges(t *testing.T) {
	g := NewRoadGraph()
	na := g.NodeAccess()
	na.SetNode(0, 45.0, 0.0)
	na.SetNode(1, 46.0, 1.0)
	mustEdge(t, g, 0, 1, 250)
	mustEdge(t, g, 0, 1, 80)

	if d := MinDist(g, 0, 1); d != 80 {
		t.Errorf("MinDist(0, 1) = %f, want 80 (smallest parallel edge)", d)
	}
}

// TestMinDist_IgnoresIndirectAdjacency tests that reachability through an
// intermediate node is never reported as direct adjacency
func TestMinDist_IgnoresIndirectAdjacency(t *testing.T) {
	g := NewRoadGraph()
	na := g.NodeAccess()
	na.SetNode(0, 45.0, 0.0)
	na.SetNode(1, 46.0, 1.0)
	na.SetNode(2, 47.0, 2.0)
	mustEdge(t, g, 0, 2, 30)
	mustEdge(t, g, 1, 2, 40)

	if d := MinDist(g, 0, 1); d != NoEdgeDistance {
		t.Errorf("MinDist(0, 1) = %f, want NoEdgeDistance (no direct edge)", d)
	}
}

// TestMinDist_NoEdges tests the sentinel on an edgeless graph
func TestMinDist_NoEdges(t *testing.T) {
	g := NewRoadGraph()
	na := g.NodeAccess()
	na.SetNode(0, 45.0, 0.0)
	na.SetNode(1, 46.0, 1.0)

	if d := MinDist(g, 0, 1); d != NoEdgeDistance {
		t.Errorf("MinDist(0, 1) = %f, want NoEdgeDistance", d)
	}
}

// TestRoadGraph_SelfLoop tests that a self-loop appears once with the base
// node as its adjacent node
func TestRoadGraph_SelfLoop(t *testing.T) {
	g := NewRoadGraph()
	mustEdge(t, g, 3, 3, 12)

	count := 0
	iter := g.CreateEdgeExplorer().SetBaseNode(3)
	for iter.Next() {
		count++
		if iter.AdjNode() != 3 {
			t.Errorf("self-loop AdjNode() = %d, want 3", iter.AdjNode())
		}
	}
	if count != 1 {
		t.Errorf("self-loop appeared %d times, want 1", count)
	}
}

// TestRoadGraph_EdgeRefs tests the external reference bookkeeping
func TestRoadGraph_EdgeRefs(t *testing.T) {
	g := NewRoadGraph()
	h := mustEdge(t, g, 0, 1, 50)

	if _, ok := g.EdgeRef(h.ID()); ok {
		t.Error("EdgeRef before SetRef should report absent")
	}

	if _, err := h.SetRef(0); err != nil {
		t.Fatalf("SetRef(0) returned error: %v", err)
	}
	ref, ok := g.EdgeRef(h.ID())
	if !ok {
		t.Fatal("EdgeRef after SetRef(0) should report present")
	}
	if ref != 0 {
		t.Errorf("EdgeRef = %d, want 0", ref)
	}

	if _, err := h.SetRef(987654321); err != nil {
		t.Fatalf("SetRef returned error: %v", err)
	}
	if ref, _ := g.EdgeRef(h.ID()); ref != 987654321 {
		t.Errorf("EdgeRef = %d, want 987654321", ref)
	}
}

// TestRoadGraph_Stats tests the size snapshot
func TestRoadGraph_Stats(t *testing.T) {
	g := NewRoadGraph()
	na := g.NodeAccess()
	na.SetNode(0, 1, 1)
	na.SetNode(1, 2, 2)
	na.SetNode(2, 3, 3)
	h := mustEdge(t, g, 0, 1, 5)
	if _, err := h.SetRef(42); err != nil {
		t.Fatalf("SetRef returned error: %v", err)
	}

	stats := g.Stats()
	if stats.NodeCount != 3 {
		t.Errorf("Stats.NodeCount = %d, want 3", stats.NodeCount)
	}
	if stats.EdgeCount != 1 {
		t.Errorf("Stats.EdgeCount = %d, want 1", stats.EdgeCount)
	}
	if stats.RefCount != 1 {
		t.Errorf("Stats.RefCount = %d, want 1", stats.RefCount)
	}
}

// TestRoadGraph_IteratorOnIsolatedNode tests traversal of a node with no
// incident edges
func TestRoadGraph_IteratorOnIsolatedNode(t *testing.T) {
	g := NewRoadGraph()
	g.NodeAccess().SetNode(0, 1, 1)

	iter := g.CreateEdgeExplorer().SetBaseNode(0)
	if iter.Next() {
		t.Error("iterator on isolated node should yield nothing")
	}

	// Unknown nodes traverse as empty rather than panicking
	iter = g.CreateEdgeExplorer().SetBaseNode(17)
	if iter.Next() {
		t.Error("iterator on unknown node should yield nothing")
	}
}
