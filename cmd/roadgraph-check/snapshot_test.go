package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dd0wney/cluso-roadgraph/pkg/graph"
	"github.com/dd0wney/cluso-roadgraph/pkg/validation"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	return path
}

// TestLoadSnapshot_RoundTrip tests loading and building a small graph
func TestLoadSnapshot_RoundTrip(t *testing.T) {
	path := writeSnapshot(t, `
nodes:
  - {id: 0, lat: 48.8566, lon: 2.3522}
  - {id: 1, lat: 51.5074, lon: -0.1278}
edges:
  - {from: 0, to: 1, distance: 343000, ref: 123456}
validation:
  check_endpoints: true
`)

	snap, err := loadSnapshot(path)
	if err != nil {
		t.Fatalf("loadSnapshot returned error: %v", err)
	}
	if len(snap.Nodes) != 2 || len(snap.Edges) != 1 {
		t.Fatalf("snapshot = %d nodes, %d edges, want 2 and 1", len(snap.Nodes), len(snap.Edges))
	}
	if snap.Validation == nil || !snap.Validation.CheckEndpoints {
		t.Error("embedded validation config not decoded")
	}

	g, err := buildGraph(snap)
	if err != nil {
		t.Fatalf("buildGraph returned error: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("graph = %d nodes, %d edges, want 2 and 1", g.NodeCount(), g.EdgeCount())
	}
	if d := graph.MinDist(g, 0, 1); d != 343000 {
		t.Errorf("MinDist(0, 1) = %f, want 343000", d)
	}
	ref, ok := g.EdgeRef(0)
	if !ok || ref != 123456 {
		t.Errorf("EdgeRef(0) = (%d, %v), want (123456, true)", ref, ok)
	}

	if len(validation.GetProblems(g)) != 0 {
		t.Error("loaded graph should validate clean")
	}
}

// TestLoadSnapshot_Errors tests the failure paths
func TestLoadSnapshot_Errors(t *testing.T) {
	if _, err := loadSnapshot(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}

	path := writeSnapshot(t, "nodes: [not a node]")
	if _, err := loadSnapshot(path); err == nil {
		t.Error("malformed YAML should fail to decode")
	}
}

// TestBuildGraph_RejectsBadData tests snapshot-level validation
func TestBuildGraph_RejectsBadData(t *testing.T) {
	snap := &snapshot{
		Nodes: []snapshotNode{{ID: -1, Lat: 0, Lon: 0}},
	}
	if _, err := buildGraph(snap); err == nil {
		t.Error("negative node ID should be rejected")
	}

	snap = &snapshot{
		Nodes: []snapshotNode{{ID: 0}, {ID: 1}},
		Edges: []snapshotEdge{{From: 0, To: 1, Distance: -10}},
	}
	if _, err := buildGraph(snap); err == nil {
		t.Error("negative distance should be rejected")
	}
}
