package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-roadgraph/pkg/graph"
	"github.com/dd0wney/cluso-roadgraph/pkg/validation"
)

// snapshot is the YAML wire format of a road-graph dump.
type snapshot struct {
	Nodes []snapshotNode `yaml:"nodes"`
	Edges []snapshotEdge `yaml:"edges"`
	// Validation optionally embeds the check configuration alongside the
	// data; command-line flags override it.
	Validation *validation.Config `yaml:"validation"`
}

type snapshotNode struct {
	ID  int     `yaml:"id"`
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

type snapshotEdge struct {
	From     int     `yaml:"from"`
	To       int     `yaml:"to"`
	Distance float64 `yaml:"distance"`
	// Ref is an optional external reference, e.g. the source OSM way ID.
	Ref *int64 `yaml:"ref,omitempty"`
}

func loadSnapshot(path string) (*snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

func buildGraph(snap *snapshot) (*graph.RoadGraph, error) {
	g := graph.NewRoadGraphWithCapacity(len(snap.Nodes), len(snap.Edges))
	na := g.NodeAccess()

	for _, n := range snap.Nodes {
		if n.ID < 0 {
			return nil, fmt.Errorf("node %d: negative ID", n.ID)
		}
		na.SetNode(n.ID, n.Lat, n.Lon)
	}

	for i, e := range snap.Edges {
		h, err := g.Edge(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if _, err := h.SetDistance(e.Distance); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if e.Ref != nil {
			if _, err := h.SetRef(*e.Ref); err != nil {
				return nil, fmt.Errorf("edge %d: %w", i, err)
			}
		}
	}

	return g, nil
}
