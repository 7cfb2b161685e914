package graph

import "github.com/dd0wney/cluso-roadgraph/pkg/edgekey"

// roadExplorer implements EdgeExplorer over a RoadGraph. Each SetBaseNode
// call returns an independent single-pass iterator.
type roadExplorer struct {
	g *RoadGraph
}

func (e roadExplorer) SetBaseNode(node int) EdgeIterator {
	var incident []int64
	if node >= 0 && node < len(e.g.adjacency) {
		incident = e.g.adjacency[node]
	}
	return &roadIterator{g: e.g, base: node, incident: incident, pos: -1}
}

// roadIterator walks one node's incident edge keys, forward only.
type roadIterator struct {
	g        *RoadGraph
	base     int
	incident []int64
	pos      int
}

func (it *roadIterator) Next() bool {
	it.pos++
	return it.pos < len(it.incident)
}

func (it *roadIterator) EdgeID() int {
	id, _ := edgekey.Decode(it.incident[it.pos])
	return int(id)
}

func (it *roadIterator) BaseNode() int {
	return it.base
}

func (it *roadIterator) AdjNode() int {
	id, reverse := edgekey.Decode(it.incident[it.pos])
	rec := it.g.edges[id]
	if reverse {
		return rec.nodeA
	}
	return rec.nodeB
}

func (it *roadIterator) Distance() float64 {
	id, _ := edgekey.Decode(it.incident[it.pos])
	return it.g.edges[id].distance
}
