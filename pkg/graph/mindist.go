package graph

import "math"

// NoEdgeDistance is returned by MinDist when no direct edge connects the
// queried nodes. It is a designated sentinel, never a measured distance;
// callers compare against it explicitly.
const NoEdgeDistance = math.MaxFloat64

// MinDist returns the smallest distance over the direct edges between p
// and q, or NoEdgeDistance when none exists. Parallel edges are all
// considered; adjacency through an intermediate node is not. Since edges
// are undirected, MinDist(p, q) == MinDist(q, p).
func MinDist(g Graph, p, q int) float64 {
	distance := NoEdgeDistance
	iter := g.CreateEdgeExplorer().SetBaseNode(p)
	for iter.Next() {
		if iter.AdjNode() == q && iter.Distance() < distance {
			distance = iter.Distance()
		}
	}
	return distance
}
