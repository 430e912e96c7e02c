// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only policy getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Flags are immutable after NewGraph; getters still lock for a consistent view.

package core

// Directed reports whether edges of this graph are one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted.
// This is a policy flag; use HasParallelEdges to learn whether any exist.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// HasParallelEdges reports whether at least one ordered pair (from,to)
// currently carries more than one edge.
//
// Complexity: O(V + A) where A is the number of adjacency buckets.
func (g *Graph) HasParallelEdges() bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if !g.allowMulti {
		return false
	}
	for _, row := range g.adjacencyList {
		for _, bucket := range row {
			if len(bucket) > 1 {
				return true
			}
		}
	}

	return false
}

// Stats produces a deterministic, read-only snapshot of configuration flags
// and catalog sizes.
//
// Locks are taken phase by phase (vertices, then edges) and never held
// together, so the snapshot is consistent per phase.
// Complexity: O(E) for the loop count.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
