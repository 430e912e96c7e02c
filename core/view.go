// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex/edge IDs, labels and directedness.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Label: v.Label, Metadata: v.Metadata}
			ensureAdjacency(out, id, id)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	// Carry the counter so AddEdge on the view never reuses a source ID.
	next := atomic.LoadUint64(&g.nextEdgeID)
	for eid, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			copyEdge(out, eid, e)
		}
	}
	g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&out.nextEdgeID, next)

	return out
}
