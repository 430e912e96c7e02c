// File: methods_clone.go
// Role: CloneEmpty / Clone / Clear.
// Determinism:
//   - Clones preserve vertex IDs, labels, edge IDs and the edge ID counter.
// Concurrency:
//   - Read locks on the source; the clone is a fresh, unshared instance.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same flags and vertices (labels and
// Metadata references included) but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	out := NewGraph(g.options()...)

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Label: v.Label, Metadata: v.Metadata}
		ensureAdjacency(out, id, id)
	}

	return out
}

// Clone returns a deep copy of vertices, edges and adjacency. Metadata maps are
// shared with the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		copyEdge(out, eid, e)
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}

// Clear removes all vertices and edges but keeps configuration flags.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacencyList = make(map[string]map[string]map[string]struct{})
	atomic.StoreUint64(&g.nextEdgeID, 0)
}

// options reconstructs the GraphOption list that produced g's flags.
func (g *Graph) options() []GraphOption {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// copyEdge inserts a copy of e under eid into out, mirroring undirected edges.
// Caller owns out exclusively.
func copyEdge(out *Graph, eid string, e *Edge) {
	ne := *e
	out.edges[eid] = &ne
	ensureAdjacency(out, ne.From, ne.To)
	out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
	if !ne.Directed && ne.From != ne.To {
		ensureAdjacency(out, ne.To, ne.From)
		out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
	}
}
