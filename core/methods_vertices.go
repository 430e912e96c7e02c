// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import (
	"fmt"
	"sort"
)

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex if missing and applies opts to it.
//
// Behavior highlights:
//   - Idempotent on the ID: adding an existing vertex keeps its edges;
//     options, if any, are re-applied (so a later WithVertexLabel relabels it).
//   - Initializes Metadata map to a non-nil value.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		v = &Vertex{ID: id, Metadata: make(map[string]interface{})}
		g.vertices[id] = v
	}
	for _, opt := range opts {
		opt(v)
	}
	if exists {
		return nil
	}

	// Bootstrap adjacency buckets so edge methods can rely on the row existing.
	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
// The returned pointer must be treated as read-only.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("core: Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return v, nil
}

// SetVertexLabel replaces the label of an existing vertex.
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetVertexLabel(id, label string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("core: SetVertexLabel(%q): %w", id, ErrVertexNotFound)
	}
	v.Label = label

	return nil
}

// RemoveVertex deletes a vertex and all incident edges.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E) for scanning the edge catalog.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("core: RemoveVertex(%q): %w", id, ErrVertexNotFound)
	}

	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacencyList, id)
	for _, row := range g.adjacencyList {
		delete(row, id)
	}

	return nil
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns loop-aware degree counts for id, read from the adjacency
// rows rather than the edge catalog. A directed self-loop counts once as in
// and once as out; an undirected one adds two to undirected.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)) undirected, O(V) directed.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	if id == "" {
		return 0, 0, 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, fmt.Errorf("core: Degree(%q): %w", id, ErrVertexNotFound)
	}

	if !g.directed {
		for to, set := range g.adjacencyList[id] {
			if to == id {
				undirected += 2 * len(set)
			} else {
				undirected += len(set)
			}
		}
		return 0, 0, undirected, nil
	}

	for _, set := range g.adjacencyList[id] {
		out += len(set)
	}
	for _, row := range g.adjacencyList {
		in += len(row[id])
	}

	return in, out, 0, nil
}
