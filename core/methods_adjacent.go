// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, PredecessorIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs() and PredecessorIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns all edges leaving id: outgoing edges in a directed graph,
// incident edges in an undirected graph (self-loops appear once).
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("core: Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e == nil {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable from id over a
// single edge, sorted lexicographically ascending.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d + k log k).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("core: NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// PredecessorIDs returns the unique IDs u with an edge u→id, sorted lex asc.
// For undirected graphs it equals NeighborIDs.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(V) over adjacency rows.
func (g *Graph) PredecessorIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("core: PredecessorIDs(%q): %w", id, ErrVertexNotFound)
	}

	var out []string
	for from, row := range g.adjacencyList {
		if len(row[id]) > 0 {
			out = append(out, from)
		}
	}
	sort.Strings(out)

	return out, nil
}

// ensureAdjacency makes sure adjacencyList[from][to] exists. Caller holds muEdgeAdj.
// AddVertex calls it with from == to to bootstrap the row and the loop bucket.
func ensureAdjacency(g *Graph, from, to string) {
	row, ok := g.adjacencyList[from]
	if !ok {
		row = make(map[string]map[string]struct{})
		g.adjacencyList[from] = row
	}
	if _, ok = row[to]; !ok {
		row[to] = make(map[string]struct{})
	}
}

// removeAdjacency unlinks e (and its undirected mirror), dropping empty
// buckets. Caller holds muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	if bucket, ok := g.adjacencyList[e.From][e.To]; ok {
		delete(bucket, e.ID)
		if len(bucket) == 0 && e.From != e.To {
			delete(g.adjacencyList[e.From], e.To)
		}
	}
	if e.Directed || e.From == e.To {
		return
	}
	if bucket, ok := g.adjacencyList[e.To][e.From]; ok {
		delete(bucket, e.ID)
		if len(bucket) == 0 {
			delete(g.adjacencyList[e.To], e.From)
		}
	}
}
