package morph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmorph/core"
)

// index is an immutable dense snapshot of a core.Graph. Vertices are
// numbered 0..n-1 in core.Graph.Vertices() order (lexicographic IDs), so
// every index-order loop in the search is deterministic.
type index struct {
	g        *core.Graph
	directed bool
	ids      []string
	pos      map[string]int
	verts    []*core.Vertex

	// succ[u][v] is the edge u→v (mirrored both ways for undirected graphs).
	succ []map[int]*core.Edge

	// out/in are sorted neighbour lists without self-loops. For undirected
	// graphs in aliases out.
	out [][]int
	in  [][]int

	// adj is the sorted union of out and in, used by the vertex order.
	adj [][]int

	edgeCount int
}

// newIndex snapshots g. It rejects nil graphs and graphs that currently hold
// parallel edges: the search compares edge presence per ordered pair.
func newIndex(g *core.Graph) (*index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.HasParallelEdges() {
		return nil, ErrMultigraph
	}

	ids := g.Vertices()
	n := len(ids)
	x := &index{
		g:         g,
		directed:  g.Directed(),
		ids:       ids,
		pos:       make(map[string]int, n),
		verts:     make([]*core.Vertex, n),
		succ:      make([]map[int]*core.Edge, n),
		out:       make([][]int, n),
		edgeCount: g.EdgeCount(),
	}
	for i, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			// Concurrent removal between Vertices() and Vertex().
			return nil, fmt.Errorf("morph: snapshot: %w", err)
		}
		cp := *v
		x.pos[id] = i
		x.verts[i] = &cp
		x.succ[i] = make(map[int]*core.Edge)
	}

	if x.directed {
		x.in = make([][]int, n)
	} else {
		x.in = x.out
	}

	for _, e := range g.Edges() {
		u, okU := x.pos[e.From]
		v, okV := x.pos[e.To]
		if !okU || !okV {
			return nil, fmt.Errorf("morph: snapshot edge %s: %w", e.ID, core.ErrVertexNotFound)
		}
		x.succ[u][v] = e
		if u == v {
			continue
		}
		x.out[u] = append(x.out[u], v)
		if x.directed {
			x.in[v] = append(x.in[v], u)
		} else {
			x.succ[v][u] = e
			x.out[v] = append(x.out[v], u)
		}
	}

	x.adj = make([][]int, n)
	for i := 0; i < n; i++ {
		sort.Ints(x.out[i])
		if x.directed {
			sort.Ints(x.in[i])
			x.adj[i] = mergeUnique(x.out[i], x.in[i])
		} else {
			x.adj[i] = x.out[i]
		}
	}

	return x, nil
}

// n returns the vertex count.
func (x *index) n() int { return len(x.ids) }

// edge returns the edge u→v or nil.
func (x *index) edge(u, v int) *core.Edge { return x.succ[u][v] }

// degree is the neighbour count used to rank vertices.
func (x *index) degree(v int) int {
	if x.directed {
		return len(x.out[v]) + len(x.in[v])
	}
	return len(x.out[v])
}

// lookup resolves a vertex ID to its dense index.
func (x *index) lookup(id string) (int, bool) {
	i, ok := x.pos[id]
	return i, ok
}

// mergeUnique merges two sorted int slices, dropping duplicates.
func mergeUnique(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var v int
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			v = a[i]
			i++
		case i >= len(a) || b[j] < a[i]:
			v = b[j]
			j++
		default:
			v = a[i]
			i++
			j++
		}
		if len(out) == 0 || out[len(out)-1] != v {
			out = append(out, v)
		}
	}

	return out
}
