// File: types.go
// Role: Vertex, Edge and Graph types, graph/vertex/edge options, sentinel
//       errors and the NewGraph constructor.
// Determinism:
//   - Configuration flags are immutable after NewGraph.
// Concurrency:
//   - muVert guards vertices; muEdgeAdj guards edges and adjacency.
//   - When both are needed, muVert is taken first.

package core

import (
	"errors"
	"sync"
)

// Errors returned by Graph methods. Callers match them with errors.Is.
var (
	// ErrEmptyVertexID is returned for a vertex or endpoint with ID "".
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound is returned when a lookup names an unknown vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound is returned when a lookup names an unknown edge ID.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight rejects a non-zero weight on a graph built without WithWeighted.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed rejects u→u unless the graph was built WithLoops.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed rejects a second u→v edge unless the graph was built WithMultiEdges.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of a Graph. Its Label is an opaque caller-defined tag
// (an element symbol, a rule-side marker) that morphism predicates may
// compare; core never interprets it.
type Vertex struct {
	ID       string
	Label    string
	Metadata map[string]interface{} // shared, not deep-copied, by Clone
}

// Edge connects From to To. IDs are assigned by AddEdge as "e1", "e2" and
// so on. Directed always equals the owning graph's Directed().
type Edge struct {
	ID       string
	From     string
	To       string
	Label    string // bond order, rule marker, or any opaque tag
	Weight   int64  // zero unless the graph is weighted
	Directed bool
}

// GraphOption sets a construction-time flag of a Graph.
type GraphOption func(g *Graph)

// WithDirected makes every edge of the graph one-way when directed is true.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted lets AddEdge accept non-zero weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges lets AddEdge store more than one edge per ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops lets AddEdge accept u→u.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption adjusts a vertex inside AddVertex.
type VertexOption func(*Vertex)

// WithVertexLabel sets the opaque label of the vertex.
func WithVertexLabel(label string) VertexOption {
	return func(v *Vertex) { v.Label = label }
}

// EdgeOption adjusts an edge inside AddEdge.
type EdgeOption func(*Edge)

// WithEdgeLabel sets the opaque label of the edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is a labelled, optionally directed or weighted graph safe for
// concurrent use. It is the pattern and target type of package morph.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed, weighted     bool
	allowMulti, allowLoops bool

	nextEdgeID uint64 // atomic; last issued edge number
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacencyList[from][to] is the set of edge IDs running from→to.
	// An undirected edge also appears under [to][from].
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph returns an empty graph. Without options it is undirected and
// unweighted, and rejects loops and parallel edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is what Stats reports: the flags plus current sizes.
type GraphStats struct {
	Directed    bool
	Weighted    bool
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}
