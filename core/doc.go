// Package core provides a thread-safe in-memory labelled Graph with a minimal,
// composable API surface. It is the graph abstraction consumed by the morph
// search engine and by the builder fixtures.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Opaque vertex and edge labels (WithVertexLabel, WithEdgeLabel)
//   - Constant-time edge membership via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Labels are never interpreted by core: a chemistry layer may store element
// symbols and bond orders, a rule layer may store side markers. Equivalence
// is decided by caller-supplied predicates (see package morph).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error // O(1)
//	HasVertex(id string) bool                        // O(1)
//	Vertex(id string) (*Vertex, error)               // O(1)
//	SetVertexLabel(id, label string) error           // O(1)
//	RemoveVertex(id string) error                    // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) // O(1)
//	RemoveEdge(edgeID string) error                  // O(1)
//	HasEdge(from, to string) bool                    // O(1)
//	EdgesBetween(from, to string) []*Edge            // O(k log k)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//	PredecessorIDs(id string) ([]string, error)
//	Vertices() []string                              // sorted
//	Edges() []*Edge                                  // creation order
//	Degree(id string) (in, out, undirected int, err error)
//
//	// Cloning and views
//	CloneEmpty() *Graph
//	Clone() *Graph
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
