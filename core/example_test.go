package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// ExampleGraph builds a labelled molecule-like graph and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("c1", core.WithVertexLabel("C"))
	_ = g.AddVertex("o1", core.WithVertexLabel("O"))
	_ = g.AddVertex("o2", core.WithVertexLabel("O"))
	_, _ = g.AddEdge("c1", "o1", 0, core.WithEdgeLabel("="))
	_, _ = g.AddEdge("c1", "o2", 0, core.WithEdgeLabel("-"))

	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s %s%s%s\n", e.ID, e.From, e.Label, e.To)
	}
	nbs, _ := g.NeighborIDs("c1")
	fmt.Println(nbs)
	// Output:
	// [c1 o1 o2]
	// e1 c1=o1
	// e2 c1-o2
	// [o1 o2]
}

// ExampleInducedSubgraph keeps a vertex subset and every edge inside it.
func ExampleInducedSubgraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 0)
	_, _ = g.AddEdge("b", "c", 0)
	_, _ = g.AddEdge("c", "a", 0)

	sub := core.InducedSubgraph(g, map[string]bool{"a": true, "b": true})
	fmt.Println(sub.Vertices(), sub.EdgeCount())
	// Output:
	// [a b] 1
}
