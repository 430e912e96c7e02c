package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmorph/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	// Undirected, unweighted, simple by default; tests override as needed.
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexIdempotentAndLabelled() {
	require := require.New(s.T())

	require.False(s.g.HasVertex("A"))
	require.NoError(s.g.AddVertex("A", core.WithVertexLabel("C")))
	require.True(s.g.HasVertex("A"))

	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount(), "re-adding must not duplicate")

	v, err := s.g.Vertex("A")
	require.NoError(err)
	require.Equal("C", v.Label, "re-adding without options keeps the label")
	require.NotNil(v.Metadata)

	require.NoError(s.g.AddVertex("A", core.WithVertexLabel("N")))
	v, _ = s.g.Vertex("A")
	require.Equal("N", v.Label, "options are re-applied")

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestVertexLookupErrors() {
	_, err := s.g.Vertex("missing")
	s.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Vertex("")
	s.ErrorIs(err, core.ErrEmptyVertexID)

	s.ErrorIs(s.g.SetVertexLabel("missing", "x"), core.ErrVertexNotFound)
	s.Require().NoError(s.g.AddVertex("B"))
	s.Require().NoError(s.g.SetVertexLabel("B", "O"))
	v, _ := s.g.Vertex("B")
	s.Equal("O", v.Label)
}

func (s *GraphSuite) TestAddEdgeMirrorsUndirected() {
	require := require.New(s.T())

	eid, err := s.g.AddEdge("A", "B", 0, core.WithEdgeLabel("double"))
	require.NoError(err)
	require.Equal("e1", eid)
	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge auto-adds endpoints")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected edges are mirrored")

	between := s.g.EdgesBetween("B", "A")
	require.Len(between, 1)
	require.Equal("double", between[0].Label)
	require.False(between[0].Directed)

	_, err = s.g.AddEdge("B", "A", 0)
	require.ErrorIs(err, core.ErrMultiEdgeNotAllowed)
	require.False(s.g.HasParallelEdges())
}

func (s *GraphSuite) TestAddEdgeDirected() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithDirected(true))

	_, err := g.AddEdge("X", "Y", 0)
	require.NoError(err)
	require.True(g.HasEdge("X", "Y"))
	require.False(g.HasEdge("Y", "X"))
	require.Empty(g.EdgesBetween("Y", "X"))

	_, err = g.AddEdge("Y", "X", 0)
	require.NoError(err, "the reverse direction is a different ordered pair")

	preds, err := g.PredecessorIDs("X")
	require.NoError(err)
	require.Equal([]string{"Y"}, preds)
}

func (s *GraphSuite) TestAddEdgeValidation() {
	_, err := s.g.AddEdge("", "B", 0)
	s.ErrorIs(err, core.ErrEmptyVertexID)

	_, err = s.g.AddEdge("A", "B", 3)
	s.ErrorIs(err, core.ErrBadWeight)

	_, err = s.g.AddEdge("A", "A", 0)
	s.ErrorIs(err, core.ErrLoopNotAllowed)

	w := core.NewGraph(core.WithWeighted(), core.WithLoops())
	eid, err := w.AddEdge("A", "A", 7)
	s.Require().NoError(err)
	e, err := w.GetEdge(eid)
	s.Require().NoError(err)
	s.Equal(int64(7), e.Weight)
	s.Equal(1, w.Stats().LoopCount)
}

func (s *GraphSuite) TestMultiEdges() {
	g := core.NewGraph(core.WithMultiEdges())
	s.False(g.HasParallelEdges())

	_, err := g.AddEdge("A", "B", 0)
	s.Require().NoError(err)
	s.False(g.HasParallelEdges())

	_, err = g.AddEdge("B", "A", 0)
	s.Require().NoError(err)
	s.True(g.HasParallelEdges())
	s.Len(g.EdgesBetween("A", "B"), 2)
	s.True(g.Multigraph())
}

func (s *GraphSuite) TestRemoveEdgeAndVertex() {
	require := require.New(s.T())

	e1, _ := s.g.AddEdge("A", "B", 0)
	_, _ = s.g.AddEdge("B", "C", 0)

	require.NoError(s.g.RemoveEdge(e1))
	require.False(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"))
	require.ErrorIs(s.g.RemoveEdge(e1), core.ErrEdgeNotFound)

	require.NoError(s.g.RemoveVertex("C"))
	require.False(s.g.HasVertex("C"))
	require.False(s.g.HasEdge("B", "C"))
	require.Equal(0, s.g.EdgeCount())
	require.ErrorIs(s.g.RemoveVertex("C"), core.ErrVertexNotFound)

	ids, err := s.g.NeighborIDs("B")
	require.NoError(err)
	require.Empty(ids)
}

func (s *GraphSuite) TestNeighborsAndDegree() {
	require := require.New(s.T())

	_, _ = s.g.AddEdge("H", "A", 0)
	_, _ = s.g.AddEdge("H", "C", 0)
	_, _ = s.g.AddEdge("B", "H", 0)

	ids, err := s.g.NeighborIDs("H")
	require.NoError(err)
	require.Equal([]string{"A", "B", "C"}, ids)

	edges, err := s.g.Neighbors("H")
	require.NoError(err)
	require.Len(edges, 3)
	require.Equal("e1", edges[0].ID, "Neighbors are in creation order")

	_, _, deg, err := s.g.Degree("H")
	require.NoError(err)
	require.Equal(3, deg)

	_, err = s.g.Neighbors("missing")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestVerticesAndEdgesSorted() {
	for _, id := range []string{"c", "a", "b"} {
		s.Require().NoError(s.g.AddVertex(id))
	}
	s.Equal([]string{"a", "b", "c"}, s.g.Vertices())

	d := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := d.AddEdge("x", string(rune('a'+i)), 0)
		s.Require().NoError(err)
	}
	es := d.Edges()
	s.Equal("e1", es[0].ID)
	s.Equal("e2", es[1].ID)
	s.Equal("e10", es[9].ID, "numeric, not lexicographic, order")
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A", core.WithVertexLabel("C")))
	_, err := g.AddEdge("A", "B", 0, core.WithEdgeLabel("single"))
	require.NoError(t, err)

	c := g.Clone()
	assert.True(t, c.Directed())
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.True(t, c.HasEdge("A", "B"))
	v, _ := c.Vertex("A")
	assert.Equal(t, "C", v.Label)

	_, err = c.AddEdge("B", "A", 0)
	require.NoError(t, err)
	assert.False(t, g.HasEdge("B", "A"), "mutating the clone must not touch the source")

	eid, err := c.AddEdge("B", "C", 0)
	require.NoError(t, err)
	assert.Equal(t, "e3", eid, "clone continues the edge ID sequence")

	empty := g.CloneEmpty()
	assert.Equal(t, 2, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.True(t, g.Directed(), "Clear keeps configuration")
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	sub := core.InducedSubgraph(g, map[string]bool{"a": true, "c": true, "d": true})
	assert.Equal(t, []string{"a", "c", "d"}, sub.Vertices())
	assert.Equal(t, 2, sub.EdgeCount())
	assert.True(t, sub.HasEdge("a", "c"))
	assert.True(t, sub.HasEdge("d", "c"))
	assert.False(t, sub.HasVertex("b"))

	eid, err := sub.AddEdge("a", "d", 0)
	require.NoError(t, err)
	assert.Equal(t, "e5", eid)
	assert.Equal(t, 4, g.EdgeCount(), "the view is detached from its source")
}

func TestStats(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithWeighted())
	_, _ = g.AddEdge("a", "a", 1)
	_, _ = g.AddEdge("a", "b", 2)

	st := g.Stats()
	assert.True(t, st.Directed)
	assert.True(t, st.Weighted)
	assert.True(t, st.AllowsLoops)
	assert.False(t, st.AllowsMulti)
	assert.Equal(t, 2, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.LoopCount)
	assert.True(t, g.Looped())
	assert.True(t, g.Weighted())
}
