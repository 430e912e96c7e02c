package graphfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/internal/graphfile"
)

const pair = `
[graph.domain]
directed = false

[[graph.domain.vertex]]
id = "a"
label = "C"

[[graph.domain.vertex]]
id = "b"
label = "O"

[[graph.domain.edge]]
from = "a"
to = "b"
label = "double"

[graph.codomain]
directed = true

[[graph.codomain.edge]]
from = "x"
to = "y"

[[graph.codomain.edge]]
from = "y"
to = "z"
`

func TestDecodeAndBuild(t *testing.T) {
	f, err := graphfile.Decode(strings.NewReader(pair))
	require.NoError(t, err)
	assert.Equal(t, []string{"codomain", "domain"}, f.Names())

	dom, err := f.Graph("domain")
	require.NoError(t, err)
	assert.False(t, dom.Directed())
	assert.True(t, dom.HasEdge("b", "a"))
	v, err := dom.Vertex("b")
	require.NoError(t, err)
	assert.Equal(t, "O", v.Label)
	require.Len(t, dom.Edges(), 1)
	assert.Equal(t, "double", dom.Edges()[0].Label)

	cod, err := f.Graph("codomain")
	require.NoError(t, err)
	assert.True(t, cod.Directed())
	assert.Equal(t, []string{"x", "y", "z"}, cod.Vertices(), "endpoints are created implicitly")
	assert.False(t, cod.HasEdge("y", "x"))
}

func TestDecodeErrors(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader("[graph.g]\ndirectd = true\n"))
	assert.ErrorIs(t, err, graphfile.ErrUnknownKey)
	assert.Contains(t, err.Error(), "directd")

	_, err = graphfile.Decode(strings.NewReader("[graph.g\n"))
	assert.Error(t, err)

	f, err := graphfile.Decode(strings.NewReader("[graph.g]\n[[graph.g.edge]]\nfrom = \"a\"\n"))
	require.NoError(t, err)
	_, err = f.Graph("g")
	assert.ErrorIs(t, err, graphfile.ErrBadEdge)

	_, err = f.Graph("missing")
	assert.ErrorIs(t, err, graphfile.ErrMissingGraph)

	f, err = graphfile.Decode(strings.NewReader("[graph.g]\n[[graph.g.edge]]\nfrom = \"a\"\nto = \"b\"\nweight = 3\n"))
	require.NoError(t, err)
	_, err = f.Graph("g")
	assert.ErrorIs(t, err, core.ErrBadWeight, "weights need weighted = true")
}

func TestRoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops())
	require.NoError(t, g.AddVertex("n1", core.WithVertexLabel("N")))
	_, err := g.AddEdge("n1", "c2", 4, core.WithEdgeLabel("single"))
	require.NoError(t, err)
	_, err = g.AddEdge("c2", "c2", 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphfile.Encode(&buf, &graphfile.File{
		Graphs: map[string]graphfile.Graph{"left": graphfile.FromCore(g)},
	}))

	f, err := graphfile.Decode(&buf)
	require.NoError(t, err)
	back, err := f.Graph("left")
	require.NoError(t, err)

	assert.Equal(t, graphfile.FromCore(g), graphfile.FromCore(back))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.toml")
	require.NoError(t, os.WriteFile(path, []byte(pair), 0o600))

	f, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Graphs, 2)

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
