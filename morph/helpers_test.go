package morph_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/morph"
)

// sketch describes a small graph: vertices "id" or "id:label", edges "u-v" or
// "u-v:label". Every vertex is listed explicitly so isolated ones exist.
type sketch struct {
	directed bool
	loops    bool
	vertices []string
	edges    []string
}

func build(t testing.TB, s sketch) *core.Graph {
	t.Helper()
	opts := []core.GraphOption{core.WithDirected(s.directed)}
	if s.loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, v := range s.vertices {
		id, label, _ := strings.Cut(v, ":")
		require.NoError(t, g.AddVertex(id, core.WithVertexLabel(label)))
	}
	for _, e := range s.edges {
		ends, label, _ := strings.Cut(e, ":")
		u, v, ok := strings.Cut(ends, "-")
		require.True(t, ok, "bad edge %q", e)
		_, err := g.AddEdge(u, v, 0, core.WithEdgeLabel(label))
		require.NoError(t, err)
	}

	return g
}

func undirected(vertices string, edges ...string) sketch {
	return sketch{vertices: strings.Fields(vertices), edges: edges}
}

func directed(vertices string, edges ...string) sketch {
	return sketch{directed: true, vertices: strings.Fields(vertices), edges: edges}
}

// randomGraph draws a G(n, p) graph with vertex IDs "v0".."v{n-1}".
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64, dir bool) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(dir))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", i)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!dir && j < i) {
				continue
			}
			if rng.Float64() < p {
				_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), 0)
				require.NoError(t, err)
			}
		}
	}

	return g
}

// bruteForce enumerates every injective map domain → codomain and counts
// those Verify accepts.
func bruteForce(t testing.TB, mode morph.Mode, a, b *core.Graph, opts ...morph.Option) int {
	t.Helper()
	dom, cod := a.Vertices(), b.Vertices()
	used := make(map[string]bool, len(cod))
	pairs := make([]morph.Pair, 0, len(dom))
	count := 0

	var rec func(i int)
	rec = func(i int) {
		if i == len(dom) {
			m, err := morph.NewMap(pairs...)
			require.NoError(t, err)
			if morph.Verify(mode, a, b, m, opts...) == nil {
				count++
			}
			return
		}
		for _, c := range cod {
			if used[c] {
				continue
			}
			used[c] = true
			pairs = append(pairs, morph.Pair{Left: dom[i], Right: c})
			rec(i + 1)
			pairs = pairs[:len(pairs)-1]
			used[c] = false
		}
	}
	rec(0)

	return count
}

// bruteForceCommon counts every partial injective map of size >= minSize
// that VerifyCommon accepts.
func bruteForceCommon(t testing.TB, a, b *core.Graph, minSize int, opts ...morph.Option) int {
	t.Helper()
	left, right := a.Vertices(), b.Vertices()
	used := make(map[string]bool, len(right))
	pairs := make([]morph.Pair, 0, len(left))
	count := 0

	var rec func(i int)
	rec = func(i int) {
		if i == len(left) {
			if len(pairs) < minSize {
				return
			}
			m, err := morph.NewMap(pairs...)
			require.NoError(t, err)
			if morph.VerifyCommon(a, b, m, opts...) == nil {
				count++
			}
			return
		}
		rec(i + 1)
		for _, r := range right {
			if used[r] {
				continue
			}
			used[r] = true
			pairs = append(pairs, morph.Pair{Left: left[i], Right: r})
			rec(i + 1)
			pairs = pairs[:len(pairs)-1]
			used[r] = false
		}
	}
	rec(0)

	return count
}

// vf2Strings runs a Matcher and returns every result rendered.
func vf2Strings(t testing.TB, mode morph.Mode, a, b *core.Graph, opts ...morph.Option) []string {
	t.Helper()
	m, err := morph.NewMatcher(mode, a, b, opts...)
	require.NoError(t, err)
	var out []string
	require.NoError(t, m.Enumerate(morph.Strings(&out)))

	return out
}

// commonStrings runs an Enumerator and returns every result rendered.
func commonStrings(t testing.TB, e *morph.Enumerator, p morph.Policy) []string {
	t.Helper()
	var out []string
	require.NoError(t, e.Enumerate(p, morph.Strings(&out)))

	return out
}
