package morph_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/morph"
)

func TestNewMatcher_Errors(t *testing.T) {
	g := build(t, undirected("a b", "a-b"))
	d := build(t, directed("a b", "a-b"))

	_, err := morph.NewMatcher(morph.Isomorphism, nil, g)
	assert.ErrorIs(t, err, morph.ErrGraphNil)

	_, err = morph.NewMatcher(morph.Isomorphism, g, nil)
	assert.ErrorIs(t, err, morph.ErrGraphNil)

	_, err = morph.NewMatcher(morph.Isomorphism, g, d)
	assert.ErrorIs(t, err, morph.ErrDirectedMismatch)

	_, err = morph.NewMatcher(morph.Mode(9), g, g)
	assert.ErrorIs(t, err, morph.ErrUnknownMode)

	multi := core.NewGraph(core.WithMultiEdges())
	_, _ = multi.AddEdge("a", "b", 0)
	_, _ = multi.AddEdge("a", "b", 0)
	_, err = morph.NewMatcher(morph.Monomorphism, multi, g)
	assert.ErrorIs(t, err, morph.ErrMultigraph)
}

func TestIsomorphism_TriangleAutomorphisms(t *testing.T) {
	a := build(t, undirected("a b c", "a-b", "b-c", "a-c"))
	b := build(t, undirected("x y z", "x-y", "y-z", "x-z"))

	got := vf2Strings(t, morph.Isomorphism, a, b)
	assert.Equal(t, []string{
		"a,x b,y c,z",
		"a,x b,z c,y",
		"a,y b,x c,z",
		"a,y b,z c,x",
		"a,z b,x c,y",
		"a,z b,y c,x",
	}, got)
}

func TestIsomorphism_DirectedCycle(t *testing.T) {
	a := build(t, directed("a b c", "a-b", "b-c", "c-a"))
	b := build(t, directed("x y z", "x-y", "y-z", "z-x"))

	got := vf2Strings(t, morph.Isomorphism, a, b)
	assert.Equal(t, []string{"a,x b,y c,z", "a,y b,z c,x", "a,z b,x c,y"}, got)

	// Reversing one edge direction breaks every isomorphism.
	r := build(t, directed("x y z", "x-y", "y-z", "x-z"))
	assert.Empty(t, vf2Strings(t, morph.Isomorphism, a, r))
}

func TestIsomorphism_SizeMismatchNeverCallsBack(t *testing.T) {
	a := build(t, undirected("a b", "a-b"))
	b := build(t, undirected("x y z", "x-y"))

	called := false
	err := morph.Isomorphisms(a, b, func(morph.Mapping, *core.Graph, *core.Graph) morph.Control {
		called = true
		return morph.Continue
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestEmptyDomain(t *testing.T) {
	empty := build(t, undirected(""))
	host := build(t, undirected("x y", "x-y"))

	assert.Equal(t, []string{""}, vf2Strings(t, morph.InducedSubgraph, empty, host))
	assert.Equal(t, []string{""}, vf2Strings(t, morph.Monomorphism, empty, host))
	assert.Empty(t, vf2Strings(t, morph.Isomorphism, empty, host))
	assert.Equal(t, []string{""}, vf2Strings(t, morph.Isomorphism, empty, build(t, undirected(""))))
}

func TestInducedVersusMonomorphism(t *testing.T) {
	path := build(t, undirected("a b c", "a-b", "b-c"))
	triangle := build(t, undirected("x y z", "x-y", "y-z", "x-z"))
	star := build(t, undirected("h l1 l2 l3", "h-l1", "h-l2", "h-l3"))

	n, err := morph.Count(morph.InducedSubgraph, path, triangle)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "a triangle has no induced path on three vertices")

	n, err = morph.Count(morph.Monomorphism, path, triangle)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = morph.Count(morph.InducedSubgraph, path, star)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	for _, s := range vf2Strings(t, morph.InducedSubgraph, path, star) {
		assert.Contains(t, s, "b,h")
	}
}

func TestMonomorphism_CycleIntoComplete(t *testing.T) {
	c4 := build(t, undirected("a b c d", "a-b", "b-c", "c-d", "d-a"))
	k4 := build(t, undirected("w x y z", "w-x", "w-y", "w-z", "x-y", "x-z", "y-z"))

	n, err := morph.Count(morph.Monomorphism, c4, k4)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = morph.Count(morph.InducedSubgraph, c4, k4)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = morph.Count(morph.Isomorphism, c4, c4.Clone())
	require.NoError(t, err)
	assert.Equal(t, 8, n)
}

func TestLabels(t *testing.T) {
	a := build(t, undirected("a:C b:O", "a-b:single"))
	b := build(t, undirected("x:O y:C", "x-y:single"))

	assert.Len(t, vf2Strings(t, morph.Isomorphism, a, b), 2)
	assert.Equal(t, []string{"a,y b,x"}, vf2Strings(t, morph.Isomorphism, a, b, morph.WithLabels()))

	c := build(t, undirected("x:O y:C", "x-y:double"))
	assert.Empty(t, vf2Strings(t, morph.Isomorphism, a, c, morph.WithLabels()))
	assert.Equal(t, []string{"a,y b,x"},
		vf2Strings(t, morph.Isomorphism, a, c, morph.WithVertexPredicate(morph.VertexLabelEq)))
}

func TestSelfLoops(t *testing.T) {
	a := build(t, sketch{loops: true, vertices: []string{"a"}, edges: []string{"a-a"}})
	b := build(t, sketch{loops: true, vertices: []string{"x", "y"}, edges: []string{"x-x"}})

	assert.Equal(t, []string{"a,x"}, vf2Strings(t, morph.Monomorphism, a, b))
	assert.Equal(t, []string{"a,x"}, vf2Strings(t, morph.InducedSubgraph, a, b))

	// A codomain loop without a domain loop is tolerated only by monomorphism.
	plain := build(t, undirected("a"))
	assert.Equal(t, []string{"a,x", "a,y"}, vf2Strings(t, morph.Monomorphism, plain, b))
	assert.Equal(t, []string{"a,y"}, vf2Strings(t, morph.InducedSubgraph, plain, b))
}

func TestHelpers(t *testing.T) {
	a := build(t, undirected("a b c", "a-b", "b-c"))
	b := build(t, undirected("x y z", "x-y", "y-z"))
	c := build(t, undirected("x y z", "x-y", "y-z", "x-z"))

	ok, err := morph.Isomorphic(a, b)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = morph.Isomorphic(a, c)
	require.NoError(t, err)
	assert.False(t, ok)

	first, err := morph.FindFirst(morph.Isomorphism, a, b)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, "a,x b,y c,z", first.String())

	none, err := morph.FindFirst(morph.InducedSubgraph, c, a)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = morph.Isomorphic(nil, a)
	assert.ErrorIs(t, err, morph.ErrGraphNil)
}

func TestMatcher_IteratorMatchesCallback(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randomGraph(t, rng, 4, 0.5, false)
	b := randomGraph(t, rng, 6, 0.5, false)

	m, err := morph.NewMatcher(morph.Monomorphism, a, b)
	require.NoError(t, err)

	var viaCallback []string
	require.NoError(t, m.Enumerate(morph.Strings(&viaCallback)))

	var viaIterator []string
	for mp := range m.All() {
		viaIterator = append(viaIterator, mp.String())
	}
	require.NoError(t, m.Err())

	assert.Equal(t, viaCallback, viaIterator)
	assert.Equal(t, len(viaIterator), m.Stats().Reported)
}

func TestMatcher_IteratorBreak(t *testing.T) {
	k4 := build(t, undirected("w x y z", "w-x", "w-y", "w-z", "x-y", "x-z", "y-z"))
	m, err := morph.NewMatcher(morph.Isomorphism, k4, k4)
	require.NoError(t, err)

	seen := 0
	for range m.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	assert.Equal(t, 3, seen)
	assert.Equal(t, 3, m.Stats().Reported)

	// The Matcher is reusable after an early break.
	n := 0
	for range m.All() {
		n++
	}
	assert.Equal(t, 24, n)
}

func TestMatcher_ContextCancelled(t *testing.T) {
	g := build(t, undirected("a b c", "a-b", "b-c", "a-c"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := morph.NewMatcher(morph.Isomorphism, g, g, morph.WithContext(ctx))
	require.NoError(t, err)

	var got []string
	err = m.Enumerate(morph.Strings(&got))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, got)
	assert.ErrorIs(t, m.Err(), context.Canceled)
}

func TestMatcher_ReentryPanics(t *testing.T) {
	g := build(t, undirected("a b", "a-b"))
	m, err := morph.NewMatcher(morph.Isomorphism, g, g)
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = m.Enumerate(func(morph.Mapping, *core.Graph, *core.Graph) morph.Control {
			_ = m.Enumerate(morph.Strings(new([]string)))
			return morph.Continue
		})
	})

	// The guard is released by the panic.
	var got []string
	require.NoError(t, m.Enumerate(morph.Strings(&got)))
	assert.Len(t, got, 2)
}

func TestMatcher_SnapshotIsolation(t *testing.T) {
	a := build(t, undirected("a b", "a-b"))
	b := build(t, undirected("x y", "x-y"))
	m, err := morph.NewMatcher(morph.Isomorphism, a, b)
	require.NoError(t, err)

	_, err = b.AddEdge("y", "z", 0)
	require.NoError(t, err)

	var got []string
	require.NoError(t, m.Enumerate(morph.Strings(&got)))
	assert.Equal(t, []string{"a,x b,y", "a,y b,x"}, got)
}

func TestMatcher_CallbackReceivesGraphs(t *testing.T) {
	a := build(t, undirected("a b", "a-b"))
	b := build(t, undirected("x y", "x-y"))

	err := morph.Isomorphisms(a, b, func(m morph.Mapping, ga, gb *core.Graph) morph.Control {
		assert.Same(t, a, ga)
		assert.Same(t, b, gb)
		r, ok := m.Get("a")
		assert.True(t, ok)
		l, ok := m.GetInverse(r)
		assert.True(t, ok)
		assert.Equal(t, "a", l)
		return morph.Stop
	})
	require.NoError(t, err)
}

// TestRandom_AgainstBruteForce checks soundness (every result verifies) and
// completeness (the count equals exhaustive search) on random graph pairs.
func TestRandom_AgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	modes := []morph.Mode{morph.Isomorphism, morph.InducedSubgraph, morph.Monomorphism}

	for round := 0; round < 30; round++ {
		dir := round%2 == 1
		a := randomGraph(t, rng, 3+rng.Intn(2), 0.5, dir)
		b := randomGraph(t, rng, 4+rng.Intn(2), 0.5, dir)
		for _, mode := range modes {
			host := b
			if mode == morph.Isomorphism {
				host = randomGraph(t, rng, a.VertexCount(), 0.5, dir)
			}

			var found []*morph.Map
			m, err := morph.NewMatcher(mode, a, host)
			require.NoError(t, err)
			require.NoError(t, m.Enumerate(morph.Collect(&found)))

			for _, mp := range found {
				assert.NoError(t, morph.Verify(mode, a, host, mp), "round %d %s %s", round, mode, mp)
			}
			assert.Equal(t, bruteForce(t, mode, a, host), len(found), "round %d %s", round, mode)
		}
	}
}

func TestVerify_RejectsBadMappings(t *testing.T) {
	path := build(t, undirected("a b c", "a-b", "b-c"))
	tri := build(t, undirected("x y z", "x-y", "y-z", "x-z"))

	m, err := morph.NewMap(morph.Pair{Left: "a", Right: "x"}, morph.Pair{Left: "b", Right: "y"}, morph.Pair{Left: "c", Right: "z"})
	require.NoError(t, err)

	assert.NoError(t, morph.Verify(morph.Monomorphism, path, tri, m))
	assert.ErrorIs(t, morph.Verify(morph.InducedSubgraph, path, tri, m), morph.ErrInvalidMapping)

	short, err := morph.NewMap(morph.Pair{Left: "a", Right: "x"})
	require.NoError(t, err)
	assert.ErrorIs(t, morph.Verify(morph.Monomorphism, path, tri, short), morph.ErrInvalidMapping)

	ghost, err := morph.NewMap(morph.Pair{Left: "a", Right: "x"}, morph.Pair{Left: "b", Right: "y"}, morph.Pair{Left: "c", Right: "q"})
	require.NoError(t, err)
	assert.ErrorIs(t, morph.Verify(morph.Monomorphism, path, tri, ghost), morph.ErrInvalidMapping)
}
