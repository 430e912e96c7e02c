// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// permute.go - isomorphic copies under a random vertex renaming.
//
// A permuted copy is the canonical positive fixture for isomorphism tests:
// the renaming returned alongside it is a witness mapping that any matcher
// must be able to find.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmorph/core"
)

const methodPermute = "Permute"

// Permute returns a copy of g whose vertex IDs are shuffled among themselves,
// together with the renaming old→new. Labels, weights and edge labels travel
// with their vertex or edge, so the copy is isomorphic to g under the
// renaming. Graph flags (directed, weighted, loops, multi) are preserved.
//
// Complexity: O(V + E) time and space.
func Permute(g *core.Graph, rng *rand.Rand) (*core.Graph, map[string]string, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: nil graph: %w", methodPermute, ErrConstructFailed)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodPermute, ErrNeedRandSource)
	}

	ids := g.Vertices()
	shuffled := append([]string(nil), ids...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	rename := make(map[string]string, len(ids))
	for i, id := range ids {
		rename[id] = shuffled[i]
	}

	out := g.CloneEmpty()
	out.Clear()
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: Vertex(%s): %w", methodPermute, id, err)
		}
		if err = out.AddVertex(rename[id], core.WithVertexLabel(v.Label)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddVertex(%s): %w", methodPermute, rename[id], err)
		}
	}
	for _, e := range g.Edges() {
		u, v := rename[e.From], rename[e.To]
		if _, err := out.AddEdge(u, v, e.Weight, core.WithEdgeLabel(e.Label)); err != nil {
			return nil, nil, fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPermute, u, v, err)
		}
	}

	return out, rename, nil
}
