// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn          = DefaultIDFn        ("0","1","2",...)
//   - rng           = nil                (pure unless seeded)
//   - weightFn      = DefaultWeightFn    (constant 1, observed by weighted graphs only)
//   - vertexLabelFn = nil                (vertices stay unlabelled)
//   - edgeLabelFn   = nil                (edges stay unlabelled)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvmorph/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand
	weightFn      WeightFn
	vertexLabelFn VertexLabelFn
	edgeLabelFn   EdgeLabelFn
}

// newBuilderConfig applies options in order; later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addVertex inserts the vertex with index i under its configured ID and label.
func (cfg builderConfig) addVertex(g *core.Graph, method, id string, i int) error {
	var opts []core.VertexOption
	if cfg.vertexLabelFn != nil {
		opts = append(opts, core.WithVertexLabel(cfg.vertexLabelFn(i)))
	}
	if err := g.AddVertex(id, opts...); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
	}

	return nil
}

// connect adds u→v (indices i, j) with the configured weight and label. With
// mirror set, directed graphs also receive v→u so that the topology keeps its
// undirected shape; undirected graphs already mirror inside core.
func (cfg builderConfig) connect(g *core.Graph, method, u, v string, i, j int, mirror bool) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if err := cfg.arc(g, method, u, v, i, j, w); err != nil {
		return err
	}
	if mirror && g.Directed() {
		return cfg.arc(g, method, v, u, j, i, w)
	}

	return nil
}

func (cfg builderConfig) arc(g *core.Graph, method, u, v string, i, j int, w int64) error {
	var opts []core.EdgeOption
	if cfg.edgeLabelFn != nil {
		opts = append(opts, core.WithEdgeLabel(cfg.edgeLabelFn(i, j)))
	}
	if _, err := g.AddEdge(u, v, w, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
