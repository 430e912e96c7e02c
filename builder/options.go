// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand injects a caller-owned RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. It only matters for
// weighted graphs. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithVertexLabels labels vertex i with fn(i). Panics on nil.
func WithVertexLabels(fn VertexLabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithVertexLabels(nil)")
	}
	return func(c *builderConfig) {
		c.vertexLabelFn = fn
	}
}

// WithEdgeLabels labels the edge between vertex indices i and j with fn(i, j).
// Panics on nil.
func WithEdgeLabels(fn EdgeLabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeLabels(nil)")
	}
	return func(c *builderConfig) {
		c.edgeLabelFn = fn
	}
}
