// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are declared in impl_*.go, one topology per file.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order produce identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors wrapped with %w and never panic at runtime.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, for example to grow a
// pattern inside a larger host before matching.
// Complexity: same as BuildGraph minus graph allocation.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// Kinds lists the topology names understood by ByName, in sorted order.
var Kinds = []string{"complete", "cycle", "grid", "path", "random", "star", "wheel"}

// ByName resolves a topology by its short name. n is the vertex count (for
// "grid" it is the side length of an n x n lattice) and p the edge
// probability used by "random" only.
func ByName(kind string, n int, p float64) (Constructor, error) {
	switch kind {
	case "complete":
		return Complete(n), nil
	case "cycle":
		return Cycle(n), nil
	case "grid":
		return Grid(n, n), nil
	case "path":
		return Path(n), nil
	case "random":
		return RandomSparse(n, p), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	default:
		return nil, fmt.Errorf("ByName(%q): %w", kind, ErrUnknownKind)
	}
}
