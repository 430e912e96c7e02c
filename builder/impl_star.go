// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is vertex index 0; leaves are indices 1..n-1.
//   - Directed graphs receive both arcs per spoke.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		if err := cfg.addVertex(g, methodStar, hub, 0); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := cfg.addVertex(g, methodStar, leaf, i); err != nil {
				return err
			}
			if err := cfg.connect(g, methodStar, hub, leaf, 0, i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
