// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) -> i for i=1..n-1; directed graphs get a directed path.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := cfg.addVertex(g, methodPath, cfg.idFn(i), i); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := cfg.connect(g, methodPath, cfg.idFn(i-1), cfg.idFn(i), i-1, i, false); err != nil {
				return err
			}
		}

		return nil
	}
}
