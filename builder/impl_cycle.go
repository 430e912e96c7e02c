// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1. On a directed
//     graph this is a directed ring.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := cfg.addVertex(g, methodCycle, cfg.idFn(i), i); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if err := cfg.connect(g, methodCycle, cfg.idFn(i), cfg.idFn(j), i, j, false); err != nil {
				return err
			}
		}

		return nil
	}
}
