// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits edges for i<j in lexicographic (i, j) order; directed graphs
//     receive both arcs.
//
// Complexity: O(n²) time, O(n) extra space for the ID cache.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			if err := cfg.addVertex(g, methodComplete, ids[i], i); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.connect(g, methodComplete, ids[i], ids[j], i, j, true); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
