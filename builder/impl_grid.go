// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex (r, c) has index r*cols+c and ID cfg.idFn(index), row-major.
//   - Each cell links to its right and bottom neighbour; directed graphs
//     receive both arcs.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for i := 0; i < rows*cols; i++ {
			if err := cfg.addVertex(g, methodGrid, cfg.idFn(i), i); err != nil {
				return err
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := cfg.connect(g, methodGrid, cfg.idFn(i), cfg.idFn(i+1), i, i+1, true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.connect(g, methodGrid, cfg.idFn(i), cfg.idFn(i+cols), i, i+cols, true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
