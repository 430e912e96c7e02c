// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the rim C_{n-1} needs three vertices.
//   - Rim vertices are indices 0..n-2 built by Cycle; the hub is index n-1.
//   - Directed graphs receive both arcs per spoke and a directed rim.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmorph/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := cfg.idFn(n - 1)
		if err := cfg.addVertex(g, methodWheel, hub, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := cfg.connect(g, methodWheel, hub, cfg.idFn(i), n-1, i, true); err != nil {
				return err
			}
		}

		return nil
	}
}
