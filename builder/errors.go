// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).
//   - Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail: size, then probability, then rng,
// then whatever core reports while inserting.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownKind is returned by ByName for a topology name it does not know.
var ErrUnknownKind = errors.New("builder: unknown topology kind")
