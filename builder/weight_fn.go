// SPDX-License-Identifier: MIT
// Package: lvmorph/builder
//
// weight_fn.go - edge weight policies for weighted graphs.
//
// Weights feed morph.EdgeWeightEq; they are integers because core stores
// int64 weights.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no generator or RNG is supplied.
const DefaultEdgeWeight int64 = 1

// WeightFn produces the weight of the next edge. It receives the configured
// RNG, which may be nil.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a generator that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Without an RNG it falls
// back to DefaultEdgeWeight. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
