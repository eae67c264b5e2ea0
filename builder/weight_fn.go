// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every generated edge unless a
// WeightFn says otherwise.
const DefaultEdgeWeight float64 = 1

// WeightFn draws an edge weight. rng may be nil; generators that need
// randomness then fall back to DefaultEdgeWeight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value. Panics if value is negative or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be >= 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from [lo, hi). Panics unless 0 <= lo <= hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 <= lo <= hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if hi == lo {
			return lo
		}
		if rng == nil {
			return DefaultEdgeWeight
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn draws integers uniformly from [lo, hi]. Handy for
// fixtures whose expected distances are compared exactly.
// Panics unless 0 <= lo <= hi.
func IntegerWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 <= lo <= hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// NormalWeightFn draws from N(mean, stddev) clamped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be >= 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi float64) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }

// WithIntegerWeight is WithWeightFn(IntegerWeightFn(lo, hi)).
func WithIntegerWeight(lo, hi int) BuilderOption { return WithWeightFn(IntegerWeightFn(lo, hi)) }
