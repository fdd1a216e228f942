// weight_fn.go — edge-weight distribution generators.
//
// Contract:
//   - A WeightFn is sampled once per ordered pair during construction.
//   - It must be deterministic for a given RNG state.
//   - Constructors validate their parameters and panic on misuse
//     (configuration-time programmer error); the functions themselves
//     never panic at runtime.

package notegraph

import (
	"fmt"
	"math/rand"
)

// WeightFn produces one edge weight given the construction RNG.
// Weights must be strictly positive; New rejects any w ≤ 0 with
// ErrNonPositiveWeight.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields value.
// Useful for tests where every transition should be equally likely.
// Panics if value ≤ 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("notegraph: ConstantWeightFn: value must be > 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly from [min, max).
// Panics unless 0 < min < max.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max <= min {
		panic(fmt.Sprintf("notegraph: UniformWeightFn: require 0 < min < max, got min=%g, max=%g", min, max))
	}
	span := max - min
	return func(rng *rand.Rand) float64 {
		// Float64 yields [0,1); min > 0 keeps every sample strictly positive.
		return min + rng.Float64()*span
	}
}
