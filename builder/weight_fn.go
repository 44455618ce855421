package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstWeight returns a WeightFn that always yields w. Panics unless w > 0.
func ConstWeight(w int64) WeightFn {
	if w <= 0 {
		panic(fmt.Sprintf("builder: ConstWeight(%d) must be > 0", w))
	}
	return func(*rand.Rand) int64 { return w }
}

// UniformWeight returns a WeightFn drawing uniformly from [lo, hi].
// Without an RNG it yields lo. Panics unless 0 < lo ≤ hi.
func UniformWeight(lo, hi int64) WeightFn {
	if lo <= 0 || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight requires 0 < lo ≤ hi, got lo=%d hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
