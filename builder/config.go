package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Canvas distance between neighbouring nodes.
	spacing float64
}

// Deterministic defaults.
const (
	defaultSpacing = 40.0
)

// newBuilderConfig applies opts over the defaults; last option wins.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: ConstWeight(DefaultEdgeWeight),
		spacing:  defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
