// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 2, p ∈ [0,1]; an RNG is required unless p ∈ {0,1}.
//   • One Bernoulli(p) trial per admissible pair, in stable (i, j) order.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples an Erdős–Rényi-like graph over n nodes: every
// admissible pair gets an edge independently with probability p.
// Undirected graphs try pairs i<j; directed graphs try ordered pairs i≠j.
//
// Nodes are scattered uniformly over a square whose side grows with √n.
// The RNG is required unless p ∈ {0, 1}; without it nodes sit on a ring.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		pos := ring(n, cfg.spacing)
		if rng != nil {
			side := cfg.spacing * math.Ceil(math.Sqrt(float64(n)))
			pts := make([]core.Position, n)
			for i := range pts {
				pts[i] = core.Position{X: math.Round(rng.Float64() * side), Y: math.Round(rng.Float64() * side)}
			}
			pos = func(i int) core.Position { return pts[i] }
		}
		if err := claim(g, methodRandomSparse, n, pos); err != nil {
			return err
		}

		hit := func() bool {
			if rng == nil {
				return p == probMax
			}
			return rng.Float64() < p
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
