package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// Method tags and minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 2
)

func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
}

// Path builds P_n: edges (i-1)→i for i = 1..n-1, laid out on a line.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		if err := claim(g, methodPath, n, line(cfg.spacing)); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: edges i→(i+1) mod n, laid out on a ring.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		if err := claim(g, methodCycle, n, ring(n, cfg.spacing)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star centred on the source with n-1 leaves: edges 0→i.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := claim(g, methodStar, n, hub(n, cfg.spacing)); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a star on the source plus a rim cycle over 1..n-1.
// Edges: spokes 0→i, then rim i→i+1 (wrapping n-1→1).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		if err := claim(g, methodWheel, n, hub(n, cfg.spacing)); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := connect(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n on a ring. Undirected graphs get one edge per pair
// i<j; directed graphs get both arcs.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		if err := claim(g, methodComplete, n, ring(n, cfg.spacing)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if err := connect(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
