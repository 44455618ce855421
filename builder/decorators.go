package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodGoal      = "Goal"
	methodEuclidean = "EuclideanHeuristic"
	methodManhattan = "ManhattanHeuristic"
)

// Goal marks the nodes at the given indexes as goals. Indexes address the
// ascending id list; negative values count from the end (-1 is the last node).
// The source cannot become a goal.
// Complexity: O(V + k).
func Goal(idx ...int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(idx) == 0 {
			return fmt.Errorf("%s: no index given: %w", methodGoal, ErrBadIndex)
		}
		ids := g.NodeIDs()
		for _, i := range idx {
			j := i
			if j < 0 {
				j += len(ids)
			}
			if j < 0 || j >= len(ids) {
				return fmt.Errorf("%s: index %d out of range [0,%d): %w", methodGoal, i, len(ids), ErrBadIndex)
			}
			id := ids[j]
			if id == g.SourceID() {
				return fmt.Errorf("%s: index %d is the source: %w", methodGoal, i, ErrBadIndex)
			}
			if err := g.SetNodeState(id, core.StateGoal); err != nil {
				return fmt.Errorf("%s: SetNodeState(%d): %w", methodGoal, id, err)
			}
		}

		return nil
	}
}

// metric is a planar distance.
type metric func(a, b core.Position) float64

func euclidean(a, b core.Position) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func manhattan(a, b core.Position) float64 { return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) }

// EuclideanHeuristic sets h(v) = ⌊min over goals of |v−goal|₂ / spacing⌋.
// Goals keep 0. Must run after Goal.
// Complexity: O(V·G).
func EuclideanHeuristic() Constructor { return distanceHeuristic(methodEuclidean, euclidean) }

// ManhattanHeuristic sets h(v) = ⌊min over goals of |v−goal|₁ / spacing⌋.
// On a Grid with weights ≥ 1 this never overestimates the remaining cost.
func ManhattanHeuristic() Constructor { return distanceHeuristic(methodManhattan, manhattan) }

func distanceHeuristic(method string, dist metric) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		goals := g.GoalIDs()
		if len(goals) == 0 {
			return fmt.Errorf("%s: graph has no goal: %w", method, ErrBadIndex)
		}
		targets := make([]core.Position, len(goals))
		for i, id := range goals {
			n, err := g.Node(id)
			if err != nil {
				return fmt.Errorf("%s: Node(%d): %w", method, id, err)
			}
			targets[i] = n.Position
		}

		for _, id := range g.NodeIDs() {
			n, err := g.Node(id)
			if err != nil {
				return fmt.Errorf("%s: Node(%d): %w", method, id, err)
			}
			if n.State == core.StateGoal {
				continue
			}
			best := math.Inf(1)
			for _, p := range targets {
				best = math.Min(best, dist(n.Position, p))
			}
			// tolerate float noise on exact multiples of spacing
			h := int64(math.Floor(best/cfg.spacing + 1e-9))
			if err = g.SetHeuristic(id, h); err != nil {
				return fmt.Errorf("%s: SetHeuristic(%d, %d): %w", method, id, h, err)
			}
		}

		return nil
	}
}
