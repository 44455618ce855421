package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// ToCoreGraph converts the maze into a directed core.Graph. Walkable cells
// become nodes in row-major order (the source keeps the graph's source id);
// an edge u→v exists for every neighbouring walkable pair and weighs the
// entry cost of v.
//
// The returned map sends a row-major cell index to its node id.
// Complexity: O(W×H×d).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, map[int]int, error) {
	g := core.NewGraph(core.WithDirected(true), core.WithSourcePosition(gg.position(gg.Source)))
	ids := map[int]int{gg.Source: g.SourceID()}
	goal := make(map[int]bool, len(gg.Goals))
	for _, i := range gg.Goals {
		goal[i] = true
	}

	total := gg.Width * gg.Height
	for i := 0; i < total; i++ {
		if i == gg.Source || !gg.Walkable(i) {
			continue
		}
		opts := []core.NodeOption{}
		if goal[i] {
			opts = append(opts, core.WithState(core.StateGoal))
		}
		id, err := g.AddNode(gg.position(i), opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("gridgraph: cell %d: %w", i, err)
		}
		ids[i] = id
	}

	for i := 0; i < total; i++ {
		if !gg.Walkable(i) {
			continue
		}
		x, y := gg.Coordinate(i)
		for _, d := range gg.neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.InBounds(nx, ny) || gg.Costs[ny][nx] == Wall {
				continue
			}
			j := gg.index(nx, ny)
			if err := g.SetEdge(ids[i], ids[j], int64(gg.Costs[ny][nx])); err != nil {
				return nil, nil, fmt.Errorf("gridgraph: move %d→%d: %w", i, j, err)
			}
		}
	}

	if gg.opts.Heuristic {
		for cell, id := range ids {
			if goal[cell] {
				continue
			}
			best := -1
			for _, gi := range gg.Goals {
				if s := gg.steps(cell, gi); best < 0 || s < best {
					best = s
				}
			}
			if err := g.SetHeuristic(id, int64(best)); err != nil {
				return nil, nil, fmt.Errorf("gridgraph: heuristic %d: %w", cell, err)
			}
		}
	}

	return g, ids, nil
}

func (gg *GridGraph) position(idx int) core.Position {
	x, y := gg.Coordinate(idx)
	return core.Position{X: float64(x) * gg.opts.Spacing, Y: float64(y) * gg.opts.Spacing}
}
