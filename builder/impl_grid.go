// SPDX-License-Identifier: MIT
// Package: stepsearch/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows, cols ≥ 1 and at least two cells (else ErrTooFewVertices).
//   • Node r*cols+c sits at (c·spacing, r·spacing); node 0 is the source.
//   • Emits Right then Bottom edges row-major; directed graphs get both arcs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a rows×cols 4-neighbourhood grid. Node r*cols+c sits at
// (c·spacing, r·spacing); the source is the top-left corner.
//
// Edges are emitted row-major, Right then Bottom. Directed graphs also get
// the reverse arc (same weight) to keep the neighbourhood symmetric.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (need at least 2 cells): %w",
				methodGrid, rows, cols, ErrTooFewVertices)
		}
		pos := func(i int) core.Position {
			return core.Position{X: float64(i%cols) * cfg.spacing, Y: float64(i/cols) * cfg.spacing}
		}
		if err := claim(g, methodGrid, rows*cols, pos); err != nil {
			return err
		}

		link := func(u, v int) error {
			w := cfg.weight()
			if err := g.SetEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: SetEdge(%d→%d, w=%d): %w", methodGrid, u, v, w, err)
			}
			if g.Directed() {
				if err := g.SetEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: SetEdge(%d→%d, w=%d): %w", methodGrid, v, u, w, err)
				}
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
