// SPDX-License-Identifier: MIT
//
// File: gridgraph.go
// Role: Maze parsing and cell geometry (bounds, offsets, row-major indexing).

package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseMaze reads maze text from r. Blank lines at the end are ignored and
// a trailing '\r' on each line is stripped.
func ParseMaze(r io.Reader, opts GridOptions) (*GridGraph, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return NewGridGraph(lines, opts)
}

// NewGridGraph builds a GridGraph from rows of maze text.
// Complexity: O(W×H) time and memory.
func NewGridGraph(rows []string, opts GridOptions) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Spacing <= 0 {
		opts.Spacing = defaultSpacing
	}
	h, w := len(rows), len([]rune(rows[0]))
	gg := &GridGraph{Width: w, Height: h, Costs: make([][]int, h), Source: -1, opts: opts}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(runes), w)
		}
		gg.Costs[y] = make([]int, w)
		for x, c := range runes {
			cost, err := gg.cell(c, gg.index(x, y))
			if err != nil {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", err, c, x, y)
			}
			gg.Costs[y][x] = cost
		}
	}
	if gg.Source < 0 {
		return nil, ErrSource
	}
	if len(gg.Goals) == 0 {
		return nil, ErrNoGoal
	}

	if opts.Conn == Conn8 {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		gg.neighborOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return gg, nil
}

// cell decodes one rune and records source/goal markers.
func (gg *GridGraph) cell(c rune, idx int) (int, error) {
	switch {
	case c == RuneWall:
		return Wall, nil
	case c == RuneFloor:
		return 1, nil
	case c >= '1' && c <= '9':
		return int(c - '0'), nil
	case c == RuneSource:
		if gg.Source >= 0 {
			return 0, ErrSource
		}
		gg.Source = idx
		return 1, nil
	case c == RuneGoal:
		gg.Goals = append(gg.Goals, idx)
		return 1, nil
	}

	return 0, ErrBadCell
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether the cell at row-major idx can be entered.
func (gg *GridGraph) Walkable(idx int) bool {
	x, y := gg.Coordinate(idx)
	return gg.Costs[y][x] != Wall
}

// NeighborOffsets returns the move offsets for the configured connectivity.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Cell returns the cell at row-major idx.
func (gg *GridGraph) Cell(idx int) Cell {
	x, y := gg.Coordinate(idx)
	return Cell{X: x, Y: y, Cost: gg.Costs[y][x]}
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// steps is the move count between two cells ignoring walls.
func (gg *GridGraph) steps(a, b int) int {
	ax, ay := gg.Coordinate(a)
	bx, by := gg.Coordinate(b)
	dx, dy := abs(ax-bx), abs(ay-by)
	if gg.opts.Conn == Conn8 {
		return max(dx, dy)
	}

	return dx + dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
