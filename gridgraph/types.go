package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the maze has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: maze must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a rune outside the maze alphabet.
	ErrBadCell = errors.New("gridgraph: unknown cell")
	// ErrSource indicates the maze has no 'S' or more than one.
	ErrSource = errors.New("gridgraph: maze needs exactly one source")
	// ErrNoGoal indicates the maze has no 'G'.
	ErrNoGoal = errors.New("gridgraph: maze has no goal")
)

// Maze alphabet.
const (
	RuneWall   = '#'
	RuneFloor  = '.'
	RuneSource = 'S'
	RuneGoal   = 'G'
)

// Wall is the cost recorded for impassable cells.
const Wall = 0

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid cell with its coordinates and entry cost (Wall for walls).
type Cell struct {
	X, Y int
	Cost int
}

// GridOptions contains tunable parameters for maze conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional moves.
	Conn Connectivity
	// Spacing is the position distance between neighbouring cells; ≤ 0 means default.
	Spacing float64
	// Heuristic fills node heuristics with the step distance to the nearest goal.
	Heuristic bool
}

const defaultSpacing = 40.0

// DefaultGridOptions returns Conn4, default spacing and no heuristic.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4, Spacing: defaultSpacing}
}

// GridGraph is a parsed maze. It is immutable once built.
// Costs[y][x] holds the entry cost of (x,y), or Wall.
type GridGraph struct {
	Width, Height int
	Costs         [][]int
	// Source is the row-major index of 'S'.
	Source int
	// Goals are the row-major indexes of every 'G', ascending.
	Goals []int

	opts            GridOptions
	neighborOffsets [][2]int
}
