// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, State, Position, Graph, options, sentinel errors and the NewGraph constructor.
// Policy:
//   - Node identity is an int assigned from a monotonic counter and never reused.
//   - Exactly one node carries StateSource; it is created by NewGraph and is immutable.
//   - Node values handed out by the API are copies; internal maps never escape.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")

	// ErrBadHeuristic indicates a negative heuristic, or a non-zero heuristic on a goal node.
	ErrBadHeuristic = errors.New("core: bad heuristic")

	// ErrLoopNotAllowed indicates a self-loop (from == to).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrSourceImmutable indicates an attempt to remove the source, change its state,
	// or promote another node to source.
	ErrSourceImmutable = errors.New("core: source node is immutable")

	// ErrBadState indicates a State value outside the known set.
	ErrBadState = errors.New("core: unknown node state")
)

// State is the observable search state of a node.
type State uint8

// Node states. The zero value is StateEmpty.
const (
	StateEmpty State = iota
	StateSource
	StateGoal
	StateVisited
	StatePath
)

// stateNames is indexed by State.
var stateNames = [...]string{"empty", "source", "goal", "visited", "path"}

// String returns the lower-case state name ("empty", "source", ...).
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}

	return "unknown"
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool { return int(s) < len(stateNames) }

// ParseState maps a state name back to its State.
// The empty string parses as StateEmpty.
func ParseState(name string) (State, error) {
	if name == "" {
		return StateEmpty, nil
	}
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}

	return StateEmpty, ErrBadState
}

// Position is an opaque placement hint owned by the tool layer.
// The graph stores it verbatim and never interprets it.
type Position struct {
	X, Y float64
}

// Node is a vertex record of the graph.
//
// Children maps neighbour id to a positive edge weight. Values returned by
// Graph.Node own their Children map; mutating it does not affect the graph.
type Node struct {
	// ID is the unique, sequentially assigned identifier.
	ID int

	// State is the current search state.
	State State

	// Heuristic is a non-negative estimate of the remaining cost to a goal.
	Heuristic int64

	// Position is the tool-layer placement hint.
	Position Position

	// Children maps neighbour id → edge weight.
	Children map[int]int64
}

// clone returns a deep copy of n.
func (n *Node) clone() Node {
	out := *n
	out.Children = make(map[int]int64, len(n.Children))
	for id, w := range n.Children {
		out.Children[id] = w
	}

	return out
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for edge mutations
// (true = one-way edges, false = mirrored on both endpoints).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithSourcePosition places the source node created by NewGraph.
func WithSourcePosition(pos Position) GraphOption {
	return func(g *Graph) { g.sourcePos = pos }
}

// NodeOption configures a node created by AddNode.
type NodeOption func(n *Node)

// WithState sets the initial state of a new node.
// StateSource is rejected by AddNode with ErrSourceImmutable.
func WithState(s State) NodeOption {
	return func(n *Node) { n.State = s }
}

// WithHeuristic sets the initial heuristic of a new node.
func WithHeuristic(h int64) NodeOption {
	return func(n *Node) { n.Heuristic = h }
}

// EdgeOption configures a single edge mutation.
type EdgeOption func(o *edgeOptions)

// edgeOptions holds per-call edge settings resolved against the graph default.
type edgeOptions struct {
	mirrored bool
}

// WithMirrored overrides the graph default for one SetEdge/RemoveEdge call:
// true applies the mutation on both endpoints, false on from→to only.
func WithMirrored(mirrored bool) EdgeOption {
	return func(o *edgeOptions) { o.mirrored = mirrored }
}

// Graph is an in-memory arena of Nodes keyed by integer id.
//
// mu guards nodes and nextID. Individual operations are atomic; a sequence of
// operations (such as a search step) is not.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	directed  bool     // default edge orientation
	sourcePos Position // placement of the source created by NewGraph

	// Storage
	nextID   int           // next id handed out by AddNode
	sourceID int           // id of the single source node
	nodes    map[int]*Node // id → Node
}

// NewGraph creates a Graph holding exactly one node: the source, with id 0.
// By default edges are mirrored (undirected).
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{nodes: make(map[int]*Node)}
	for _, opt := range opts {
		opt(g)
	}
	g.seedSource()

	return g
}

// seedSource registers the source node and advances the id counter.
// Caller must hold mu (or own g exclusively).
func (g *Graph) seedSource() {
	g.sourceID = g.nextID
	g.nodes[g.sourceID] = &Node{
		ID:       g.sourceID,
		State:    StateSource,
		Position: g.sourcePos,
		Children: make(map[int]int64),
	}
	g.nextID++
}
