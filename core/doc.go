// Package core provides the in-memory search graph: an arena of Nodes keyed by
// stable integer ids, with a small mutation API for tool layers and the
// read API consumed by the search package.
//
// The Graph G = (V,E) holds:
//
//   - Exactly one source node, created by NewGraph with id 0. It can never be
//     removed, change state, or become a goal.
//   - Any number of goal nodes; becoming goal forces the heuristic to 0.
//   - Weighted adjacency per node: Children[neighbour] = weight, weight > 0.
//   - Sequential ids from a monotonic counter; a removed id is never reused.
//
// Directed vs. undirected:
//
//	– WithDirected(false) (default)
//	    SetEdge/RemoveEdge mirror the mutation on both endpoints.
//
//	– WithDirected(true)
//	    Only from→to is touched.
//
//	– WithMirrored(bool)
//	    Overrides the default for a single SetEdge/RemoveEdge call.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(pos Position, opts ...NodeOption) (int, error)   // O(1)
//	RemoveNode(id int) error                                 // O(V), cascades edges
//	SetNodeState(id int, s State) error                      // O(1)
//	ToggleGoal(id int) (State, error)                        // O(1)
//	SetHeuristic(id int, h int64) error                      // O(1)
//	ResetSearchStates() []int                                // O(V log V)
//
//	// Edge lifecycle
//	SetEdge(from, to int, w int64, opts ...EdgeOption) error // O(1)
//	RemoveEdge(from, to int, opts ...EdgeOption) error       // O(1)
//
//	// Queries (deterministic, ascending ids)
//	NodeIDs() []int
//	Children(id int) ([]Edge, error)
//	Predecessors() map[int][]int
//
// Errors:
//
//	ErrNodeNotFound    - id is not live; edges to missing ids are rejected at mutation time.
//	ErrEdgeNotFound    - no such edge.
//	ErrBadWeight       - weight <= 0.
//	ErrBadHeuristic    - negative heuristic, or non-zero heuristic on a goal.
//	ErrLoopNotAllowed  - from == to.
//	ErrSourceImmutable - the source cannot be removed, re-stated or duplicated.
//	ErrBadState        - unknown State value.
//
// Concurrency:
//
// A single sync.RWMutex makes each call atomic. A running search reads and
// writes the graph across many calls without holding the lock, so callers
// must not mutate the graph while a search is active.
package core
