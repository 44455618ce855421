// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/RemoveNode/HasNode/Node/NodeIDs,
//       state and heuristic mutations, and the search-state reset.
//
// Determinism:
//   - NodeIDs() returns ids sorted ascending.
//   - Ids come from a monotonic counter; a removed id is never handed out again.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"sort"
)

// AddNode registers a new node and returns its id.
//
// Implementation:
//   - Stage 1: Build the node from opts and validate state/heuristic.
//   - Stage 2: Under mu, assign the next id and store the node.
//
// Behavior highlights:
//   - A node created as goal has its heuristic forced to 0.
//   - StateSource is rejected: the graph owns exactly one source.
//
// Errors:
//   - ErrSourceImmutable: WithState(StateSource).
//   - ErrBadState: unknown state value.
//   - ErrBadHeuristic: negative heuristic.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(pos Position, opts ...NodeOption) (int, error) {
	n := &Node{Position: pos, Children: make(map[int]int64)}
	for _, opt := range opts {
		opt(n)
	}
	switch {
	case n.State == StateSource:
		return 0, ErrSourceImmutable
	case !n.State.Valid():
		return 0, ErrBadState
	case n.Heuristic < 0:
		return 0, fmt.Errorf("%w: %d is negative", ErrBadHeuristic, n.Heuristic)
	}
	if n.State == StateGoal {
		n.Heuristic = 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n.ID = g.nextID
	g.nodes[n.ID] = n
	g.nextID++

	return n.ID, nil
}

// RemoveNode deletes a node and cascades: every edge referencing it is removed
// from every other node.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
//   - ErrSourceImmutable: id is the source.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if id == g.sourceID {
		return ErrSourceImmutable
	}
	delete(g.nodes, id)
	// directed graphs may hold one-way references, so scan every node
	for _, n := range g.nodes {
		delete(n.Children, id)
	}

	return nil
}

// HasNode reports whether id is live.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a deep copy of the node with the given id.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
//
// Complexity:
//   - Time O(deg), Space O(deg).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.clone(), nil
}

// State returns the current state of id.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
func (g *Graph) State(id int) (State, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return StateEmpty, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.State, nil
}

// Heuristic returns the heuristic of id.
//
// Errors:
//   - ErrNodeNotFound: id is not live.
func (g *Graph) Heuristic(id int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.Heuristic, nil
}

// NodeIDs returns all live ids sorted ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// SetNodeState assigns s to node id.
//
// Behavior highlights:
//   - The source never changes state; no other node becomes source.
//   - Becoming goal forces the heuristic to 0.
//   - Setting the source to StateSource is a no-op.
//
// Errors:
//   - ErrNodeNotFound, ErrBadState, ErrSourceImmutable.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SetNodeState(id int, s State) error {
	if !s.Valid() {
		return ErrBadState
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if id == g.sourceID || s == StateSource {
		if id == g.sourceID && s == StateSource {
			return nil
		}

		return ErrSourceImmutable
	}
	n.State = s
	if s == StateGoal {
		n.Heuristic = 0
	}

	return nil
}

// ToggleGoal flips a node between goal and empty and returns the new state.
// Any other non-goal state (visited, path) becomes goal.
//
// Errors:
//   - ErrNodeNotFound, ErrSourceImmutable.
func (g *Graph) ToggleGoal(id int) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return StateEmpty, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if id == g.sourceID {
		return StateSource, ErrSourceImmutable
	}
	if n.State == StateGoal {
		n.State = StateEmpty
	} else {
		n.State = StateGoal
		n.Heuristic = 0
	}

	return n.State, nil
}

// SetHeuristic sets the heuristic of node id.
//
// Errors:
//   - ErrNodeNotFound.
//   - ErrBadHeuristic: h < 0, or h != 0 on a goal node.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SetHeuristic(id int, h int64) error {
	if h < 0 {
		return fmt.Errorf("%w: %d is negative", ErrBadHeuristic, h)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if n.State == StateGoal && h != 0 {
		return fmt.Errorf("%w: goal %d must keep heuristic 0", ErrBadHeuristic, id)
	}
	n.Heuristic = h

	return nil
}

// SetPosition moves node id.
//
// Errors:
//   - ErrNodeNotFound.
func (g *Graph) SetPosition(id int, pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	n.Position = pos

	return nil
}

// ResetSearchStates reverts every node to StateEmpty except nodes that are
// currently source or goal, and returns the ids that changed, ascending.
// Applying it twice is the same as applying it once.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) ResetSearchStates() []int {
	g.mu.Lock()
	defer g.mu.Unlock()

	changed := make([]int, 0)
	for id, n := range g.nodes {
		switch n.State {
		case StateSource, StateGoal, StateEmpty:
			continue
		}
		n.State = StateEmpty
		changed = append(changed, id)
	}
	sort.Ints(changed)

	return changed
}
