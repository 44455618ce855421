// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade: configuration flags, counts and snapshots.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.

package core

import "sort"

// Directed reports the graph-wide default edge orientation.
// Per-call overrides are possible through WithMirrored.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Len returns the number of live nodes (the source included).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of stored child entries.
// A mirrored edge counts twice, once per endpoint.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += len(n.Children)
	}

	return total
}

// SourceID returns the id of the single source node.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) SourceID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sourceID
}

// GoalIDs returns the ids of all nodes currently in StateGoal, ascending.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) GoalIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, 1)
	for id, n := range g.nodes {
		if n.State == StateGoal {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// States returns a snapshot id → State of every node.
// Drivers use it to render a frame without holding the lock.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) States() map[int]State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]State, len(g.nodes))
	for id, n := range g.nodes {
		out[id] = n.State
	}

	return out
}

// CountState returns how many nodes are currently in state s.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) CountState(s State) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for _, n := range g.nodes {
		if n.State == s {
			count++
		}
	}

	return count
}
