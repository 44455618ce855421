// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/RemoveEdge/HasEdge/Weight/Children/Predecessors.
// Determinism:
//   - Children() and Predecessors() return ids sorted ascending.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// Edge is one child entry as seen from its parent.
type Edge struct {
	To     int
	Weight int64
}

// resolveEdgeOptions applies opts over the graph default (mirrored = !directed).
// Caller must hold mu.
func (g *Graph) resolveEdgeOptions(opts []EdgeOption) edgeOptions {
	o := edgeOptions{mirrored: !g.directed}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// SetEdge inserts the edge from→to, or overwrites its weight if it exists.
//
// Steps:
//  1. Validate weight and loop.
//  2. Under mu, verify both endpoints are live (fail fast on dangling ids).
//  3. Store from→to; if mirrored, also store to→from with the same weight.
//
// Errors:
//   - ErrBadWeight: weight <= 0.
//   - ErrLoopNotAllowed: from == to.
//   - ErrNodeNotFound: an endpoint is not live.
//
// Complexity: O(1).
func (g *Graph) SetEdge(from, to int, weight int64, opts ...EdgeOption) error {
	if weight <= 0 {
		return fmt.Errorf("%w: %d→%d weight=%d", ErrBadWeight, from, to, weight)
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	dst, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	src.Children[to] = weight
	if g.resolveEdgeOptions(opts).mirrored {
		dst.Children[from] = weight
	}

	return nil
}

// RemoveEdge deletes from→to, and to→from when mirrored.
// A mirrored removal succeeds if either direction existed.
//
// Errors:
//   - ErrNodeNotFound: an endpoint is not live.
//   - ErrEdgeNotFound: no matching edge.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	dst, ok := g.nodes[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}

	_, forward := src.Children[to]
	delete(src.Children, to)
	removed := forward
	if g.resolveEdgeOptions(opts).mirrored {
		_, backward := dst.Children[from]
		delete(dst.Children, from)
		removed = removed || backward
	}
	if !removed {
		return fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return nil
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, ok = n.Children[to]

	return ok
}

// Weight returns the weight of from→to.
//
// Errors:
//   - ErrNodeNotFound, ErrEdgeNotFound.
func (g *Graph) Weight(from, to int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[from]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	w, ok := n.Children[to]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Children returns the outgoing edges of id sorted by neighbour id ascending.
// Search expansion relies on this order for determinism.
//
// Errors:
//   - ErrNodeNotFound.
//
// Complexity: O(deg log deg).
func (g *Graph) Children(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, 0, len(n.Children))
	for to, w := range n.Children {
		out = append(out, Edge{To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Predecessors builds the reverse adjacency of the whole graph:
// for every live id, the ids that have an edge into it, ascending.
//
// Complexity: O(V + E log E).
func (g *Graph) Predecessors() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	preds := make(map[int][]int, len(g.nodes))
	for id := range g.nodes {
		preds[id] = nil
	}
	for from, n := range g.nodes {
		for to := range n.Children {
			preds[to] = append(preds[to], from)
		}
	}
	for id := range preds {
		sort.Ints(preds[id])
	}

	return preds
}
