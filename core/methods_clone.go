// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextID so ids handed out by the clone never collide with copied nodes.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, nodes, states, heuristics and edges.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:  g.directed,
		sourcePos: g.sourcePos,
		nextID:    g.nextID,
		sourceID:  g.sourceID,
		nodes:     make(map[int]*Node, len(g.nodes)),
	}
	for id, n := range g.nodes {
		c := n.clone()
		clone.nodes[id] = &c
	}

	return clone
}

// Clear removes every node except the source, drops the source's edges and
// restarts id assignment right after the source id.
// Configuration flags and the source position are preserved.
//
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.nodes[g.sourceID]
	g.nodes = map[int]*Node{g.sourceID: src}
	src.Children = make(map[int]int64)
	src.Heuristic = 0
	g.nextID = g.sourceID + 1
}
