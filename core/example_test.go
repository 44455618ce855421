package core_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) A new graph already holds the source (id 0).
	g := core.NewGraph()

	// 2) Add two nodes and connect them; edges are mirrored by default.
	a, _ := g.AddNode(core.Position{X: 10, Y: 0})
	b, _ := g.AddNode(core.Position{X: 20, Y: 0}, core.WithState(core.StateGoal))
	_ = g.SetEdge(0, a, 1)
	_ = g.SetEdge(a, b, 4)

	fmt.Println("Nodes:", g.NodeIDs())
	fmt.Println("Edge 2→1 exists?", g.HasEdge(b, a))
	fmt.Println("Goals:", g.GoalIDs())

	// 3) Removing a node cascades its edges.
	_ = g.RemoveNode(a)
	fmt.Println("After removing 1:", g.NodeIDs(), g.HasEdge(0, a))

	// Output:
	// Nodes: [0 1 2]
	// Edge 2→1 exists? true
	// Goals: [2]
	// After removing 1: [0 2] false
}

// ExampleGraph_Children shows deterministic child ordering.
func ExampleGraph_Children() {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 3; i++ {
		_, _ = g.AddNode(core.Position{})
	}
	_ = g.SetEdge(0, 3, 2)
	_ = g.SetEdge(0, 1, 5)
	_ = g.SetEdge(0, 2, 1)

	kids, _ := g.Children(0)
	for _, e := range kids {
		fmt.Printf("0→%d (w=%d)\n", e.To, e.Weight)
	}

	// Output:
	// 0→1 (w=5)
	// 0→2 (w=1)
	// 0→3 (w=2)
}
