package search_test

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// ExampleAgent walks a breadth-first search one step at a time.
func ExampleAgent() {
	// 0 → 1 → 2(goal)
	g := core.NewGraph(core.WithDirected(true))
	a, _ := g.AddNode(core.Position{X: 1})
	b, _ := g.AddNode(core.Position{X: 2}, core.WithState(core.StateGoal))
	_ = g.SetEdge(0, a, 1)
	_ = g.SetEdge(a, b, 1)

	agent, _ := search.NewAgent(g)
	h, err := agent.Start(search.BreadthFirst, search.Params{})
	if err != nil {
		fmt.Println("start:", err)
		return
	}
	for res := h.Step(); ; res = h.Step() {
		if res.Done() {
			fmt.Println("outcome:", res.Outcome, res.Record.Nodes())
			break
		}
		fmt.Println("visited:", res.Visited)
	}
	fmt.Println("states:", g.States())
	fmt.Println("agent:", agent.Status())

	// Output:
	// visited: 1
	// outcome: success [0 1 2]
	// states: map[0:source 1:path 2:goal]
	// agent: success
}

// ExampleHandle_Summary compares uniform-cost and A* on the same graph.
func ExampleHandle_Summary() {
	mk := func() *core.Graph {
		g := core.NewGraph()
		for i := 1; i <= 4; i++ {
			_, _ = g.AddNode(core.Position{X: float64(i)})
		}
		_ = g.SetEdge(0, 1, 1)
		_ = g.SetEdge(0, 2, 1)
		_ = g.SetEdge(1, 3, 1)
		_ = g.SetEdge(2, 4, 1)
		_ = g.SetNodeState(3, core.StateGoal)
		_ = g.SetHeuristic(1, 1)
		_ = g.SetHeuristic(2, 5)
		_ = g.SetHeuristic(4, 6)
		return g
	}

	for _, alg := range []search.Algorithm{search.UniformCost, search.AStar} {
		agent, _ := search.NewAgent(mk())
		h, _ := agent.Start(alg, search.Params{})
		for !h.Step().Done() {
		}
		sum := h.Summary()
		fmt.Printf("%-12s cost=%d path=%v visited=%d\n", sum.Algorithm, sum.PathCost, sum.Path, sum.NodesVisited)
	}

	// Output:
	// uniform-cost cost=2 path=[0 1 3] visited=2
	// a-star       cost=2 path=[0 1 3] visited=1
}

// ExampleParseAlgorithm resolves aliases to canonical names.
func ExampleParseAlgorithm() {
	for _, in := range []string{"BFS", "a*", "ids"} {
		alg, _ := search.ParseAlgorithm(in)
		fmt.Println(in, "→", alg)
	}

	// Output:
	// BFS → breadth-first
	// a* → a-star
	// ids → iterative-deepening
}
