package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/pqueue"
	"github.com/katalvlaran/stepsearch/search"
)

// edge is a test fixture edge.
type edge struct {
	from, to int
	w        int64
}

// build creates a graph with ids 0..n-1 (0 is the source), the given edges
// and goal nodes.
func build(t testing.TB, n int, directed bool, edges []edge, goals ...int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	for i := 1; i < n; i++ {
		_, err := g.AddNode(core.Position{X: float64(i)})
		require.NoError(t, err)
	}
	for _, e := range edges {
		require.NoError(t, g.SetEdge(e.from, e.to, e.w))
	}
	for _, id := range goals {
		require.NoError(t, g.SetNodeState(id, core.StateGoal))
	}

	return g
}

// pathGraph is the undirected unit-weight line 0–1–…–(n-1) with the last node as goal.
func pathGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges := make([]edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, edge{i - 1, i, 1})
	}

	return build(t, n, false, edges, n-1)
}

// randomGraph returns n nodes and m random undirected edges with weights in [1,9].
func randomGraph(t testing.TB, r *rand.Rand, n, m int) *core.Graph {
	t.Helper()
	g := build(t, n, false, nil)
	for added := 0; added < m; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v || g.HasEdge(u, v) {
			continue
		}
		require.NoError(t, g.SetEdge(u, v, int64(1+r.Intn(9))))
		added++
	}

	return g
}

// drive steps h to completion and returns the nodes marked visited, in order.
func drive(t testing.TB, h *search.Handle) ([]int, search.StepResult) {
	t.Helper()
	var seq []int
	for i := 0; i < 100000; i++ {
		res := h.Step()
		if res.Done() {
			return seq, res
		}
		require.GreaterOrEqual(t, res.Visited, 0, "a continuing step marks exactly one node")
		seq = append(seq, res.Visited)
	}
	t.Fatal("search did not terminate")

	return nil, search.StepResult{}
}

// start creates an agent on g and starts alg.
func start(t testing.TB, g *core.Graph, alg search.Algorithm, p search.Params, opts ...search.Option) (*search.Agent, *search.Handle) {
	t.Helper()
	a, err := search.NewAgent(g, opts...)
	require.NoError(t, err)
	h, err := a.Start(alg, p)
	require.NoError(t, err)

	return a, h
}

// hopDistances is a reference BFS over outgoing edges.
func hopDistances(t testing.TB, g *core.Graph, from int) map[int]int {
	t.Helper()
	dist := map[int]int{from: 0}
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		kids, err := g.Children(u)
		require.NoError(t, err)
		for _, e := range kids {
			if _, ok := dist[e.To]; !ok {
				dist[e.To] = dist[u] + 1
				queue = append(queue, e.To)
			}
		}
	}

	return dist
}

// costDistances is a reference Dijkstra over outgoing edges.
func costDistances(t testing.TB, g *core.Graph, from int) map[int]int64 {
	t.Helper()
	dist := map[int]int64{}
	for _, id := range g.NodeIDs() {
		dist[id] = math.MaxInt64
	}
	dist[from] = 0
	q := pqueue.New[int](g.Len())
	q.Add(from, 0)
	done := map[int]bool{}
	for q.IsNotEmpty() {
		u := q.Pop()
		if done[u] {
			continue
		}
		done[u] = true
		kids, err := g.Children(u)
		require.NoError(t, err)
		for _, e := range kids {
			if nd := dist[u] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				q.Add(e.To, nd)
			}
		}
	}

	return dist
}

// pathWeight sums the edge weights along nodes.
func pathWeight(t testing.TB, g *core.Graph, nodes []int) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(nodes); i++ {
		w, err := g.Weight(nodes[i-1], nodes[i])
		require.NoError(t, err)
		total += w
	}

	return total
}
