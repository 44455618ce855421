// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in the single-source invariant and sequential id assignment.
//   - Validate fail-fast mutation checks (weights, loops, dangling ids).
//   - Anchor ordering guarantees (NodeIDs/Children/Predecessors ascending).

package core_test

import (
	"testing"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds an undirected path 0–1–…–(n-1) with unit weights.
func line(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		id, err := g.AddNode(core.Position{X: float64(i)})
		require.NoError(t, err)
		require.NoError(t, g.SetEdge(id-1, id, 1))
	}

	return g
}

func TestNewGraph_SeedsSource(t *testing.T) {
	g := core.NewGraph(core.WithSourcePosition(core.Position{X: 3, Y: 4}))

	require.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.SourceID())
	n, err := g.Node(0)
	require.NoError(t, err)
	assert.Equal(t, core.StateSource, n.State)
	assert.Equal(t, core.Position{X: 3, Y: 4}, n.Position)
	assert.False(t, g.Directed())
}

func TestAddNode_SequentialIDsNeverReused(t *testing.T) {
	g := core.NewGraph()
	a, err := g.AddNode(core.Position{})
	require.NoError(t, err)
	b, err := g.AddNode(core.Position{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, []int{a, b})

	require.NoError(t, g.RemoveNode(b))
	c, err := g.AddNode(core.Position{})
	require.NoError(t, err)
	assert.Equal(t, 3, c, "removed id must not be handed out again")
	assert.Equal(t, []int{0, 1, 3}, g.NodeIDs())
}

func TestAddNode_Options(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddNode(core.Position{}, core.WithState(core.StateSource))
	assert.ErrorIs(t, err, core.ErrSourceImmutable)

	_, err = g.AddNode(core.Position{}, core.WithState(core.State(42)))
	assert.ErrorIs(t, err, core.ErrBadState)

	_, err = g.AddNode(core.Position{}, core.WithHeuristic(-1))
	assert.ErrorIs(t, err, core.ErrBadHeuristic)

	id, err := g.AddNode(core.Position{}, core.WithState(core.StateGoal), core.WithHeuristic(9))
	require.NoError(t, err)
	n, err := g.Node(id)
	require.NoError(t, err)
	assert.Equal(t, core.StateGoal, n.State)
	assert.Zero(t, n.Heuristic, "goal heuristic is forced to 0")
}

func TestRemoveNode_CascadesEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	a, _ := g.AddNode(core.Position{})
	b, _ := g.AddNode(core.Position{})
	require.NoError(t, g.SetEdge(0, b, 2))
	require.NoError(t, g.SetEdge(a, b, 3))
	require.NoError(t, g.SetEdge(b, a, 4))

	require.NoError(t, g.RemoveNode(b))
	assert.False(t, g.HasNode(b))
	assert.False(t, g.HasEdge(0, b))
	assert.False(t, g.HasEdge(a, b))
	assert.Equal(t, 0, g.EdgeCount())

	assert.ErrorIs(t, g.RemoveNode(b), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.RemoveNode(0), core.ErrSourceImmutable)
}

func TestSetEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Position{})

	assert.ErrorIs(t, g.SetEdge(0, a, 0), core.ErrBadWeight)
	assert.ErrorIs(t, g.SetEdge(0, a, -3), core.ErrBadWeight)
	assert.ErrorIs(t, g.SetEdge(a, a, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.SetEdge(0, 99, 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.SetEdge(99, 0, 1), core.ErrNodeNotFound)
	assert.Equal(t, 0, g.EdgeCount(), "rejected mutations leave no trace")
}

func TestSetEdge_MirroringAndOverrides(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode(core.Position{})
	b, _ := g.AddNode(core.Position{})

	require.NoError(t, g.SetEdge(0, a, 5))
	assert.True(t, g.HasEdge(a, 0), "undirected default mirrors")

	require.NoError(t, g.SetEdge(a, b, 2, core.WithMirrored(false)))
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))

	// overwrite updates both directions
	require.NoError(t, g.SetEdge(a, 0, 7))
	w, err := g.Weight(0, a)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)

	d := core.NewGraph(core.WithDirected(true))
	x, _ := d.AddNode(core.Position{})
	require.NoError(t, d.SetEdge(0, x, 1))
	assert.False(t, d.HasEdge(x, 0))
	require.NoError(t, d.SetEdge(0, x, 1, core.WithMirrored(true)))
	assert.True(t, d.HasEdge(x, 0))
}

func TestRemoveEdge(t *testing.T) {
	g := line(t, 3)

	require.NoError(t, g.RemoveEdge(1, 0))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))

	require.NoError(t, g.RemoveEdge(1, 2, core.WithMirrored(false)))
	assert.False(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))

	assert.ErrorIs(t, g.RemoveEdge(0, 2), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.RemoveEdge(0, 77), core.ErrNodeNotFound)

	_, err := g.Weight(0, 1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestChildrenAndPredecessors_Ordered(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 4; i++ {
		_, err := g.AddNode(core.Position{})
		require.NoError(t, err)
	}
	require.NoError(t, g.SetEdge(0, 4, 1))
	require.NoError(t, g.SetEdge(0, 2, 3))
	require.NoError(t, g.SetEdge(0, 3, 2))
	require.NoError(t, g.SetEdge(1, 3, 1))

	kids, err := g.Children(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 2, Weight: 3}, {To: 3, Weight: 2}, {To: 4, Weight: 1}}, kids)

	preds := g.Predecessors()
	assert.Equal(t, []int{0, 1}, preds[3])
	assert.Empty(t, preds[0])
	assert.Len(t, preds, 5)

	_, err = g.Children(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestSetNodeState_SourceInvariant(t *testing.T) {
	g := line(t, 3)

	assert.ErrorIs(t, g.SetNodeState(0, core.StateVisited), core.ErrSourceImmutable)
	assert.ErrorIs(t, g.SetNodeState(1, core.StateSource), core.ErrSourceImmutable)
	assert.NoError(t, g.SetNodeState(0, core.StateSource))
	assert.ErrorIs(t, g.SetNodeState(1, core.State(9)), core.ErrBadState)
	assert.ErrorIs(t, g.SetNodeState(9, core.StateGoal), core.ErrNodeNotFound)
	assert.Equal(t, 1, g.CountState(core.StateSource))
}

func TestGoalAndHeuristic(t *testing.T) {
	g := line(t, 3)
	require.NoError(t, g.SetHeuristic(2, 6))

	st, err := g.ToggleGoal(2)
	require.NoError(t, err)
	assert.Equal(t, core.StateGoal, st)
	n, _ := g.Node(2)
	assert.Zero(t, n.Heuristic)
	assert.ErrorIs(t, g.SetHeuristic(2, 1), core.ErrBadHeuristic)
	assert.NoError(t, g.SetHeuristic(2, 0))
	assert.Equal(t, []int{2}, g.GoalIDs())

	st, err = g.ToggleGoal(2)
	require.NoError(t, err)
	assert.Equal(t, core.StateEmpty, st)
	assert.Empty(t, g.GoalIDs())

	_, err = g.ToggleGoal(0)
	assert.ErrorIs(t, err, core.ErrSourceImmutable)
	assert.ErrorIs(t, g.SetHeuristic(1, -2), core.ErrBadHeuristic)
}

func TestResetSearchStates_Idempotent(t *testing.T) {
	g := line(t, 5)
	require.NoError(t, g.SetNodeState(1, core.StateVisited))
	require.NoError(t, g.SetNodeState(2, core.StatePath))
	require.NoError(t, g.SetNodeState(4, core.StateGoal))

	changed := g.ResetSearchStates()
	assert.Equal(t, []int{1, 2}, changed)
	once := g.States()

	assert.Empty(t, g.ResetSearchStates())
	assert.Equal(t, once, g.States())
	assert.Equal(t, core.StateSource, once[0])
	assert.Equal(t, core.StateGoal, once[4])
}

func TestNode_ReturnsCopy(t *testing.T) {
	g := line(t, 2)
	n, err := g.Node(0)
	require.NoError(t, err)
	n.Children[1] = 100
	n.State = core.StateGoal

	w, _ := g.Weight(0, 1)
	assert.Equal(t, int64(1), w)
	st, _ := g.State(0)
	assert.Equal(t, core.StateSource, st)
}

func TestCloneAndClear(t *testing.T) {
	g := line(t, 4)
	require.NoError(t, g.SetHeuristic(0, 3))
	c := g.Clone()

	g.Clear()
	assert.Equal(t, []int{0}, g.NodeIDs())
	assert.Equal(t, 0, g.EdgeCount())
	id, err := g.AddNode(core.Position{})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	// the clone is untouched and keeps its own counter
	assert.Equal(t, []int{0, 1, 2, 3}, c.NodeIDs())
	assert.True(t, c.HasEdge(2, 3))
	next, err := c.AddNode(core.Position{})
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestParseState(t *testing.T) {
	for _, s := range []core.State{core.StateEmpty, core.StateSource, core.StateGoal, core.StateVisited, core.StatePath} {
		got, err := core.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := core.ParseState("")
	require.NoError(t, err)
	assert.Equal(t, core.StateEmpty, got)

	_, err = core.ParseState("frontier")
	assert.ErrorIs(t, err, core.ErrBadState)
	assert.Equal(t, "unknown", core.State(200).String())
}
