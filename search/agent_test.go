package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

func TestNewAgent_NilGraph(t *testing.T) {
	_, err := search.NewAgent(nil)
	assert.ErrorIs(t, err, search.ErrGraphNil)
}

func TestStart_Validation(t *testing.T) {
	g := pathGraph(t, 3)
	a, err := search.NewAgent(g)
	require.NoError(t, err)

	_, err = a.Start("dijkstra", search.Params{})
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = a.Start(search.DepthLimited, search.Params{Limit: -1})
	assert.ErrorIs(t, err, search.ErrBadLimit)
	assert.Contains(t, err.Error(), "must not be negative")

	require.NoError(t, g.SetNodeState(2, core.StateEmpty))
	_, err = a.Start(search.BreadthFirst, search.Params{})
	assert.ErrorIs(t, err, search.ErrNoGoal)

	require.NoError(t, g.SetNodeState(1, core.StateGoal))
	require.NoError(t, g.SetNodeState(2, core.StateGoal))
	_, err = a.Start(search.Bidirectional, search.Params{})
	assert.ErrorIs(t, err, search.ErrAmbiguousGoal)

	assert.Equal(t, search.StatusIdle, a.Status(), "validation failures never reserve the agent")

	h, err := a.Start(search.DepthLimited, search.Params{Limit: 0})
	require.NoError(t, err, "0 selects the default limit")
	assert.True(t, h.Abort())
}

func TestReserve_RejectsWhileSearching(t *testing.T) {
	g := pathGraph(t, 6)
	a, h := start(t, g, search.BreadthFirst, search.Params{})
	require.Equal(t, search.StatusSearching, a.Status())

	res := h.Step()
	require.Equal(t, search.Continuing, res.Outcome)
	before := g.States()
	visited := a.NodesVisited()

	assert.False(t, a.Reserve())
	_, err := a.Start(search.DepthFirst, search.Params{})
	assert.ErrorIs(t, err, search.ErrAgentBusy)

	assert.Equal(t, before, g.States(), "rejection mutates nothing")
	assert.Equal(t, visited, a.NodesVisited())
	assert.Equal(t, search.StatusSearching, a.Status())

	// the in-flight search is untouched and completes
	_, final := drive(t, h)
	assert.Equal(t, search.Success, final.Outcome)
}

func TestReserve_FromTerminalResetsCounter(t *testing.T) {
	g := pathGraph(t, 4)
	a, h := start(t, g, search.BreadthFirst, search.Params{})
	drive(t, h)
	require.Equal(t, search.StatusSuccess, a.Status())
	require.Equal(t, 2, a.NodesVisited())

	require.True(t, a.Reserve())
	assert.Equal(t, search.StatusSearching, a.Status())
	assert.Zero(t, a.NodesVisited())
}

func TestResetGraph_IdempotentAndKeepsEndpoints(t *testing.T) {
	g := pathGraph(t, 5)
	a, h := start(t, g, search.DepthFirst, search.Params{})
	drive(t, h)
	require.Equal(t, 3, g.CountState(core.StatePath))

	a.ResetGraph()
	once := g.States()
	a.ResetGraph()
	assert.Equal(t, once, g.States())
	assert.Equal(t, core.StateSource, once[0])
	assert.Equal(t, core.StateGoal, once[4])
	assert.Equal(t, 3, g.CountState(core.StateEmpty))
}

func TestStart_ResetsPreviousMarks(t *testing.T) {
	g := pathGraph(t, 4)
	a, h := start(t, g, search.BreadthFirst, search.Params{})
	drive(t, h)

	h2, err := a.Start(search.BreadthFirst, search.Params{})
	require.NoError(t, err)
	assert.Zero(t, g.CountState(core.StatePath))
	assert.Zero(t, g.CountState(core.StateVisited))
	assert.NotEqual(t, h.ID(), h2.ID())
}

func TestHandle_TerminalIsSticky(t *testing.T) {
	g := pathGraph(t, 3)
	_, h := start(t, g, search.BreadthFirst, search.Params{})
	_, final := drive(t, h)
	steps := h.Steps()
	states := g.States()

	again := h.Step()
	assert.Equal(t, final, again)
	assert.Equal(t, steps, h.Steps())
	assert.Equal(t, states, g.States())
	res, done := h.Result()
	assert.True(t, done)
	assert.Equal(t, final, res)
}

func TestHandle_Abort(t *testing.T) {
	g := pathGraph(t, 6)
	a, h := start(t, g, search.BreadthFirst, search.Params{})
	h.Step()
	h.Step()

	require.True(t, h.Abort())
	res, done := h.Result()
	require.True(t, done)
	assert.Equal(t, search.Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, search.ErrAborted)
	assert.Equal(t, search.StatusFailed, a.Status())
	assert.Equal(t, 2, g.CountState(core.StateVisited), "explored nodes stay visited")
	assert.Equal(t, core.StateSource, g.States()[0])

	assert.False(t, h.Abort(), "abort on a finished search is a no-op")
	assert.Equal(t, search.StatusFailed, a.Status())
}

func TestHandle_AbortDoesNotRewriteSuccess(t *testing.T) {
	g := pathGraph(t, 3)
	a, h := start(t, g, search.BreadthFirst, search.Params{})
	drive(t, h)

	assert.False(t, h.Abort())
	assert.Equal(t, search.StatusSuccess, a.Status())
	assert.True(t, h.Summary().Found())
}

func TestHandle_RunWithCancelledContext(t *testing.T) {
	g := pathGraph(t, 6)
	_, h := start(t, g, search.BreadthFirst, search.Params{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := h.Run(ctx)
	assert.Equal(t, search.Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, search.ErrAborted)
	assert.Zero(t, h.Steps())
}

func TestHandle_Run(t *testing.T) {
	g := pathGraph(t, 6)
	_, h := start(t, g, search.UniformCost, search.Params{})
	res := h.Run(context.Background())
	require.Equal(t, search.Success, res.Outcome)
	assert.Equal(t, int64(5), res.Record.Cost)
}

func TestStep_GraphChangedFailsSearch(t *testing.T) {
	g := pathGraph(t, 4)
	_, h := start(t, g, search.BreadthFirst, search.Params{})
	require.Equal(t, 1, h.Step().Visited)

	// node 2 is queued; pull it out from under the search
	require.NoError(t, g.RemoveNode(2))
	res := h.Step()
	assert.Equal(t, search.Failed, res.Outcome)
	assert.ErrorIs(t, res.Err, search.ErrGraphChanged)
}

func TestObserver_SeesEveryTransition(t *testing.T) {
	g := pathGraph(t, 5)
	var (
		started     []search.Algorithm
		transitions []core.State
		summaries   []search.Summary
	)
	hooks := search.Hooks{
		Start: func(_ uuid.UUID, alg search.Algorithm) { started = append(started, alg) },
		Transition: func(_ uuid.UUID, _ search.Algorithm, _ int, _, to core.State) {
			transitions = append(transitions, to)
		},
		Finish: func(sum search.Summary) { summaries = append(summaries, sum) },
	}
	a, h := start(t, g, search.BreadthFirst, search.Params{}, search.WithObserver(hooks), search.WithObserver(nil))
	drive(t, h)

	assert.Equal(t, []search.Algorithm{search.BreadthFirst}, started)
	assert.Equal(t, []core.State{
		core.StateVisited, core.StateVisited, core.StateVisited,
		core.StatePath, core.StatePath, core.StatePath,
	}, transitions)
	require.Len(t, summaries, 1)
	assert.Equal(t, a.NodesVisited(), summaries[0].NodesVisited)

	// a second search reports the reset of the previous marks
	transitions = nil
	_, err := a.Start(search.BreadthFirst, search.Params{})
	require.NoError(t, err)
	assert.Equal(t, []core.State{core.StateEmpty, core.StateEmpty, core.StateEmpty}, transitions)
}

func TestSummary(t *testing.T) {
	g := pathGraph(t, 4)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	fixed := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	_, h := start(t, g, search.BreadthFirst, search.Params{},
		search.WithClock(now), search.WithIDGenerator(func() uuid.UUID { return fixed }))
	assert.Zero(t, h.Summary().Steps, "no summary before the end")
	drive(t, h)

	sum := h.Summary()
	assert.Equal(t, fixed, sum.ID)
	assert.Equal(t, search.BreadthFirst, sum.Algorithm)
	assert.True(t, sum.Found())
	assert.Equal(t, int64(3), sum.PathCost)
	assert.Equal(t, 3, sum.PathEdges)
	assert.Equal(t, []int{0, 1, 2, 3}, sum.Path)
	assert.Equal(t, 2, sum.NodesVisited)
	assert.Equal(t, 3, sum.Steps)
	assert.Equal(t, -1, sum.Meeting)
	assert.Equal(t, time.Second, sum.Elapsed)
	assert.NoError(t, sum.Err)
}

func TestCatalogue(t *testing.T) {
	infos := search.ListAlgorithms()
	require.Len(t, infos, 8)
	names := make([]search.Algorithm, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Equal(t, []search.Algorithm{
		search.BreadthFirst, search.DepthFirst, search.DepthLimited, search.IterativeDeepening,
		search.UniformCost, search.Greedy, search.AStar, search.Bidirectional,
	}, names)
	assert.Equal(t, search.DefaultDepthLimit, infos[2].Default)
	assert.Equal(t, search.DefaultMaxLimit, infos[3].Default)

	for in, want := range map[string]search.Algorithm{
		"a*": search.AStar, "A-Star": search.AStar, " bfs ": search.BreadthFirst,
		"depth-limit": search.DepthLimited, "bidirectional": search.Bidirectional,
	} {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("beam")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
	assert.Equal(t, "searching", search.StatusSearching.String())
	assert.Equal(t, "continuing", search.Continuing.String())
}
