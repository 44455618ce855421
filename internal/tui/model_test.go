package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// line builds the undirected unit line 0–1–…–(n-1) with the last node as goal.
func line(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_, err := g.AddNode(core.Position{X: float64(10 * i), Y: float64(i % 2)})
		require.NoError(t, err)
		require.NoError(t, g.SetEdge(i-1, i, 1))
	}
	require.NoError(t, g.SetNodeState(n-1, core.StateGoal))

	return g
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)

	return nm, cmd
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, Config{Algorithm: search.BreadthFirst})
	assert.ErrorIs(t, err, ErrGraphNil)

	g := core.NewGraph()
	_, err = New(g, Config{Algorithm: search.BreadthFirst})
	assert.ErrorIs(t, err, search.ErrNoGoal)

	m, err := New(line(t, 3), Config{Algorithm: search.BreadthFirst})
	require.NoError(t, err)
	assert.Equal(t, DefaultInterval, m.cfg.Interval)
	assert.Equal(t, "stepsearch", m.cfg.Title)
}

func TestUpdate_SingleStepWhilePaused(t *testing.T) {
	g := line(t, 4)
	m, err := New(g, Config{Algorithm: search.BreadthFirst, Paused: true})
	require.NoError(t, err)

	m, _ = update(t, m, runes("n"))
	assert.Equal(t, 1, m.last.Visited)
	m, _ = update(t, m, runes("n"))
	assert.Equal(t, 2, m.last.Visited)
	m, _ = update(t, m, runes("n"))
	assert.Equal(t, search.Success, m.last.Outcome)
	assert.True(t, m.Summary().Found())

	steps := m.handle.Steps()
	m, _ = update(t, m, runes("n"))
	assert.Equal(t, steps, m.handle.Steps(), "stepping a finished search does nothing")
	assert.Equal(t, 2, g.CountState(core.StatePath))
}

func TestUpdate_TicksDriveSearch(t *testing.T) {
	m, err := New(line(t, 4), Config{Algorithm: search.UniformCost, Interval: time.Millisecond})
	require.NoError(t, err)
	require.NotNil(t, m.Init())

	var cmd tea.Cmd
	for i := 0; i < 10 && !m.handle.Done(); i++ {
		m, cmd = update(t, m, tickMsg{seq: m.seq})
		if !m.handle.Done() {
			assert.NotNil(t, cmd, "a running search schedules the next tick")
		}
	}
	require.True(t, m.handle.Done())
	assert.Nil(t, cmd, "ticking stops once the search is done")
	assert.Equal(t, int64(3), m.Summary().PathCost)
}

func TestUpdate_StaleTickIgnored(t *testing.T) {
	m, err := New(line(t, 4), Config{Algorithm: search.BreadthFirst})
	require.NoError(t, err)
	stale := m.seq

	m, _ = update(t, m, runes(" "))
	require.True(t, m.paused)
	m, cmd := update(t, m, tickMsg{seq: stale})
	assert.Nil(t, cmd)
	assert.Zero(t, m.handle.Steps())

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.False(t, m.paused)
	assert.NotNil(t, cmd, "resuming schedules a new tick")
	m, _ = update(t, m, tickMsg{seq: stale})
	assert.Zero(t, m.handle.Steps(), "ticks from before the pause stay retired")
	m, _ = update(t, m, tickMsg{seq: m.seq})
	assert.Equal(t, 1, m.handle.Steps())
}

func TestUpdate_RestartResetsGraph(t *testing.T) {
	g := line(t, 5)
	m, err := New(g, Config{Algorithm: search.DepthFirst, Paused: true})
	require.NoError(t, err)
	m, _ = update(t, m, runes("n"))
	m, _ = update(t, m, runes("n"))
	require.Equal(t, 2, g.CountState(core.StateVisited))
	first := m.handle

	m, _ = update(t, m, runes("r"))
	assert.NotSame(t, first, m.handle)
	assert.True(t, first.Done(), "the previous search is aborted")
	assert.Zero(t, g.CountState(core.StateVisited))
	assert.Zero(t, m.handle.Steps())
}

func TestUpdate_RestartErrorIsShown(t *testing.T) {
	g := line(t, 3)
	m, err := New(g, Config{Algorithm: search.BreadthFirst, Paused: true})
	require.NoError(t, err)
	require.NoError(t, g.SetNodeState(2, core.StateEmpty))

	m, _ = update(t, m, runes("r"))
	assert.ErrorIs(t, m.err, search.ErrNoGoal)
	assert.Contains(t, m.View(), "no goal")
}

func TestUpdate_Quit(t *testing.T) {
	m, err := New(line(t, 3), Config{Algorithm: search.BreadthFirst})
	require.NoError(t, err)
	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.handle.Done())
}

func TestView(t *testing.T) {
	m, err := New(line(t, 5), Config{Algorithm: search.Bidirectional, Paused: true, Title: "demo"})
	require.NoError(t, err)
	assert.Contains(t, m.View(), "demo")
	assert.Contains(t, m.View(), "paused")
	assert.Contains(t, m.View(), "started bidirectional")

	for !m.handle.Done() {
		m, _ = update(t, m, runes("n"))
	}
	v := m.View()
	assert.Contains(t, v, "success")
	assert.Contains(t, v, "met at 2")
	assert.Contains(t, v, "visited → path")
	assert.Contains(t, v, "pause/resume")
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0, scale(5, 5, 5, 10), "degenerate range")
	assert.Equal(t, 0, scale(0, 0, 10, 10))
	assert.Equal(t, 10, scale(10, 0, 10, 10))
	assert.Equal(t, 5, scale(5, 0, 10, 10))
	assert.Equal(t, 0, scale(3, 0, 10, 0))
}

func TestEventsBounded(t *testing.T) {
	e := &events{}
	for i := 0; i < 3*maxEvents; i++ {
		e.add("x")
	}
	assert.Len(t, e.lines, maxEvents)
}
