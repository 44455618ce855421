// SPDX-License-Identifier: MIT
//
// File: agent.go
// Role: Agent state machine (Idle → Searching → Success | Failed), Reserve, ResetGraph, Start.
// Policy:
//   - At most one search in flight per agent; Reserve is the only exclusion point.
//   - Every node state change goes through mark so observers see it.

package search

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// Agent orchestrates searches over one graph.
//
// The agent holds a reference to the graph, never a copy. At most one search
// is in flight at a time; Reserve enforces it. Agent is not safe for
// concurrent use: one driver owns it.
type Agent struct {
	graph   *core.Graph
	opts    Options
	status  Status
	visited int
}

// NewAgent binds an agent to g.
// Returns ErrGraphNil for a nil graph.
func NewAgent(g *core.Graph, opts ...Option) (*Agent, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Agent{graph: g, opts: o, status: StatusIdle}, nil
}

// Graph returns the graph the agent searches.
func (a *Agent) Graph() *core.Graph { return a.graph }

// Status returns the state of the agent state machine.
func (a *Agent) Status() Status { return a.status }

// NodesVisited returns how many visited marks the current (or last) search
// has made. Reset to 0 by Reserve.
func (a *Agent) NodesVisited() int { return a.visited }

// Reserve moves the agent from idle or a terminal status to searching and
// zeroes the visited counter. It returns false, changing nothing, when a
// search is already in flight.
func (a *Agent) Reserve() bool {
	if a.status == StatusSearching {
		return false
	}
	a.status = StatusSearching
	a.visited = 0

	return true
}

// ResetGraph reverts every node to empty except the source and goals.
// It runs at the start of every search attempt and is idempotent.
func (a *Agent) ResetGraph() {
	a.resetGraph(nil)
}

// resetGraph performs ResetGraph and reports each change to observers on behalf of h.
func (a *Agent) resetGraph(h *Handle) {
	before := a.graph.States()
	for _, id := range a.graph.ResetSearchStates() {
		a.notifyTransition(h, id, before[id], core.StateEmpty)
	}
}

// Start validates the request, reserves the agent, resets the graph and
// returns a handle positioned before the first step.
//
// Errors, all reported before any state change:
//   - ErrUnknownAlgorithm, ErrBadLimit: malformed request.
//   - ErrNoGoal: no node is in StateGoal.
//   - ErrAmbiguousGoal: bidirectional search with several goals.
//   - ErrAgentBusy: a search is already in flight.
func (a *Agent) Start(alg Algorithm, params Params) (*Handle, error) {
	info, ok := lookup(alg)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	limit := 0
	if info.Param != "" {
		switch {
		case params.Limit < 0:
			return nil, fmt.Errorf("%w: %d", ErrBadLimit, params.Limit)
		case params.Limit == 0:
			limit = info.Default
		default:
			limit = params.Limit
		}
	}

	goals := a.graph.GoalIDs()
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	if alg == Bidirectional && len(goals) > 1 {
		return nil, fmt.Errorf("%w: found %d", ErrAmbiguousGoal, len(goals))
	}

	if !a.Reserve() {
		return nil, ErrAgentBusy
	}

	h := &Handle{
		id:      a.opts.NewID(),
		agent:   a,
		alg:     alg,
		started: a.opts.Now(),
	}
	for _, o := range a.opts.Observers {
		o.OnStart(h.id, alg)
	}
	a.resetGraph(h)

	source := a.graph.SourceID()
	switch alg {
	case IterativeDeepening:
		h.run = newDeepening(h, source, limit)
	case Bidirectional:
		h.run = newBidirectional(h, source, goals)
	default:
		h.run = newTreeSearch(h, alg, source, limit)
	}

	return h, nil
}

// mark sets node id to s on behalf of h, counting first-time visited marks.
func (a *Agent) mark(h *Handle, id int, s core.State) error {
	from, err := a.graph.State(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGraphChanged, err)
	}
	if from == s {
		return nil
	}
	if err = a.graph.SetNodeState(id, s); err != nil {
		return fmt.Errorf("%w: %v", ErrGraphChanged, err)
	}
	if s == core.StateVisited {
		a.visited++
	}
	a.notifyTransition(h, id, from, s)

	return nil
}

// finished records the terminal status and, on success, marks the path.
//
// On success every ancestor in rec.Path becomes path, except the source,
// which keeps StateSource; the goal keeps StateGoal. On failure explored
// nodes stay visited; the source never left StateSource, so there is
// nothing to restore.
func (a *Agent) finished(h *Handle, res StepResult) StepResult {
	if res.Outcome == Success {
		source := a.graph.SourceID()
		for _, id := range res.Record.Path {
			if id == source {
				continue
			}
			if st, err := a.graph.State(id); err == nil && st == core.StateGoal {
				continue
			}
			if err := a.mark(h, id, core.StatePath); err != nil {
				res = failed(err)
				break
			}
		}
	}
	if res.Outcome == Success {
		a.status = StatusSuccess
	} else {
		a.status = StatusFailed
	}

	return res
}

func (a *Agent) notifyTransition(h *Handle, id int, from, to core.State) {
	if h == nil {
		return
	}
	for _, o := range a.opts.Observers {
		o.OnTransition(h.id, h.alg, id, from, to)
	}
}
