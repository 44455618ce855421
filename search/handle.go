package search

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// stepper is one strategy's resumable state.
// step performs one unit of work and returns a result; it is never called
// again after returning a terminal result.
type stepper interface {
	step() StepResult
}

// limiter is implemented by depth-bounded steppers.
type limiter interface {
	depthLimit() int
}

// Handle is a running (or finished) search. The driver calls Step at its own
// cadence; the handle never schedules itself.
type Handle struct {
	id    uuid.UUID
	agent *Agent
	alg   Algorithm
	run   stepper

	steps   int
	started time.Time
	done    bool
	result  StepResult
	summary Summary
}

// ID identifies the search in observer events.
func (h *Handle) ID() uuid.UUID { return h.id }

// Algorithm returns the strategy this handle runs.
func (h *Handle) Algorithm() Algorithm { return h.alg }

// Done reports whether the search reached a terminal outcome.
func (h *Handle) Done() bool { return h.done }

// Steps returns how many Step calls did work.
func (h *Handle) Steps() int { return h.steps }

// Step performs one unit of work: at most one node becomes visited, or the
// search terminates. On a finished handle Step returns the terminal result
// again without touching the graph.
func (h *Handle) Step() StepResult {
	if h.done {
		return h.result
	}
	h.steps++
	res := h.run.step()
	if res.Done() {
		return h.finish(res)
	}

	return res
}

// Abort ends an in-flight search as Failed with ErrAborted.
// It reports false, changing nothing, when the search already finished.
func (h *Handle) Abort() bool {
	if h.done {
		return false
	}
	h.finish(failed(ErrAborted))

	return true
}

// Run steps until a terminal outcome. A cancelled ctx aborts the search.
func (h *Handle) Run(ctx context.Context) StepResult {
	for !h.done {
		select {
		case <-ctx.Done():
			h.Abort()
			return h.result
		default:
		}
		h.Step()
	}

	return h.result
}

// Result returns the terminal result, and false while the search is running.
func (h *Handle) Result() (StepResult, bool) { return h.result, h.done }

// Summary returns the final report; zero-valued until the search is done.
func (h *Handle) Summary() Summary { return h.summary }

// finish hands the terminal result to the agent, freezes it and notifies observers.
func (h *Handle) finish(res StepResult) StepResult {
	a := h.agent
	res = a.finished(h, res)
	h.done = true
	h.result = res

	sum := Summary{
		ID:           h.id,
		Algorithm:    h.alg,
		Status:       a.status,
		Meeting:      res.Meeting,
		NodesVisited: a.visited,
		Steps:        h.steps,
		Elapsed:      a.opts.Now().Sub(h.started),
		Err:          res.Err,
	}
	if l, ok := h.run.(limiter); ok {
		sum.Limit = l.depthLimit()
	}
	if res.Record != nil {
		sum.PathCost = res.Record.Cost
		sum.PathEdges = len(res.Record.Path)
		sum.Path = res.Record.Nodes()
	}
	h.summary = sum
	for _, o := range a.opts.Observers {
		o.OnFinish(sum)
	}

	return res
}
