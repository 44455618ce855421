// SPDX-License-Identifier: MIT
// Package: stepsearch/search
//
// tree.go - single-direction strategies and the iterative-deepening driver.
//
// Contract:
//   • One Step returns after exactly one new visited mark, or a terminal result.
//   • Goal test on pop, before the visited check.
//   • Depth-limited: visited pops above the limit are re-expanded, never re-marked.
//   • Iterative deepening resets the graph before each limit 2..max.

package search

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// treeSearch runs every single-direction strategy; only the fringe and the
// depth limit differ between them.
//
// The source is expanded without changing its state, so it is tracked by
// sourceDone rather than by StateVisited. Its expansion shares a step with
// the first node actually marked visited.
type treeSearch struct {
	h          *Handle
	graph      *core.Graph
	source     int
	fringe     fringe
	limit      int // 0 = unlimited
	sourceDone bool
}

func newTreeSearch(h *Handle, alg Algorithm, source, limit int) *treeSearch {
	t := &treeSearch{
		h:      h,
		graph:  h.agent.graph,
		source: source,
		fringe: newFringe(alg),
	}
	if alg == DepthLimited || alg == IterativeDeepening {
		t.limit = limit
	}
	heuristic, _ := t.graph.Heuristic(source)
	t.fringe.pushAll([]Record{root(source, heuristic)})

	return t
}

func (t *treeSearch) depthLimit() int { return t.limit }

// step pops until one node turns visited or the search ends.
// Items for already-visited nodes are discarded: the first pop wins. Under a
// depth limit, a visited node popped again above the limit is re-expanded
// without a new mark.
func (t *treeSearch) step() StepResult {
	for t.fringe.len() > 0 {
		rec := t.fringe.pop()
		st, err := t.graph.State(rec.ID)
		if err != nil {
			return failed(fmt.Errorf("%w: %v", ErrGraphChanged, err))
		}
		if st == core.StateGoal {
			return succeeded(rec, -1)
		}
		if t.visited(rec.ID, st) {
			if t.limit > 0 && rec.Depth() < t.limit {
				succ, err := t.expand(rec)
				if err != nil {
					return failed(err)
				}
				t.fringe.pushAll(succ)
			}
			continue
		}

		marked := -1
		if rec.ID == t.source {
			t.sourceDone = true
		} else {
			if err = t.h.agent.mark(t.h, rec.ID, core.StateVisited); err != nil {
				return failed(err)
			}
			marked = rec.ID
		}

		if t.limit == 0 || rec.Depth() < t.limit {
			succ, err := t.expand(rec)
			if err != nil {
				return failed(err)
			}
			t.fringe.pushAll(succ)
		}
		if marked >= 0 {
			return continuing(marked)
		}
	}

	return failed(nil)
}

func (t *treeSearch) visited(id int, st core.State) bool {
	return st == core.StateVisited || (id == t.source && t.sourceDone)
}

// expand builds successor records in ascending neighbour id order, skipping
// neighbours that are already visited.
func (t *treeSearch) expand(rec Record) ([]Record, error) {
	edges, err := t.graph.Children(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGraphChanged, err)
	}
	out := make([]Record, 0, len(edges))
	for _, e := range edges {
		st, err := t.graph.State(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGraphChanged, err)
		}
		if t.visited(e.To, st) {
			continue
		}
		heuristic, err := t.graph.Heuristic(e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrGraphChanged, err)
		}
		out = append(out, rec.child(e.To, e.Weight, heuristic))
	}

	return out, nil
}

// deepening repeats depth-limited search for limits 1..max, resetting the
// graph between iterations. It succeeds at the first limit that reaches a
// goal and fails only after max is exhausted.
type deepening struct {
	h      *Handle
	source int
	max    int
	inner  *treeSearch
}

func newDeepening(h *Handle, source, max int) *deepening {
	return &deepening{
		h:      h,
		source: source,
		max:    max,
		inner:  newTreeSearch(h, IterativeDeepening, source, 1),
	}
}

func (d *deepening) depthLimit() int { return d.inner.limit }

func (d *deepening) step() StepResult {
	for {
		res := d.inner.step()
		if res.Outcome != Failed || res.Err != nil || d.inner.limit >= d.max {
			return res
		}
		next := d.inner.limit + 1
		d.h.agent.resetGraph(d.h)
		d.inner = newTreeSearch(d.h, IterativeDeepening, d.source, next)
	}
}
