package search

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// noParent marks the root of a predecessor chain.
const noParent = -1

// bidirectional alternates half-steps between a forward FIFO frontier rooted
// at the source and a backward one rooted at the goal.
//
// Each side keeps a discovered → predecessor map. The search meets as soon as
// a node popped on one side is already discovered by the other. This is a
// reachability criterion: the joined path is shortest only under uniform
// step cost.
type bidirectional struct {
	h      *Handle
	graph  *core.Graph
	source int
	goal   int
	preds  map[int][]int

	fwd, bwd         []int
	fwdSeen, bwdSeen map[int]int
	forwardTurn      bool
	noGoal           bool
}

func newBidirectional(h *Handle, source int, goals []int) *bidirectional {
	b := &bidirectional{h: h, graph: h.agent.graph, source: source, forwardTurn: true}
	if len(goals) == 0 {
		b.noGoal = true
		return b
	}
	b.goal = goals[0]
	// reverse adjacency is computed once, before the first step
	b.preds = b.graph.Predecessors()
	b.fwd = []int{source}
	b.bwd = []int{b.goal}
	b.fwdSeen = map[int]int{source: noParent}
	b.bwdSeen = map[int]int{b.goal: noParent}

	return b
}

// step runs half-steps until one marks a node visited, the frontiers meet,
// or a frontier runs dry. Popping the source or the goal marks nothing.
func (b *bidirectional) step() StepResult {
	if b.noGoal {
		return failed(nil)
	}
	for len(b.fwd) > 0 && len(b.bwd) > 0 {
		forward := b.forwardTurn
		b.forwardTurn = !b.forwardTurn

		queue, seen, other := &b.bwd, b.bwdSeen, b.fwdSeen
		if forward {
			queue, seen, other = &b.fwd, b.fwdSeen, b.bwdSeen
		}
		node := (*queue)[0]
		*queue = (*queue)[1:]

		if _, ok := other[node]; ok {
			return succeeded(b.join(node), node)
		}

		marked := -1
		if node != b.source && node != b.goal {
			if err := b.h.agent.mark(b.h, node, core.StateVisited); err != nil {
				return failed(err)
			}
			marked = node
		}

		next, err := b.neighbours(node, forward)
		if err != nil {
			return failed(err)
		}
		for _, n := range next {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = node
			*queue = append(*queue, n)
		}
		if marked >= 0 {
			return continuing(marked)
		}
	}

	return failed(nil)
}

// neighbours returns successors (forward) or predecessors (backward), ascending.
func (b *bidirectional) neighbours(node int, forward bool) ([]int, error) {
	if !forward {
		return b.preds[node], nil
	}
	edges, err := b.graph.Children(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGraphChanged, err)
	}
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out, nil
}

// join concatenates source → meet (forward chain) and meet → goal (backward
// chain). The record's cost is the edge count; its Path excludes the goal.
func (b *bidirectional) join(meet int) Record {
	var full []int
	for cur := meet; cur != noParent; cur = b.fwdSeen[cur] {
		full = append(full, cur)
	}
	for i, j := 0, len(full)-1; i < j; i, j = i+1, j-1 {
		full[i], full[j] = full[j], full[i]
	}
	for cur := b.bwdSeen[meet]; cur != noParent; cur = b.bwdSeen[cur] {
		full = append(full, cur)
	}

	return Record{
		ID:   b.goal,
		Cost: int64(len(full) - 1),
		Path: full[:len(full)-1],
	}
}
