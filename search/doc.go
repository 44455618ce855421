// Package search runs step-wise graph searches over a core.Graph.
//
// What
//
//   - An Agent owns the search state machine for one graph:
//     Idle → Searching → {Success | Failed}. At most one search is in flight.
//   - Start returns a Handle; every Handle.Step performs one unit of work and
//     leaves exactly one observable change: a node turned visited, or a
//     terminal outcome (path marked, or failure markers left in place).
//   - Eight strategies share one stepping contract:
//
//     breadth-first        FIFO frontier
//     depth-first          LIFO frontier, lowest id popped first
//     depth-limited(L)     LIFO, expands only records with depth < L
//     iterative-deepening  depth-limited for L = 1..M, graph reset per L
//     uniform-cost         priority = cost
//     greedy               priority = heuristic
//     a-star               priority = cost + heuristic
//     bidirectional        two FIFO frontiers, alternating half-steps
//
// Step contract
//
//	pop → goal test → (if not visited) mark visited, expand, push → return
//
// The goal test runs on pop, before the visited check, so a goal is never
// marked visited. Duplicates are suppressed at expansion time only; a node
// may sit in the frontier several times and the first pop wins. The source
// is expanded without leaving StateSource; its expansion is folded into the
// step that marks the first node.
//
// Determinism
//
//	Successors are generated in ascending node id order. The priority
//	strategies break ties FIFO (pqueue), so equal-cost alternatives resolve
//	to the one discovered first.
//
// Errors
//
//	Malformed requests fail in Start before any state change: ErrUnknownAlgorithm,
//	ErrBadLimit, ErrNoGoal, ErrAmbiguousGoal. A second Start while searching
//	returns ErrAgentBusy and touches nothing. An unreachable goal is not an
//	error: the search ends with Outcome Failed.
//
// Concurrency
//
//	No goroutines and no timers: the driver decides when to call Step.
//	The graph must not be mutated while a search is active; if a node
//	vanishes anyway the search fails with ErrGraphChanged.
//
// Usage
//
//	agent, _ := search.NewAgent(g)
//	h, err := agent.Start(search.AStar, search.Params{})
//	if err != nil {
//		// ErrNoGoal, ErrAgentBusy, ...
//	}
//	for res := h.Step(); !res.Done(); res = h.Step() {
//		render(g)
//	}
//	fmt.Println(h.Summary().PathCost)
package search
