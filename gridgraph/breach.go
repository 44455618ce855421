package gridgraph

import "container/list"

// Breach finds the fewest walls whose removal connects the source to some
// goal. It returns the cell path from source to that goal (row-major
// indexes, both ends included) and the number of walls on it; walls is 0
// when a goal is already reachable.
//
// Behavior:
//  1. 0–1 BFS from the source over every cell:
//     • entering a walkable cell → cost 0
//     • entering a wall          → cost 1
//  2. Stop at the first goal popped.
//  3. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Breach() (path []int, walls int) {
	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	goal := make(map[int]bool, len(gg.Goals))
	for _, i := range gg.Goals {
		goal[i] = true
	}

	// cost-0 moves go to the front, cost-1 moves to the back
	dq := list.New()
	dist[gg.Source] = 0
	dq.PushFront(gg.Source)
	target := -1

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if goal[u] {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if gg.Costs[vy][vx] == Wall {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// every cell is enterable here, so a goal is always found
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target]
}
