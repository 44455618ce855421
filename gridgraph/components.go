package gridgraph

import "sort"

// ConnectedComponents finds all contiguous regions of walkable cells under
// the configured connectivity. Components appear in row-major order of
// their first cell; each lists its cell indexes ascending.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !gg.Walkable(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) || gg.Costs[vy][vx] == Wall {
					continue
				}
				if vi := gg.index(vx, vy); !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		sort.Ints(queue)
		comps = append(comps, queue)
	}

	return comps
}

// Reachable reports whether some goal shares the source's component.
func (gg *GridGraph) Reachable() bool {
	for _, comp := range gg.ConnectedComponents() {
		i := sort.SearchInts(comp, gg.Source)
		if i == len(comp) || comp[i] != gg.Source {
			continue
		}
		for _, goal := range gg.Goals {
			if j := sort.SearchInts(comp, goal); j < len(comp) && comp[j] == goal {
				return true
			}
		}
		return false
	}

	return false
}
