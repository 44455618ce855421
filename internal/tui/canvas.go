package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/stepsearch/core"
)

// Canvas size in terminal cells.
const (
	canvasWidth  = 64
	canvasHeight = 14
)

// renderCanvas places node labels at their scaled positions. Later labels
// overwrite earlier ones on collision.
func renderCanvas(g *core.Graph) string {
	ids := g.NodeIDs()
	nodes := make([]core.Node, 0, len(ids))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, id := range ids {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		nodes = append(nodes, n)
		minX, maxX = math.Min(minX, n.Position.X), math.Max(maxX, n.Position.X)
		minY, maxY = math.Min(minY, n.Position.Y), math.Max(maxY, n.Position.Y)
	}

	cells := make([][]string, canvasHeight)
	for r := range cells {
		cells[r] = make([]string, canvasWidth)
		for c := range cells[r] {
			cells[r][c] = " "
		}
	}
	for _, n := range nodes {
		label := fmt.Sprintf("%d", n.ID)
		col := scale(n.Position.X, minX, maxX, canvasWidth-len(label))
		row := scale(n.Position.Y, minY, maxY, canvasHeight-1)
		cells[row][col] = stateStyle(n.State).Render(label)
		for i := 1; i < len(label); i++ {
			cells[row][col+i] = ""
		}
	}

	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, ""))
	}

	return b.String()
}

// scale maps v from [lo, hi] onto [0, span].
func scale(v, lo, hi float64, span int) int {
	if span <= 0 || hi <= lo {
		return 0
	}
	p := int(math.Round((v - lo) / (hi - lo) * float64(span)))
	if p < 0 {
		return 0
	}
	if p > span {
		return span
	}

	return p
}

// renderAdjacency lists every node with its state and weighted children.
func renderAdjacency(g *core.Graph) string {
	var b strings.Builder
	for _, id := range g.NodeIDs() {
		n, err := g.Node(id)
		if err != nil {
			continue
		}
		kids, _ := g.Children(id)
		parts := make([]string, len(kids))
		for i, e := range kids {
			parts[i] = fmt.Sprintf("%d(%d)", e.To, e.Weight)
		}
		fmt.Fprintf(&b, "%s %-8s h=%-3d → %s\n",
			stateStyle(n.State).Render(fmt.Sprintf("%3d", id)),
			n.State, n.Heuristic, strings.Join(parts, " "))
	}

	return strings.TrimRight(b.String(), "\n")
}
