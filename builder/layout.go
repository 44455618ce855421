package builder

import (
	"math"

	"github.com/katalvlaran/stepsearch/core"
)

// ringRadius keeps the arc between k neighbours close to spacing, never
// smaller than spacing itself.
func ringRadius(k int, spacing float64) float64 {
	return math.Max(spacing, spacing*float64(k)/(2*math.Pi))
}

// ring places k points on a circle centred at (r, r), so every coordinate
// is non-negative.
func ring(k int, spacing float64) func(i int) core.Position {
	r := ringRadius(k, spacing)
	return func(i int) core.Position {
		a := 2 * math.Pi * float64(i) / float64(k)
		return core.Position{X: r + r*math.Cos(a), Y: r + r*math.Sin(a)}
	}
}

// hub places index 0 at the centre of a ring formed by indexes 1..n-1.
func hub(n int, spacing float64) func(i int) core.Position {
	r := ringRadius(n-1, spacing)
	rim := ring(n-1, spacing)
	return func(i int) core.Position {
		if i == 0 {
			return core.Position{X: r, Y: r}
		}
		return rim(i - 1)
	}
}

// line places index i at (i·spacing, 0).
func line(spacing float64) func(i int) core.Position {
	return func(i int) core.Position { return core.Position{X: float64(i) * spacing} }
}
