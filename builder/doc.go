// Package builder generates deterministic search fixtures on core.Graph.
//
// What
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//     Each lays out nodes 0..n-1 (node 0 is the graph's source) with
//     positions suited to a canvas, and emits edges in a stable order.
//   - Decorators: Goal marks goal nodes; EuclideanHeuristic and
//     ManhattanHeuristic fill node heuristics from positions.
//   - BuildGraph composes one topology with any number of decorators.
//
// Options
//
//	WithSeed / WithRand   randomness for RandomSparse and random weights
//	WithWeightFn          per-edge weight policy (default: constant 1)
//	WithSpacing           canvas distance between neighbouring nodes
//
// Determinism
//
//	Same constructors, same options and same seed ⇒ identical graphs.
//
// Errors
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrBadIndex,
//	wrapped with the constructor name. Core validation errors (ErrBadWeight)
//	surface through %w as well. Option constructors panic on nil inputs.
//
// Example
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeight(1, 9))},
//		builder.Grid(6, 8),
//		builder.Goal(-1),
//		builder.ManhattanHeuristic(),
//	)
package builder
