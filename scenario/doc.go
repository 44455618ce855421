// Package scenario loads and saves graphs as YAML files for the reference
// drivers.
//
// A scenario file declares the graph orientation, the nodes with their
// initial state, heuristic and position, and the weighted edges:
//
//	directed: false
//	nodes:
//	  - {id: 0, state: source}
//	  - {id: 1, heuristic: 2, x: 40}
//	  - {id: 2, state: goal, x: 80}
//	edges:
//	  - {from: 0, to: 1, weight: 1}
//	  - {from: 1, to: 2, weight: 1}
//
// Decode validates the file (go-playground/validator tags plus a
// struct-level pass for cross references) before Build touches a graph.
// Files carry only editing states: empty, source and goal. Search marks are
// never persisted.
package scenario
