package builder

import (
	"fmt"

	"github.com/katalvlaran/stepsearch/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before mutating and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// claim makes ids 0..n-1 live and places them at pos(i). Existing ids are
// moved; missing ones are appended. Node 0 is always the source.
func claim(g *core.Graph, method string, n int, pos func(i int) core.Position) error {
	for i := 0; i < n; i++ {
		p := pos(i)
		if g.HasNode(i) {
			if err := g.SetPosition(i, p); err != nil {
				return fmt.Errorf("%s: SetPosition(%d): %w", method, i, err)
			}
			continue
		}
		id, err := g.AddNode(p)
		if err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, i, err)
		}
		if id != i {
			return fmt.Errorf("%s: graph ids are not contiguous (got %d, want %d): %w",
				method, id, i, ErrConstructFailed)
		}
	}

	return nil
}

// connect adds u→v with the next configured weight, mirrored per the graph default.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weight()
	if err := g.SetEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: SetEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
