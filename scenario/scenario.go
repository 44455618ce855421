// SPDX-License-Identifier: MIT
//
// File: scenario.go
// Role: YAML scenario files: decode, validate, build, snapshot and save.
// Policy:
//   - Unknown fields are rejected; every validation failure wraps ErrInvalid.

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepsearch/core"
)

// Sentinel errors.
var (
	// ErrInvalid wraps every validation failure reported by Decode/Validate.
	ErrInvalid = errors.New("scenario: invalid file")

	// ErrGraphNil is returned by Encode for a nil graph.
	ErrGraphNil = errors.New("scenario: graph is nil")
)

// File is the on-disk form of a graph.
type File struct {
	Directed bool       `yaml:"directed"`
	Nodes    []NodeSpec `yaml:"nodes" validate:"required,min=1,dive"`
	Edges    []EdgeSpec `yaml:"edges,omitempty" validate:"dive"`
}

// NodeSpec declares one node. ID is a file-local label; Build maps it onto
// a graph id. The source must carry id 0.
type NodeSpec struct {
	ID        int     `yaml:"id" validate:"min=0"`
	State     string  `yaml:"state,omitempty" validate:"omitempty,oneof=empty source goal"`
	X         float64 `yaml:"x,omitempty"`
	Y         float64 `yaml:"y,omitempty"`
	Heuristic int64   `yaml:"heuristic,omitempty" validate:"min=0"`
}

// EdgeSpec declares one weighted edge. OneWay keeps an edge of an
// undirected graph from being mirrored.
type EdgeSpec struct {
	From   int   `yaml:"from" validate:"min=0"`
	To     int   `yaml:"to" validate:"min=0,nefield=From"`
	Weight int64 `yaml:"weight" validate:"gt=0"`
	OneWay bool  `yaml:"oneway,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(fileLevel, File{})

	return v
}

// fileLevel checks what field tags cannot express: unique ids, exactly one
// source (id 0), goals without heuristic and edge endpoints that exist.
func fileLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(File)

	seen := make(map[int]bool, len(f.Nodes))
	sources := 0
	for i, n := range f.Nodes {
		field := fmt.Sprintf("Nodes[%d]", i)
		if seen[n.ID] {
			sl.ReportError(n.ID, field+".ID", "ID", "unique", "")
		}
		seen[n.ID] = true
		switch n.State {
		case "source":
			sources++
			if n.ID != 0 {
				sl.ReportError(n.ID, field+".ID", "ID", "source_id", "0")
			}
		case "goal":
			if n.Heuristic != 0 {
				sl.ReportError(n.Heuristic, field+".Heuristic", "Heuristic", "goal_heuristic", "0")
			}
		}
	}
	if sources != 1 {
		sl.ReportError(sources, "Nodes", "Nodes", "one_source", "")
	}
	for i, e := range f.Edges {
		field := fmt.Sprintf("Edges[%d]", i)
		if !seen[e.From] {
			sl.ReportError(e.From, field+".From", "From", "declared", "")
		}
		if !seen[e.To] {
			sl.ReportError(e.To, field+".To", "To", "declared", "")
		}
	}
}

// Validate checks f. Every failure is wrapped in ErrInvalid.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalid, describe(verrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// describe flattens validation errors into one line.
func describe(verrs validator.ValidationErrors) string {
	var b bytes.Buffer
	for i, fe := range verrs {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s failed %q", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			fmt.Fprintf(&b, " (%s)", fe.Param())
		}
	}

	return b.String()
}

// Decode reads and validates a scenario. Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load opens path and decodes it.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Build creates a graph from a validated file. It returns the graph and
// the file id → graph id mapping.
func Build(f *File) (*core.Graph, map[int]int, error) {
	if err := f.Validate(); err != nil {
		return nil, nil, err
	}

	var src NodeSpec
	for _, n := range f.Nodes {
		if n.State == "source" {
			src = n
			break
		}
	}
	g := core.NewGraph(
		core.WithDirected(f.Directed),
		core.WithSourcePosition(core.Position{X: src.X, Y: src.Y}),
	)
	ids := map[int]int{src.ID: g.SourceID()}
	if src.Heuristic != 0 {
		if err := g.SetHeuristic(g.SourceID(), src.Heuristic); err != nil {
			return nil, nil, err
		}
	}

	for _, n := range f.Nodes {
		if n.State == "source" {
			continue
		}
		st, err := core.ParseState(n.State)
		if err != nil {
			return nil, nil, err
		}
		id, err := g.AddNode(core.Position{X: n.X, Y: n.Y}, core.WithState(st), core.WithHeuristic(n.Heuristic))
		if err != nil {
			return nil, nil, fmt.Errorf("scenario: node %d: %w", n.ID, err)
		}
		ids[n.ID] = id
	}

	for _, e := range f.Edges {
		var opts []core.EdgeOption
		if e.OneWay {
			opts = append(opts, core.WithMirrored(false))
		}
		if err := g.SetEdge(ids[e.From], ids[e.To], e.Weight, opts...); err != nil {
			return nil, nil, fmt.Errorf("scenario: edge %d→%d: %w", e.From, e.To, err)
		}
	}

	return g, ids, nil
}

// FromGraph snapshots g as a File. Search marks (visited, path) are written
// as empty. In an undirected graph a pair of equal-weight opposite edges
// becomes one EdgeSpec; anything else is written one-way.
func FromGraph(g *core.Graph) (*File, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	f := &File{Directed: g.Directed()}
	for _, id := range g.NodeIDs() {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		spec := NodeSpec{ID: id, X: n.Position.X, Y: n.Position.Y, Heuristic: n.Heuristic}
		switch n.State {
		case core.StateSource, core.StateGoal:
			spec.State = n.State.String()
		}
		f.Nodes = append(f.Nodes, spec)

		kids, err := g.Children(id)
		if err != nil {
			return nil, err
		}
		for _, e := range kids {
			back, berr := g.Weight(e.To, id)
			pair := berr == nil && back == e.Weight
			switch {
			case f.Directed:
				f.Edges = append(f.Edges, EdgeSpec{From: id, To: e.To, Weight: e.Weight})
			case pair && id < e.To:
				f.Edges = append(f.Edges, EdgeSpec{From: id, To: e.To, Weight: e.Weight})
			case !pair:
				f.Edges = append(f.Edges, EdgeSpec{From: id, To: e.To, Weight: e.Weight, OneWay: true})
			}
		}
	}
	sort.SliceStable(f.Edges, func(i, j int) bool {
		if f.Edges[i].From != f.Edges[j].From {
			return f.Edges[i].From < f.Edges[j].From
		}
		return f.Edges[i].To < f.Edges[j].To
	})

	return f, nil
}

// Encode writes g as YAML.
func Encode(w io.Writer, g *core.Graph) error {
	f, err := FromGraph(g)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(f); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return enc.Close()
}

// Save writes g to path.
func Save(path string, g *core.Graph) error {
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	return nil
}
