package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/builder"
	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
	"github.com/katalvlaran/stepsearch/scenario"
)

// generateOpts holds the generate flags.
type generateOpts struct {
	n, rows, cols int
	p             float64
	seed          int64
	minW, maxW    int64
	directed      bool
	goals         []int
	heuristic     string
	spacing       float64
	output        string
	maze          string
	diagonal      bool
}

var generateKinds = []string{"path", "cycle", "star", "wheel", "complete", "grid", "random", "maze"}

func newGenerateCmd() *cobra.Command {
	o := generateOpts{}
	cmd := &cobra.Command{
		Use:       "generate KIND",
		Short:     "Write a generated scenario (" + strings.Join(generateKinds, ", ") + ")",
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g   *core.Graph
				err error
			)
			if args[0] == "maze" {
				g, err = o.fromMaze(cmd.ErrOrStderr())
			} else {
				g, err = o.build(args[0])
			}
			if err != nil {
				return err
			}
			if o.output == "" {
				return scenario.Encode(cmd.OutOrStdout(), g)
			}
			if err = scenario.Save(o.output, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d nodes\n", o.output, g.Len())

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.n, "n", 8, "node count (path, cycle, star, wheel, complete, random)")
	f.IntVar(&o.rows, "rows", 5, "grid rows")
	f.IntVar(&o.cols, "cols", 5, "grid columns")
	f.Float64Var(&o.p, "p", 0.3, "edge probability (random)")
	f.Int64Var(&o.seed, "seed", 1, "random seed")
	f.Int64Var(&o.minW, "min-weight", 1, "minimum edge weight")
	f.Int64Var(&o.maxW, "max-weight", 1, "maximum edge weight")
	f.BoolVar(&o.directed, "directed", false, "emit one-way edges")
	f.IntSliceVar(&o.goals, "goal", []int{-1}, "goal node indexes; negative counts from the end")
	f.StringVar(&o.heuristic, "heuristic", "none", "heuristic: none, euclidean, manhattan; maze: none, steps")
	f.Float64Var(&o.spacing, "spacing", 40, "distance between neighbouring nodes")
	f.StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&o.maze, "maze", "", "maze text file (maze)")
	f.BoolVar(&o.diagonal, "diagonal", false, "allow diagonal moves (maze)")

	return cmd
}

// build validates the flags and runs the builder.
func (o generateOpts) build(kind string) (*core.Graph, error) {
	if o.minW <= 0 || o.maxW < o.minW {
		return nil, fmt.Errorf("cli: weights need 0 < min-weight ≤ max-weight, got %d..%d", o.minW, o.maxW)
	}
	if o.spacing <= 0 {
		return nil, fmt.Errorf("cli: spacing must be > 0, got %g", o.spacing)
	}

	var topo builder.Constructor
	switch kind {
	case "path":
		topo = builder.Path(o.n)
	case "cycle":
		topo = builder.Cycle(o.n)
	case "star":
		topo = builder.Star(o.n)
	case "wheel":
		topo = builder.Wheel(o.n)
	case "complete":
		topo = builder.Complete(o.n)
	case "grid":
		topo = builder.Grid(o.rows, o.cols)
	case "random":
		topo = builder.RandomSparse(o.n, o.p)
	default:
		return nil, fmt.Errorf("cli: unknown kind %q (want one of %s)", kind, strings.Join(generateKinds, ", "))
	}

	cons := []builder.Constructor{topo, builder.Goal(o.goals...)}
	switch o.heuristic {
	case "", "none":
	case "euclidean":
		cons = append(cons, builder.EuclideanHeuristic())
	case "manhattan":
		cons = append(cons, builder.ManhattanHeuristic())
	default:
		return nil, fmt.Errorf("cli: unknown heuristic %q", o.heuristic)
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(o.directed)},
		[]builder.BuilderOption{
			builder.WithSeed(o.seed),
			builder.WithSpacing(o.spacing),
			builder.WithWeightFn(builder.UniformWeight(o.minW, o.maxW)),
		},
		cons...,
	)
}

// ErrNoMaze is returned by "generate maze" without --maze.
var ErrNoMaze = errors.New("cli: generate maze needs --maze FILE")

// fromMaze converts the --maze file. An unreachable goal is reported on
// warn but still produces a scenario.
func (o generateOpts) fromMaze(warn io.Writer) (*core.Graph, error) {
	if o.maze == "" {
		return nil, ErrNoMaze
	}
	fh, err := os.Open(o.maze)
	if err != nil {
		return nil, fmt.Errorf("cli: %w", err)
	}
	defer fh.Close()

	opts := gridgraph.GridOptions{Spacing: o.spacing}
	if o.diagonal {
		opts.Conn = gridgraph.Conn8
	}
	switch o.heuristic {
	case "", "none":
	case "steps", "manhattan", "euclidean":
		opts.Heuristic = true
	default:
		return nil, fmt.Errorf("cli: unknown heuristic %q", o.heuristic)
	}

	gg, err := gridgraph.ParseMaze(fh, opts)
	if err != nil {
		return nil, err
	}
	if !gg.Reachable() {
		_, walls := gg.Breach()
		fmt.Fprintf(warn, "warning: no goal reachable; removing %d wall(s) would connect one\n", walls)
	}
	g, _, err := gg.ToCoreGraph()

	return g, err
}
