package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stepsearch/observe"
	"github.com/katalvlaran/stepsearch/search"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search headless and print its summary",
		Long:  longRun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return run(ctx, s, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	_ = v.BindPFlag(keyMetricsAddr, cmd.Flags().Lookup("metrics-addr"))

	return cmd
}

// run executes one search described by s. Logs go to logw, the summary to out.
func run(ctx context.Context, s settings, out, logw io.Writer) error {
	logger := log.NewWithOptions(logw, log.Options{
		Level:           s.LogLevel,
		Prefix:          projectName,
		ReportTimestamp: true,
	})

	g, err := s.graph()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := observe.NewMetrics(reg)
	if s.MetricsAddr != "" {
		shutdown, err := serveMetrics(s.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	agent, err := search.NewAgent(g,
		search.WithObserver(observe.NewLogger(logger)),
		search.WithObserver(metrics),
	)
	if err != nil {
		return err
	}
	h, err := agent.Start(s.Algorithm, s.params())
	if err != nil {
		return err
	}

	drive(ctx, h, s.Interval)
	sum := h.Summary()
	printSummary(out, sum)

	if s.MetricsAddr != "" && ctx.Err() == nil {
		logger.Info("search done; serving metrics until interrupted", "addr", s.MetricsAddr)
		<-ctx.Done()
	}
	if sum.Err != nil {
		return sum.Err
	}

	return nil
}

// drive steps h to completion, pacing steps at interval when positive.
// Cancelling ctx aborts the search.
func drive(ctx context.Context, h *search.Handle, interval time.Duration) search.StepResult {
	if interval <= 0 {
		return h.Run(ctx)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.Abort()
			res, _ := h.Result()
			return res
		case <-ticker.C:
			if res := h.Step(); res.Done() {
				return res
			}
		}
	}
}

// serveMetrics exposes reg on addr/metrics and returns a shutdown func.
func serveMetrics(addr string, reg *prometheus.Registry, logger *log.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cli: metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "err", err)
		}
	}()
	logger.Info("serving metrics", "addr", ln.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}

// printSummary writes the result report.
func printSummary(w io.Writer, sum search.Summary) {
	fmt.Fprintf(w, "algorithm: %s\n", sum.Algorithm)
	fmt.Fprintf(w, "status:    %s\n", sum.Status)
	if sum.Found() {
		hops := make([]string, len(sum.Path))
		for i, id := range sum.Path {
			hops[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(w, "path:      %s\n", strings.Join(hops, " → "))
		fmt.Fprintf(w, "cost:      %d\n", sum.PathCost)
		fmt.Fprintf(w, "edges:     %d\n", sum.PathEdges)
	} else {
		fmt.Fprintln(w, "path:      none")
	}
	if sum.Meeting >= 0 {
		fmt.Fprintf(w, "meeting:   %d\n", sum.Meeting)
	}
	if sum.Limit > 0 {
		fmt.Fprintf(w, "limit:     %d\n", sum.Limit)
	}
	fmt.Fprintf(w, "visited:   %d\n", sum.NodesVisited)
	fmt.Fprintf(w, "steps:     %d\n", sum.Steps)
	fmt.Fprintf(w, "elapsed:   %s\n", sum.Elapsed)
	if sum.Err != nil {
		fmt.Fprintf(w, "error:     %v\n", sum.Err)
	}
}

var longRun = `
Run one search headless. Node transitions are logged at debug level; the
summary is printed when the search ends.

Examples:
  # A* over a scenario, one step every 100ms, with transition logs.
  stepsearch run -s maze.yaml -a astar --interval 100ms --log-level debug

  # Iterative deepening up to depth 6, metrics on :9090.
  stepsearch run -s maze.yaml -a ids --max-limit 6 --metrics-addr :9090
`
