package observe

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// Logger logs search events: transitions at debug level, start and finish
// at info level (warn when the search ended with an error).
type Logger struct {
	log *log.Logger
}

// NewLogger wraps l; a nil l falls back to the charmbracelet default logger.
func NewLogger(l *log.Logger) *Logger {
	if l == nil {
		l = log.Default()
	}

	return &Logger{log: l}
}

// OnStart implements search.Observer.
func (l *Logger) OnStart(id uuid.UUID, alg search.Algorithm) {
	l.log.Info("search started", "search", short(id), "algorithm", string(alg))
}

// OnTransition implements search.Observer.
func (l *Logger) OnTransition(id uuid.UUID, alg search.Algorithm, node int, from, to core.State) {
	l.log.Debug("node transition",
		"search", short(id),
		"algorithm", string(alg),
		"node", node,
		"from", from.String(),
		"to", to.String(),
	)
}

// OnFinish implements search.Observer.
func (l *Logger) OnFinish(sum search.Summary) {
	kv := []interface{}{
		"search", short(sum.ID),
		"algorithm", string(sum.Algorithm),
		"status", sum.Status.String(),
		"visited", sum.NodesVisited,
		"steps", sum.Steps,
		"elapsed", sum.Elapsed,
	}
	if sum.Found() {
		kv = append(kv, "cost", sum.PathCost, "edges", sum.PathEdges)
	}
	if sum.Limit > 0 {
		kv = append(kv, "limit", sum.Limit)
	}
	if sum.Meeting >= 0 {
		kv = append(kv, "meeting", sum.Meeting)
	}
	if sum.Err != nil {
		l.log.Warn("search finished", append(kv, "err", sum.Err)...)
		return
	}
	l.log.Info("search finished", kv...)
}

// short trims a search id to its first group for readable log lines.
func short(id uuid.UUID) string {
	return id.String()[:8]
}
