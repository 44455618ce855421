// Package observe provides search.Observer implementations for the
// reference drivers: structured logging via charmbracelet/log and
// Prometheus metrics.
//
// Both are plain observers; attach them with search.WithObserver:
//
//	m := observe.NewMetrics(prometheus.DefaultRegisterer)
//	agent, _ := search.NewAgent(g,
//		search.WithObserver(observe.NewLogger(logger)),
//		search.WithObserver(m),
//	)
//
// Observers run synchronously on the driver goroutine, so both keep their
// callbacks short: one log line or a few counter updates per event.
package observe
