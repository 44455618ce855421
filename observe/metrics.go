// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Prometheus observer: search counters and visited/steps/cost histograms.

package observe

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// Metrics counts searches and node transitions per algorithm.
type Metrics struct {
	started     *prometheus.CounterVec
	finished    *prometheus.CounterVec
	transitions *prometheus.CounterVec
	visited     *prometheus.HistogramVec
	steps       *prometheus.HistogramVec
	pathCost    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if registration fails (duplicate registration).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	buckets := prometheus.ExponentialBuckets(1, 2, 12)
	m := &Metrics{
		started: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepsearch_searches_started_total",
				Help: "Total number of searches started",
			},
			[]string{"algorithm"},
		),
		finished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepsearch_searches_finished_total",
				Help: "Total number of searches finished, by terminal status",
			},
			[]string{"algorithm", "status"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stepsearch_node_transitions_total",
				Help: "Node state changes made by searches, by target state",
			},
			[]string{"algorithm", "state"},
		),
		visited: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepsearch_nodes_visited",
				Help:    "Nodes marked visited per finished search",
				Buckets: buckets,
			},
			[]string{"algorithm"},
		),
		steps: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepsearch_search_steps",
				Help:    "Step calls per finished search",
				Buckets: buckets,
			},
			[]string{"algorithm"},
		),
		pathCost: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stepsearch_path_cost",
				Help:    "Cost of the path found by successful searches",
				Buckets: buckets,
			},
			[]string{"algorithm"},
		),
	}
	reg.MustRegister(m.started, m.finished, m.transitions, m.visited, m.steps, m.pathCost)

	return m
}

// OnStart implements search.Observer.
func (m *Metrics) OnStart(_ uuid.UUID, alg search.Algorithm) {
	m.started.WithLabelValues(string(alg)).Inc()
}

// OnTransition implements search.Observer.
func (m *Metrics) OnTransition(_ uuid.UUID, alg search.Algorithm, _ int, _, to core.State) {
	m.transitions.WithLabelValues(string(alg), to.String()).Inc()
}

// OnFinish implements search.Observer.
func (m *Metrics) OnFinish(sum search.Summary) {
	alg := string(sum.Algorithm)
	m.finished.WithLabelValues(alg, sum.Status.String()).Inc()
	m.visited.WithLabelValues(alg).Observe(float64(sum.NodesVisited))
	m.steps.WithLabelValues(alg).Observe(float64(sum.Steps))
	if sum.Found() {
		m.pathCost.WithLabelValues(alg).Observe(float64(sum.PathCost))
	}
}
