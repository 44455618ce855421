package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepsearch/core"
)

// Observer receives search events. Calls happen synchronously inside
// Start, Step and Abort, on the driver's goroutine.
type Observer interface {
	// OnStart fires once a search has been reserved and the graph reset.
	OnStart(id uuid.UUID, alg Algorithm)

	// OnTransition fires for every node state change made by the agent.
	OnTransition(id uuid.UUID, alg Algorithm, node int, from, to core.State)

	// OnFinish fires once per search with its final summary.
	OnFinish(sum Summary)
}

// Hooks adapts optional callbacks to Observer; nil fields are skipped.
type Hooks struct {
	Start      func(id uuid.UUID, alg Algorithm)
	Transition func(id uuid.UUID, alg Algorithm, node int, from, to core.State)
	Finish     func(sum Summary)
}

// OnStart implements Observer.
func (h Hooks) OnStart(id uuid.UUID, alg Algorithm) {
	if h.Start != nil {
		h.Start(id, alg)
	}
}

// OnTransition implements Observer.
func (h Hooks) OnTransition(id uuid.UUID, alg Algorithm, node int, from, to core.State) {
	if h.Transition != nil {
		h.Transition(id, alg, node, from, to)
	}
}

// OnFinish implements Observer.
func (h Hooks) OnFinish(sum Summary) {
	if h.Finish != nil {
		h.Finish(sum)
	}
}

// Option configures an Agent via functional arguments.
type Option func(*Options)

// Options holds Agent settings.
type Options struct {
	// Observers are notified in registration order.
	Observers []Observer

	// Now is the clock used for Summary.Elapsed.
	Now func() time.Time

	// NewID generates search identifiers.
	NewID func() uuid.UUID
}

// DefaultOptions returns Options with no observers, time.Now and uuid.New.
func DefaultOptions() Options {
	return Options{
		Now:   time.Now,
		NewID: uuid.New,
	}
}

// WithObserver registers an Observer; nil is ignored.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observers = append(opts.Observers, o)
		}
	}
}

// WithClock replaces the clock; nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(opts *Options) {
		if now != nil {
			opts.Now = now
		}
	}
}

// WithIDGenerator replaces the search id generator; nil is ignored.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(opts *Options) {
		if gen != nil {
			opts.NewID = gen
		}
	}
}
