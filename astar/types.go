// Package astar defines options, outcomes, and sentinel errors for the
// grid search engine.
package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for Run preconditions.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEndpointMissing indicates a nil start or end cell.
	ErrEndpointMissing = errors.New("astar: start and end cells are required")

	// ErrSameEndpoint indicates start == end, which Run rejects outright
	// rather than treating as a trivial success.
	ErrSameEndpoint = errors.New("astar: start and end must be distinct")

	// ErrForeignCell indicates an endpoint that is not a cell of the given grid.
	ErrForeignCell = errors.New("astar: endpoint does not belong to the grid")
)

// Outcome classifies how a run terminated. All three are normal outcomes;
// none is reported as an error.
type Outcome uint8

const (
	// Found means the frontier reached the End cell; Result.Path is populated.
	Found Outcome = iota
	// Exhausted means the frontier emptied without reaching End: no path
	// exists. The engine leaves Open/Closed markers on the grid; clearing
	// them before the next run is the caller's responsibility.
	Exhausted
	// Cancelled means the cancellation signal was observed. The engine stops
	// immediately with no further mutation and no path reconstruction.
	Cancelled
)

// String returns the outcome name, for logs and tests.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result holds the terminal state of one search run.
type Result struct {
	// Outcome is Found, Exhausted, or Cancelled.
	Outcome Outcome

	// Path is the reconstructed route in reverse order: from the cell
	// adjacent to End back to Start. Empty unless Outcome == Found. Callers
	// needing forward order must reverse it explicitly. On an open grid its
	// length equals the Manhattan distance between Start and End.
	Path []*grid.Cell

	// Visited records cells in pop order. Two runs over an identical board
	// produce identical Visited sequences.
	Visited []*grid.Cell
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search run.
type Options struct {
	// Ctx carries the cooperative cancellation signal, checked once per
	// popped frontier element (never mid-relaxation).
	Ctx context.Context

	// OnStep is invoked synchronously after each state-changing step: once
	// per relaxation pass and once per path marking during reconstruction.
	// It must return before the next step begins and must not mutate the
	// grid. Pacing, if any, is the caller's concern.
	OnStep func()
}

// DefaultOptions returns Options with context.Background and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func() {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the render-sink hook called after each step.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
