// Package session defines the render-sink contract, options, and sentinel
// errors for the interactive control loop.
package session

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for session commands.
var (
	// ErrNotReady indicates BeginSearch was invoked before both Start and
	// End were placed. No run is started.
	ErrNotReady = errors.New("session: start and end must both be placed")

	// ErrSearchActive indicates BeginSearch was re-entered while a run is
	// already active. Only one run exists at a time.
	ErrSearchActive = errors.New("session: a search is already running")
)

// Renderer is the render sink: Redraw is called synchronously after each
// state-changing step and must return before the next step begins. It must
// not mutate the grid.
type Renderer interface {
	Redraw(*grid.Grid)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(*grid.Grid)

// Redraw calls fn(g).
func (fn RendererFunc) Redraw(g *grid.Grid) { fn(g) }

// Option configures a Session via functional arguments.
type Option func(*Options)

// Options holds session collaborators and tunables.
type Options struct {
	// Renderer receives a Redraw after every mutation and search step.
	// Defaults to a no-op sink.
	Renderer Renderer

	// StepDelay paces the visualisation: the session sleeps this long after
	// each search step's redraw. Zero (the default) disables pacing. The
	// delay is a host concern; the engine itself never sleeps.
	StepDelay time.Duration
}

// DefaultOptions returns Options with a no-op renderer and no pacing.
func DefaultOptions() Options {
	return Options{
		Renderer:  RendererFunc(func(*grid.Grid) {}),
		StepDelay: 0,
	}
}

// WithRenderer sets the render sink.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithStepDelay sets the pacing duration between search steps.
// Non-positive values disable pacing.
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.StepDelay = d
		}
	}
}
