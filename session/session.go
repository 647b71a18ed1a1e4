package session

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Session owns the control loop state: the grid, the render sink, and the
// cancellation handle of the run in flight. It is single-threaded by
// design — commands are expected from one goroutine, the same one the
// engine runs on.
type Session struct {
	g    *grid.Grid
	opts Options

	running bool
	cancel  context.CancelFunc
}

// New creates a Session over g, applying any number of functional Options.
func New(g *grid.Grid, opts ...Option) *Session {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Session{g: g, opts: o}
}

// Grid returns the board the session controls.
func (s *Session) Grid() *grid.Grid { return s.g }

// Running reports whether a search run is currently active.
func (s *Session) Running() bool { return s.running }

// PlaceNode places a node at (row, column). The role follows the placement
// phase: the first placement is the Start, the second the End, and every
// later one a Barrier — with the phase derived from the board, so removing
// an endpoint makes the next placement restore it. A placement that would
// overwrite an existing Start/End in place is rejected with
// grid.ErrInvalidPlacement and the cell stays unchanged.
func (s *Session) PlaceNode(row, column int) error {
	role := grid.RoleBarrier
	switch {
	case s.g.Start() == nil:
		role = grid.RoleStart
	case s.g.End() == nil:
		role = grid.RoleEnd
	}
	if err := s.g.Place(row, column, role); err != nil {
		return err
	}
	s.opts.Renderer.Redraw(s.g)

	return nil
}

// RemoveNode clears the cell at (row, column). Clearing an endpoint
// re-opens its placement phase.
func (s *Session) RemoveNode(row, column int) error {
	if err := s.g.Clear(row, column); err != nil {
		return err
	}
	s.opts.Renderer.Redraw(s.g)

	return nil
}

// BeginSearch runs the engine from the placed Start to the placed End,
// redrawing after every step and pacing with the configured delay. It
// blocks until the run terminates and returns the engine's result.
//
// Returns ErrNotReady if either endpoint is missing (no run is started) and
// ErrSearchActive if called re-entrantly from the render hook. ctx carries
// the cancellation signal; CancelSearch cancels it as well.
func (s *Session) BeginSearch(ctx context.Context) (*astar.Result, error) {
	if s.running {
		return nil, ErrSearchActive
	}
	start, end := s.g.Start(), s.g.End()
	if start == nil || end == nil {
		return nil, ErrNotReady
	}

	// Drop stale markers from the previous run, then show the clean board.
	s.g.ResetForRun()
	s.opts.Renderer.Redraw(s.g)

	runCtx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	defer func() {
		s.running = false
		s.cancel = nil
		cancel()
	}()

	return astar.Run(s.g, start, end,
		astar.WithContext(runCtx),
		astar.WithOnStep(func() {
			s.opts.Renderer.Redraw(s.g)
			if s.opts.StepDelay > 0 {
				time.Sleep(s.opts.StepDelay)
			}
		}))
}

// CancelSearch signals the active run to stop at its next step. No-op when
// no run is active. The interrupted run leaves its Open/Closed trace on the
// board; the next BeginSearch clears it.
func (s *Session) CancelSearch() {
	if s.cancel != nil {
		s.cancel()
	}
}

// ResetGrid returns every cell to Empty, drops both endpoint references,
// and redraws. Placement starts over from the Start phase.
func (s *Session) ResetGrid() {
	s.g.Reset()
	s.opts.Renderer.Redraw(s.g)
}
