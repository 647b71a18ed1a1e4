package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

// countingSink records how often the board was redrawn.
type countingSink struct{ redraws int }

func (c *countingSink) Redraw(*grid.Grid) { c.redraws++ }

// newSession builds a size×size session with a counting sink.
func newSession(t *testing.T, size int) (*session.Session, *countingSink) {
	t.Helper()
	g, err := grid.New(size)
	require.NoError(t, err)
	sink := &countingSink{}

	return session.New(g, session.WithRenderer(sink)), sink
}

// TestPlaceNode_PhaseOrder verifies start → end → barrier placement phases.
func TestPlaceNode_PhaseOrder(t *testing.T) {
	s, _ := newSession(t, 5)
	g := s.Grid()

	require.NoError(t, s.PlaceNode(0, 0))
	require.NotNil(t, g.Start())
	require.Equal(t, grid.Start, stateAt(t, g, 0, 0))

	require.NoError(t, s.PlaceNode(4, 4))
	require.NotNil(t, g.End())
	require.Equal(t, grid.End, stateAt(t, g, 4, 4))

	require.NoError(t, s.PlaceNode(2, 2))
	require.Equal(t, grid.Barrier, stateAt(t, g, 2, 2))
}

// TestPlaceNode_ThirdClickOnEndpoint verifies the barrier phase cannot
// overwrite a placed endpoint: the cell stays unchanged.
func TestPlaceNode_ThirdClickOnEndpoint(t *testing.T) {
	s, _ := newSession(t, 5)
	require.NoError(t, s.PlaceNode(0, 0)) // start
	require.NoError(t, s.PlaceNode(4, 4)) // end

	err := s.PlaceNode(4, 4) // barrier phase, aimed at the end cell
	require.ErrorIs(t, err, grid.ErrInvalidPlacement)
	require.Equal(t, grid.End, stateAt(t, s.Grid(), 4, 4))
}

// TestPlaceNode_RemovedEndpointReopensPhase verifies that clearing an
// endpoint makes the next placement restore that role.
func TestPlaceNode_RemovedEndpointReopensPhase(t *testing.T) {
	s, _ := newSession(t, 5)
	require.NoError(t, s.PlaceNode(0, 0)) // start
	require.NoError(t, s.PlaceNode(4, 4)) // end

	require.NoError(t, s.RemoveNode(0, 0))
	require.Nil(t, s.Grid().Start())

	require.NoError(t, s.PlaceNode(1, 1)) // start phase again
	st := s.Grid().Start()
	require.NotNil(t, st)
	require.Equal(t, 1, st.Row())
	require.Equal(t, 1, st.Column())
}

// TestPlaceNode_StartPhaseCannotClaimEnd verifies the re-opened start phase
// cannot land on the existing end cell.
func TestPlaceNode_StartPhaseCannotClaimEnd(t *testing.T) {
	s, _ := newSession(t, 5)
	require.NoError(t, s.PlaceNode(0, 0))
	require.NoError(t, s.PlaceNode(4, 4))
	require.NoError(t, s.RemoveNode(0, 0))

	err := s.PlaceNode(4, 4)
	require.ErrorIs(t, err, grid.ErrInvalidPlacement)
	require.Equal(t, grid.End, stateAt(t, s.Grid(), 4, 4))
	require.Nil(t, s.Grid().Start())
}

// TestPlaceNode_OutOfBounds verifies coordinate rejection before mutation.
func TestPlaceNode_OutOfBounds(t *testing.T) {
	s, sink := newSession(t, 5)
	require.ErrorIs(t, s.PlaceNode(-1, 0), grid.ErrOutOfBounds)
	require.ErrorIs(t, s.PlaceNode(0, 5), grid.ErrOutOfBounds)
	require.ErrorIs(t, s.RemoveNode(9, 9), grid.ErrOutOfBounds)
	require.Zero(t, sink.redraws, "rejected commands must not redraw")
}

// TestBeginSearch_NotReady verifies a search without both endpoints is
// rejected with no run started.
func TestBeginSearch_NotReady(t *testing.T) {
	s, sink := newSession(t, 5)
	_, err := s.BeginSearch(context.Background())
	require.ErrorIs(t, err, session.ErrNotReady)

	require.NoError(t, s.PlaceNode(0, 0)) // start only
	_, err = s.BeginSearch(context.Background())
	require.ErrorIs(t, err, session.ErrNotReady)
	require.Equal(t, 1, sink.redraws, "only the placement redraw may have fired")
}

// TestBeginSearch_FoundAndRedraws verifies a full run drives the sink once
// per step and terminates Found.
func TestBeginSearch_FoundAndRedraws(t *testing.T) {
	s, sink := newSession(t, 5)
	require.NoError(t, s.PlaceNode(0, 0))
	require.NoError(t, s.PlaceNode(4, 4))
	placements := sink.redraws

	res, err := s.BeginSearch(context.Background())
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	require.Len(t, res.Path, 8)
	require.Greater(t, sink.redraws, placements+1,
		"each search step must reach the render sink")
	require.False(t, s.Running())
}

// TestBeginSearch_ClearsStaleTrace verifies BeginSearch drops the previous
// run's markers before searching again.
func TestBeginSearch_ClearsStaleTrace(t *testing.T) {
	s, _ := newSession(t, 5)
	require.NoError(t, s.PlaceNode(0, 0))
	require.NoError(t, s.PlaceNode(4, 4))

	_, err := s.BeginSearch(context.Background())
	require.NoError(t, err)
	// Second run over the traced board must behave identically.
	res, err := s.BeginSearch(context.Background())
	require.NoError(t, err)
	require.Equal(t, astar.Found, res.Outcome)
	require.Len(t, res.Path, 8)
}

// TestCancelSearch verifies cancellation from within the render hook stops
// the run with outcome Cancelled.
func TestCancelSearch(t *testing.T) {
	g, err := grid.New(10)
	require.NoError(t, err)

	var s *session.Session
	steps := 0
	s = session.New(g, session.WithRenderer(session.RendererFunc(func(*grid.Grid) {
		steps++
		if steps == 4 {
			s.CancelSearch()
		}
	})))

	require.NoError(t, s.PlaceNode(0, 0))
	require.NoError(t, s.PlaceNode(9, 9))

	res, err := s.BeginSearch(context.Background())
	require.NoError(t, err)
	require.Equal(t, astar.Cancelled, res.Outcome)
	require.False(t, s.Running())

	// CancelSearch outside a run is a no-op.
	s.CancelSearch()
}

// TestBeginSearch_Reentrant verifies only one run exists at a time:
// re-entry from the render hook is rejected.
func TestBeginSearch_Reentrant(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	var s *session.Session
	var reentrant error
	attempted := false
	s = session.New(g, session.WithRenderer(session.RendererFunc(func(*grid.Grid) {
		if s.Running() && !attempted {
			attempted = true
			_, reentrant = s.BeginSearch(context.Background())
		}
	})))

	require.NoError(t, s.PlaceNode(0, 0))
	require.NoError(t, s.PlaceNode(4, 4))

	_, err = s.BeginSearch(context.Background())
	require.NoError(t, err)
	require.True(t, attempted)
	require.ErrorIs(t, reentrant, session.ErrSearchActive)
}

// TestResetGrid verifies the full reset restarts placement from scratch.
func TestResetGrid(t *testing.T) {
	s, _ := newSession(t, 5)
	require.NoError(t, s.PlaceNode(0, 0))
	require.NoError(t, s.PlaceNode(4, 4))
	require.NoError(t, s.PlaceNode(2, 2))

	s.ResetGrid()
	require.Nil(t, s.Grid().Start())
	require.Nil(t, s.Grid().End())
	require.Equal(t, grid.Empty, stateAt(t, s.Grid(), 2, 2))

	// Placement phases start over.
	require.NoError(t, s.PlaceNode(3, 3))
	require.Equal(t, grid.Start, stateAt(t, s.Grid(), 3, 3))
}

func stateAt(t *testing.T, g *grid.Grid, row, col int) grid.State {
	t.Helper()
	c, err := g.At(row, col)
	require.NoError(t, err)

	return c.State()
}
