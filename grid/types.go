// Package grid defines core types and sentinel errors for the square
// pathfinding board.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadSize indicates a non-positive grid size was requested.
	ErrBadSize = errors.New("grid: size must be positive")

	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")

	// ErrInvalidPlacement indicates a placement that would silently destroy
	// an endpoint: Barrier over Start/End, or one endpoint over the other.
	// The cell must be cleared first.
	ErrInvalidPlacement = errors.New("grid: cell must be cleared before it can take this role")
)

// State is the mutually exclusive marker carried by every cell.
// Exactly zero or one cell in a grid is Start, and zero or one is End.
type State uint8

const (
	// Empty marks an unvisited, passable cell.
	Empty State = iota
	// Barrier marks an impassable cell, excluded from adjacency.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Open marks a cell currently discovered but not yet processed
	// (a member of the search frontier).
	Open
	// Closed marks a cell whose relaxation pass has completed.
	Closed
	// Path marks a cell on the reconstructed shortest path.
	Path
)

// String returns the lower-case name of the state, for logs and tests.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Role selects what Place puts on a cell. Open/Closed/Path are not roles:
// they are produced only by a running search, never by placement.
type Role uint8

const (
	// RoleStart places the search origin, moving it if already placed.
	RoleStart Role = iota
	// RoleEnd places the search target, moving it if already placed.
	RoleEnd
	// RoleBarrier places an impassable cell.
	RoleBarrier
)
