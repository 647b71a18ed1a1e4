// Package session glues an input source to the grid and the search engine:
// it owns the placement state machine and drives one search run at a time.
//
// What:
//
//   - Session wraps a grid.Grid and a Renderer (the render sink) and exposes
//     the command surface an interactive host translates input into:
//     PlaceNode, RemoveNode, BeginSearch, CancelSearch, ResetGrid.
//   - Placement phase is derived from the board itself: while no Start
//     exists the next placement is the Start, then the End, then Barriers.
//     Removing an endpoint re-opens its phase.
//
// Why:
//
//   - The engine runs cooperatively on the caller's goroutine; the Session
//     threads the cancellation signal and the per-step redraw/pacing hook
//     into it so hosts stay a thin translation layer over raw input events.
//
// Errors (sentinel):
//
//   - ErrNotReady:     BeginSearch without both endpoints placed.
//   - ErrSearchActive: BeginSearch re-entered while a run is active.
//
// Placement and coordinate errors surface from package grid unchanged
// (grid.ErrInvalidPlacement, grid.ErrOutOfBounds). All conditions are
// recoverable by further user action.
package session
