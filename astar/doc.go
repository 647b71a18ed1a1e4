// Package astar implements best-first shortest-path search (A*) over a
// grid.Grid, with per-step hooks that drive incremental visualisation.
//
// What:
//
//   - Run: searches from a Start cell to an End cell using the Manhattan
//     distance heuristic (admissible and consistent for 4-directional
//     uniform-cost grids), uniform edge cost 1, and a min-heap frontier
//     ordered by (f_score, insertion sequence).
//   - Per-step state transitions: discovered cells are marked Open,
//     processed cells Closed, and the reconstructed route Path, so a render
//     sink can draw the search as it happens.
//   - Cooperative cancellation via context.Context, checked once per popped
//     frontier element.
//
// Why:
//
//   - The FIFO insertion-sequence tie-break makes ordering total (no two
//     frontier entries ever compare equal), makes visitation order fully
//     deterministic for a given board, and smooths the resulting path.
//   - Hooks instead of channels keep the engine single-threaded: the sink is
//     called synchronously and returns before the next step begins.
//
// Key Types & Options:
//
//   - Option: functional options for Run behavior
//   - Options: holds Context and the OnStep hook
//   - Outcome: Found, Exhausted, Cancelled — distinct terminal outcomes,
//     none of which is an error
//   - Result: outcome, reconstructed path, and pop-order visitation trace
//
// Complexity:
//
//   - Time:  O(N² log N²) for an N×N board (each cell pushed at most once
//     thanks to the frontier membership set).
//   - Space: O(N²) for score, origin, and membership maps.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         grid is nil.
//   - ErrEndpointMissing: start or end is nil.
//   - ErrSameEndpoint:    start == end (rejected, not a trivial success).
//   - ErrForeignCell:     start or end does not belong to the grid.
package astar
