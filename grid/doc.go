// Package grid models a fixed-size square board of cells for 4-directional
// shortest-path search and incremental visualisation.
//
// What:
//
//   - Cell: one addressable unit of the board, carrying immutable (row,
//     column) coordinates and a mutable State tag.
//   - State: Empty, Barrier, Start, End, Open, Closed, Path — mutually
//     exclusive markers; rendering maps a State to a color at the boundary.
//   - Grid: owns all N×N cells exclusively and tracks at most one Start and
//     one End cell as non-owning references into the same storage.
//
// Why:
//
//   - Pathfinding visualisers need a board whose per-cell markers survive
//     between algorithm steps so a render sink can draw progress.
//   - Keeping adjacency computed on demand (never cached across barrier
//     edits) avoids stale-neighbor bugs when the board is edited between
//     runs.
//
// Key operations:
//
//   - New:          allocate an N×N board of Empty cells.
//   - Neighbors:    in-bounds, non-Barrier cells in fixed up/down/left/right
//     order.
//   - Place/Clear:  role placement with move semantics for Start/End;
//     Barrier may never overwrite an endpoint in place.
//   - ResetForRun:  drop stale Open/Closed/Path markers before a search.
//   - Reset:        return the whole board to Empty.
//
// Complexity:
//
//   - New:         O(N²) time and memory.
//   - Neighbors:   O(1).
//   - Place/Clear: O(1).
//   - ResetForRun, Reset: O(N²).
//
// Errors (sentinel):
//
//   - ErrBadSize:          requested size is not positive.
//   - ErrOutOfBounds:      coordinates outside [0,N).
//   - ErrInvalidPlacement: placement would silently destroy an endpoint.
package grid
