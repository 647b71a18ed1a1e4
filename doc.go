// Package gridpath is an interactive visualiser for A* shortest-path
// search on a square grid with barriers.
//
// 🚀 What is gridpath?
//
//	A small, deterministic pathfinding playground:
//		• grid:    the N×N board of cells with Start/End/Barrier placement
//		• astar:   best-first search with Manhattan heuristic, FIFO
//		  tie-breaking, per-step hooks and cooperative cancellation
//		• session: the placement state machine and one-run-at-a-time
//		  control loop behind the interactive commands
//		• config:  optional HCL settings (board size, step pacing, sound)
//		• tui:     terminal frontend — colors, mouse, keyboard — built on
//		  tcell, with an optional completion chime
//
// ✨ Why gridpath?
//
//   - Fully deterministic runs – identical boards visit identical cells in
//     identical order and produce identical paths
//   - Watchable – every Open/Closed/Path transition reaches the render
//     sink before the next step begins
//   - Cancellable – the engine checks its signal once per step; stopping a
//     run leaves the explored trace on the board
//
// Movement is 4-directional with uniform cost; diagonal moves and weighted
// terrain are out of scope.
//
// Try it:
//
//	go run ./cmd/gridpath -size 30 -delay 10
//
// Click to place the start, the end, then barriers; press Space and watch.
package gridpath
