// Package tui is the terminal frontend: it renders the board through a
// tcell screen and translates mouse/keyboard events into session commands.
//
// Bindings:
//
//   - Left click:  place node (first the start, then the end, then barriers)
//   - Right click: remove node
//   - Space:       run the search
//   - q:           cancel the running search
//   - r:           reset the grid
//   - Esc, Ctrl-C: quit
//
// Each cell state maps to a color (or a glyph in ASCII mode) at this
// boundary only; the core packages never see colors. While a search is
// active the redraw hook also services pending cancel/quit keys, which is
// what makes cancellation reachable from a single-threaded run.
package tui
