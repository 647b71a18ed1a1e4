// Package config loads visualiser settings from an optional HCL file.
//
// Recognized attributes, all optional:
//
//	grid_size     = 25      # cells per side
//	step_delay_ms = 0       # pacing between search steps, milliseconds
//	sound         = false   # audible cue on run completion
//	ascii         = false   # monochrome glyph rendering instead of colors
//
// Missing attributes keep their defaults; a missing file is not an error
// when no explicit path was requested. Command-line flags layer on top of
// the file in cmd/gridpath, flags winning.
//
// Errors (sentinel):
//
//   - ErrBadGridSize:  grid_size is not positive.
//   - ErrBadStepDelay: step_delay_ms is negative.
package config
