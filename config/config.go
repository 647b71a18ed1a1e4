// Package config decodes the gridpath HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadGridSize indicates a non-positive grid_size.
	ErrBadGridSize = errors.New("config: grid_size must be positive")

	// ErrBadStepDelay indicates a negative step_delay_ms.
	ErrBadStepDelay = errors.New("config: step_delay_ms must be non-negative")
)

// DefaultGridSize is the number of cells per side when unconfigured.
const DefaultGridSize = 25

// Config holds the visualiser settings.
type Config struct {
	// GridSize is the number of cells per side (N for an N×N board).
	GridSize int `hcl:"grid_size,optional"`

	// StepDelayMs paces the visualisation between search steps.
	StepDelayMs int `hcl:"step_delay_ms,optional"`

	// Sound enables the audible completion cue.
	Sound bool `hcl:"sound,optional"`

	// ASCII selects monochrome glyph rendering instead of colored cells.
	ASCII bool `hcl:"ascii,optional"`
}

// Default returns the built-in settings: a 25×25 board, no pacing, no
// sound, colored rendering.
func Default() Config {
	return Config{GridSize: DefaultGridSize}
}

// StepDelay converts StepDelayMs to a duration.
func (c Config) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}

// Validate checks value ranges, wrapping the offending value into the
// sentinel error.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadGridSize, c.GridSize)
	}
	if c.StepDelayMs < 0 {
		return fmt.Errorf("%w: got %d", ErrBadStepDelay, c.StepDelayMs)
	}

	return nil
}

// Load parses the HCL file at path on top of the defaults and validates the
// result. When required is false a missing file yields the defaults; any
// parse or decode diagnostic is an error either way.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}
	if diags = gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return cfg, fmt.Errorf("config: failed to decode %s: %w", path, diags)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
