package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
)

// writeFile drops HCL content into a temp file and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestLoad_Full verifies a fully populated file.
func TestLoad_Full(t *testing.T) {
	path := writeFile(t, `
grid_size     = 40
step_delay_ms = 15
sound         = true
ascii         = true
`)
	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.GridSize)
	require.Equal(t, 15*time.Millisecond, cfg.StepDelay())
	require.True(t, cfg.Sound)
	require.True(t, cfg.ASCII)
}

// TestLoad_PartialKeepsDefaults verifies absent attributes keep defaults.
func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, `step_delay_ms = 5`)
	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	require.Equal(t, config.DefaultGridSize, cfg.GridSize)
	require.Equal(t, 5, cfg.StepDelayMs)
	require.False(t, cfg.Sound)
	require.False(t, cfg.ASCII)
}

// TestLoad_MissingFile verifies the optional-file contract.
func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.hcl")

	cfg, err := config.Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, true)
	require.Error(t, err)
}

// TestLoad_Invalid verifies validation and parse failures.
func TestLoad_Invalid(t *testing.T) {
	t.Run("BadGridSize", func(t *testing.T) {
		path := writeFile(t, `grid_size = 0`)
		_, err := config.Load(path, true)
		require.ErrorIs(t, err, config.ErrBadGridSize)
	})
	t.Run("BadStepDelay", func(t *testing.T) {
		path := writeFile(t, `step_delay_ms = -1`)
		_, err := config.Load(path, true)
		require.ErrorIs(t, err, config.ErrBadStepDelay)
	})
	t.Run("Syntax", func(t *testing.T) {
		path := writeFile(t, `grid_size = = 10`)
		_, err := config.Load(path, true)
		require.Error(t, err)
	})
}

// TestValidate_Defaults verifies the built-in defaults pass validation.
func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}
