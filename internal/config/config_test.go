package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flying-tiger/jflow/internal/config"
)

const sampleYAML = `
freestream:
  pressure: 101325
  temperature: 288
  u_velocity: 50
  v_velocity: 0
grid:
  body_length: 2.0
  base_radius: 1.0
  nose_radius: 0.2
  boundary_angle: 45
  size: [41, 31]
solver:
  timestep: 0.001
  iterations: 500
  start_time: 0
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))
	return path
}

func TestLoadParsesNestedSections(t *testing.T) {
	path := writeSample(t)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 101325.0, cfg.Freestream.Pressure)
	assert.Equal(t, [2]int{41, 31}, cfg.Grid.Size)
	assert.Equal(t, 500, cfg.Solver.Iterations)
	assert.InDelta(t, 45*3.141592653589793/180, cfg.Grid.BoundaryAngleRadians(), 1e-9)
}

func TestValidateRejectsDegenerateGrid(t *testing.T) {
	cfg := &config.Config{}
	cfg.Grid.Size = [2]int{1, 1}
	cfg.Solver.Timestep = 0.01
	cfg.Solver.Iterations = 10
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveTimestep(t *testing.T) {
	cfg := &config.Config{}
	cfg.Grid.Size = [2]int{4, 4}
	cfg.Solver.Iterations = 10
	cfg.Solver.Timestep = 0
	assert.Error(t, cfg.Validate())
}

func TestSummaryRoundTripsThroughYAML(t *testing.T) {
	path := writeSample(t)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	out, err := cfg.Summary()
	require.NoError(t, err)
	assert.Contains(t, string(out), "pressure: 101325")
}
