// Package config loads the solver's input document: a YAML-backed input
// loader with freestream, grid and solver sections.
package config

import (
	"math"

	"github.com/ghodss/yaml"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/flying-tiger/jflow/internal/errs"
)

// FreestreamConfig holds the freestream section of the input document.
type FreestreamConfig struct {
	Pressure    float64 `mapstructure:"pressure" json:"pressure"`
	Temperature float64 `mapstructure:"temperature" json:"temperature"`
	UVelocity   float64 `mapstructure:"u_velocity" json:"u_velocity"`
	VVelocity   float64 `mapstructure:"v_velocity" json:"v_velocity"`
}

// GridConfig holds the grid section of the input document: the
// parameters of a hyperbolic-forebody grid.
type GridConfig struct {
	BodyLength      float64 `mapstructure:"body_length" json:"body_length"`
	BaseRadius      float64 `mapstructure:"base_radius" json:"base_radius"`
	NoseRadius      float64 `mapstructure:"nose_radius" json:"nose_radius"`
	BoundaryAngle   float64 `mapstructure:"boundary_angle" json:"boundary_angle"` // degrees
	Size            [2]int  `mapstructure:"size" json:"size"`
}

// BoundaryAngleRadians converts the configured boundary angle from
// degrees to radians, as grid.MakeHyperbolicForebody expects.
func (g GridConfig) BoundaryAngleRadians() float64 {
	return g.BoundaryAngle * math.Pi / 180
}

// SolverConfig holds the solver section of the input document.
type SolverConfig struct {
	Timestep   float64 `mapstructure:"timestep" json:"timestep"`
	Iterations int     `mapstructure:"iterations" json:"iterations"`
	StartTime  float64 `mapstructure:"start_time" json:"start_time"`
}

// Config is the fully resolved input document.
type Config struct {
	Freestream FreestreamConfig `mapstructure:"freestream" json:"freestream"`
	Grid       GridConfig       `mapstructure:"grid" json:"grid"`
	Solver     SolverConfig     `mapstructure:"solver" json:"solver"`
}

// Load expands a leading ~ in path, reads it as a YAML document via
// viper, and validates the result.
func Load(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errs.New(errs.ConfigError, "expanding input path %q: %v", path, err)
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	if err := v.ReadInConfig(); err != nil {
		return nil, errs.New(errs.ConfigError, "reading config %q: %v", expanded, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.New(errs.ConfigError, "parsing config %q: %v", expanded, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved configuration for required fields that
// viper's zero values would otherwise silently accept.
func (c *Config) Validate() error {
	if c.Grid.Size[0] < 2 || c.Grid.Size[1] < 2 {
		return errs.New(errs.ConfigError, "grid.size must have both dimensions >= 2, got %v", c.Grid.Size)
	}
	if c.Solver.Iterations <= 0 {
		return errs.New(errs.ConfigError, "solver.iterations must be positive, got %d", c.Solver.Iterations)
	}
	if c.Solver.Timestep <= 0 {
		return errs.New(errs.ConfigError, "solver.timestep must be positive, got %g", c.Solver.Timestep)
	}
	return nil
}

// Summary renders the resolved configuration as YAML, for startup
// diagnostic logging.
func (c *Config) Summary() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errs.New(errs.ConfigError, "rendering config summary: %v", err)
	}
	return out, nil
}
