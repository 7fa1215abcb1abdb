package cmd

import (
	"fmt"
	"math"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flying-tiger/jflow/internal/config"
	"github.com/flying-tiger/jflow/internal/euler"
	"github.com/flying-tiger/jflow/internal/fv"
	"github.com/flying-tiger/jflow/internal/gas"
	"github.com/flying-tiger/jflow/internal/grid"
	"github.com/flying-tiger/jflow/internal/integrate"
)

var (
	profileRun bool
	scheme     string
)

// solverCmd is the "solver <input_file>" command: it reads a YAML input
// document, builds a hyperbolic forebody grid and freestream state, and
// integrates the Euler residual forward in time, printing one line of
// RMS residual per step.
var solverCmd = &cobra.Command{
	Use:   "solver <input_file>",
	Short: "Run the Euler solver against a YAML input document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileRun {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		return runSolver(args[0])
	},
}

func init() {
	rootCmd.AddCommand(solverCmd)
	solverCmd.Flags().BoolVar(&profileRun, "profile", false, "capture a CPU profile of the run")
	solverCmd.Flags().StringVar(&scheme, "scheme", "euler",
		"time integration scheme: euler, shu-osher, or rk4")
}

func runSolver(inputFile string) error {
	cfg, err := config.Load(inputFile)
	if err != nil {
		return err
	}
	summary, err := cfg.Summary()
	if err != nil {
		return err
	}
	logrus.WithField("input_file", inputFile).Info("loaded configuration")
	fmt.Print(string(summary))

	physics := euler.NewPhysics(gas.NewDefault())
	physics.SetFreestream(
		cfg.Freestream.Pressure,
		cfg.Freestream.Temperature,
		cfg.Freestream.UVelocity,
		cfg.Freestream.VVelocity,
	)

	g, err := grid.MakeHyperbolicForebody(
		cfg.Grid.BodyLength,
		cfg.Grid.BaseRadius,
		cfg.Grid.NoseRadius,
		cfg.Grid.BoundaryAngleRadians(),
		cfg.Grid.Size,
	)
	if err != nil {
		return err
	}

	assembler, err := fv.NewAssembler(g, physics)
	if err != nil {
		return err
	}

	step, err := resolveStep(scheme)
	if err != nil {
		return err
	}

	x := assembler.MakeStateVector(physics.Freestream)
	t := cfg.Solver.StartTime
	dt := cfg.Solver.Timestep

	for n := 0; n < cfg.Solver.Iterations; n++ {
		var rms [4]float64
		x, rms = step(assembler, dt, t, x)
		t += dt
		fmt.Printf("%6d%16.8e%16.8e%16.8e%16.8e\n", n, rms[0], rms[1], rms[2], rms[3])
		if hasNaN(rms) {
			logrus.WithField("step", n).Warn("residual diverged to NaN, terminating early")
			break
		}
	}
	return nil
}

func resolveStep(name string) (integrate.Step[euler.StateField, euler.ResidualField], error) {
	switch name {
	case "euler":
		return integrate.StepEuler[euler.StateField, euler.ResidualField], nil
	case "shu-osher":
		return integrate.StepShuOsher[euler.StateField, euler.ResidualField], nil
	case "rk4":
		return integrate.StepRK4[euler.StateField, euler.ResidualField], nil
	default:
		return nil, fmt.Errorf("unknown --scheme %q: want euler, shu-osher, or rk4", name)
	}
}

func hasNaN(rms [4]float64) bool {
	for _, v := range rms {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
