// Package cmd implements the solver's command-line surface.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jflow",
	Short: "2D structured-grid Euler solver",
	Long: `jflow integrates the compressible Euler equations on a hyperbolic
forebody grid using an explicit, cell-centered finite-volume scheme.`,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
