package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gatecleanup",
	Short: "Gate-level netlist cleanup and reset-elision tool",
	Long: `gatecleanup runs dead-code elimination, carry-chain analysis, and
synchronous-reset detection/elision over a BLIF-like gate-level netlist.

Examples:
  gatecleanup stats design.blif
  gatecleanup run --reset-elision design.blif
  gatecleanup rewrite --output design.out.blif design.blif`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
