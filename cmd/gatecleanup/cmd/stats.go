package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/gatecleanup/internal/config"
	"github.com/OpenTraceLab/gatecleanup/internal/diag"
	"github.com/OpenTraceLab/gatecleanup/pkg/pipeline"
)

var statsCmd = &cobra.Command{
	Use:   "stats <netlist-file>",
	Short: "Run dead-code elimination and carry-chain analysis only",
	Long: `stats reports the dead-code sweep and carry-chain statistics for a
BLIF-like netlist, without touching reset candidates.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]
	if verbose {
		fmt.Printf("loading netlist: %s\n\n", path)
	}

	nl, err := loadNetlist(path)
	if err != nil {
		return err
	}

	logger := diag.New(os.Stdout)
	summary, err := pipeline.Run(nl, config.Config{Verbose: verbose}, logger)
	if err != nil {
		return fmt.Errorf("gatecleanup stats: %w", err)
	}

	fmt.Printf("\nDead-code sweep:\n")
	fmt.Printf("  removed:      %d node(s)\n", summary.Removed)
	fmt.Printf("  chain heads:  %d\n\n", summary.ChainHeads)

	fmt.Printf("Carry chains:\n")
	fmt.Printf("  adder chains:       %d (longest %d, total adders %d)\n",
		summary.Carry.AdderChainCount, summary.Carry.LongestAdderChain, summary.Carry.TotalAdders)
	fmt.Printf("  subtractor chains:  %d (longest %d, total subtractors %d)\n",
		summary.Carry.SubtractorChainCount, summary.Carry.LongestSubtractorChain, summary.Carry.TotalSubtractors)
	fmt.Printf("  geomean length:     %.3f\n", summary.Carry.GeomeanAddSubLength)

	return nil
}
