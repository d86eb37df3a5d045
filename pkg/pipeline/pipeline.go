// Package pipeline wires components A-H into the single entry point
// a cmd/gatecleanup subcommand calls: dead-code sweep, carry-chain
// analysis, and (when enabled) reset-candidate detection, output-cone
// filtering, and the rewrite, with the simulator cross-check gated by
// its own independent flag.
package pipeline

import (
	"fmt"

	"github.com/OpenTraceLab/gatecleanup/internal/config"
	"github.com/OpenTraceLab/gatecleanup/internal/diag"
	"github.com/OpenTraceLab/gatecleanup/pkg/carrychain"
	"github.com/OpenTraceLab/gatecleanup/pkg/cleanup"
	"github.com/OpenTraceLab/gatecleanup/pkg/netlist"
	"github.com/OpenTraceLab/gatecleanup/pkg/resetelision"
	"github.com/OpenTraceLab/gatecleanup/pkg/simcheck"
)

// Summary is returned from Run in place of the distilled spec's global
// counters (spec §9 "scope accumulators to a single run").
type Summary struct {
	Removed    int
	ChainHeads int
	Carry      carrychain.Stats

	ResetCandidateCount int
	RewrittenCandidate  *netlist.Node

	// CrossCheck is nil unless cfg.SimCrossCheck was set.
	CrossCheck *simcheck.Pattern
}

// Run executes the full pipeline over nl in place, per the ordering
// guarantee in spec §5: detachment before chain analysis, filter
// before rewrite, all backward tagging before the forward sweep.
func Run(nl *netlist.Netlist, cfg config.Config, logger *diag.Logger) (Summary, error) {
	result := cleanup.Run(nl)
	stats := carrychain.Analyze(result.ChainHeads)

	summary := Summary{
		Removed:    len(result.Removed),
		ChainHeads: len(result.ChainHeads),
		Carry:      stats,
	}

	if !cfg.ResetElision {
		logger.Summary(summary.Removed, summary.ChainHeads, stats.TotalAdders, stats.TotalSubtractors, 0)
		return summary, nil
	}

	reg := resetelision.NewRegistry()
	reg.OnReject = func(n *netlist.Node, reason string) {
		switch reason {
		case "collision":
			logger.RejectCollision(n.Name)
		case "output-cone":
			logger.RejectOutputCone(n.Name)
		case "ambiguous":
			logger.RejectAmbiguous(n.Name)
		}
	}

	resetelision.DetectCandidatesWith(nl, reg)
	resetelision.FilterOutputCone(nl, reg)

	summary.ResetCandidateCount = reg.Count()
	for _, c := range reg.Candidates() {
		logger.Accepted(c)
	}

	if reg.Count() == 1 {
		candidate := reg.Candidates()[0]

		// H must observe the candidate's actual fanout to the FFs it
		// drives before G's structural rewrite remaps that fanout onto
		// the tied-off constant and severs it -- run the cross-check
		// against the pre-rewrite graph, not the already-mutated one.
		if cfg.SimCrossCheck {
			p := simcheck.CrossCheck(nl, candidate)
			summary.CrossCheck = &p
		}

		rewritten, err := resetelision.Rewrite(nl, reg)
		if err != nil {
			return summary, fmt.Errorf("pipeline: rewrite: %w", err)
		}
		summary.RewrittenCandidate = rewritten
	}

	logger.Summary(summary.Removed, summary.ChainHeads, stats.TotalAdders, stats.TotalSubtractors, summary.ResetCandidateCount)

	return summary, nil
}
