// Package carrychain detects adder/subtractor chains threaded through
// PAD-initialized carry inputs and reports chain-length statistics,
// component D of the cleanup pipeline.
package carrychain

import (
	"math"

	"github.com/OpenTraceLab/gatecleanup/pkg/netlist"
)

// Stats is the statistics record produced by Analyze. It replaces the
// distilled spec's process-wide global counters so a run is re-entrant
// and independently testable.
type Stats struct {
	AdderChainCount        int
	LongestAdderChain      int
	TotalAdders            int
	SubtractorChainCount   int
	LongestSubtractorChain int
	TotalSubtractors       int
	GeomeanAddSubLength    float64
}

// Analyze walks forward from each chain head (an ADD/MINUS node whose
// carry-in is driven by PAD, as identified by cleanup.MarkForward) via its
// carry-out/fanout-0 edge, accumulating per-type chain statistics and the
// geometric mean chain length across both adders and subtractors.
//
// Analyze must run after cleanup.Detach, since the walk terminates on a
// node tagged TagRemoved.
func Analyze(heads []*netlist.Node) Stats {
	var s Stats
	var sumLogs float64
	var totalChains int

	for _, head := range heads {
		depth := walkChain(head)
		if depth == 0 {
			continue
		}
		switch head.Kind {
		case netlist.Add:
			s.AdderChainCount++
			s.TotalAdders += depth
			if depth > s.LongestAdderChain {
				s.LongestAdderChain = depth
			}
		case netlist.Minus:
			s.SubtractorChainCount++
			s.TotalSubtractors += depth
			if depth > s.LongestSubtractorChain {
				s.LongestSubtractorChain = depth
			}
		default:
			continue
		}
		sumLogs += math.Log(float64(depth))
		totalChains++
	}

	if totalChains > 0 {
		s.GeomeanAddSubLength = math.Exp(sumLogs / float64(totalChains))
	}
	return s
}

// walkChain returns the number of hops made following the carry-out chain
// starting at head, terminating when the current node is removed, the
// carry-out net is nil, or the first fanout slot is nil.
func walkChain(head *netlist.Node) int {
	depth := 0
	current := head
	for {
		if current.Tagged(netlist.TagRemoved) {
			break
		}
		out := current.CarryOutPin()
		if out == nil || out.Net == nil || len(out.Net.Fanout) == 0 || out.Net.Fanout[0] == nil {
			break
		}
		depth++
		current = out.Net.Fanout[0].Node
	}
	return depth
}
