// Package resetelision implements components E, F, and the structural
// half of G: reset-candidate detection (the latch-driver bitmap pattern
// match), the output-cone exclusion filter, and the structural rewrite
// that ties the winning candidate to its inactive constant and stamps
// flip-flop initial values.
package resetelision

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// Registry is the bookkeeping for reset-candidate inputs across one
// detection run. It replaces the distilled spec's process-wide global
// candidate count and single-slot latest_candidate (spec §9: "scope
// accumulators to a single run to permit re-entrancy and testing").
type Registry struct {
	candidates map[*netlist.Node]bool
	latest     *netlist.Node

	// OnReject, if set, is called with the reason string ("collision",
	// "ambiguous", "output-cone") every time an input is rejected,
	// whether or not it was a live candidate before. The pipeline layer uses this to drive diag.Logger
	// without pkg/resetelision depending on internal/diag.
	OnReject func(n *netlist.Node, reason string)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{candidates: make(map[*netlist.Node]bool)}
}

// Count returns the number of inputs currently marked ResetIsCandidate.
// Invariant 5 (spec §8) requires this to equal the count of inputs whose
// ResetCandidate field equals ResetIsCandidate at every observable moment.
func (r *Registry) Count() int {
	return len(r.candidates)
}

// Latest returns the most recently promoted candidate, or nil if none.
func (r *Registry) Latest() *netlist.Node {
	return r.latest
}

// Candidates returns the current candidate set as a slice, in no
// particular order.
func (r *Registry) Candidates() []*netlist.Node {
	out := make([]*netlist.Node, 0, len(r.candidates))
	for n := range r.candidates {
		out = append(out, n)
	}
	return out
}

// promote marks in as a candidate tied to tieValue (its inactive value).
// If in was already a candidate with a different tieValue, this is a
// collision: in is rejected instead (spec §4.E "Marking a candidate
// INPUT"). Returns true if in ended up a live candidate.
func (r *Registry) promote(in *netlist.Node, tieValue int) bool {
	if in.ResetCandidate == netlist.ResetRejected {
		return false
	}
	if in.ResetCandidate == netlist.ResetIsCandidate {
		if in.PotentialResetValue != tieValue {
			r.reject(in, "collision")
			return false
		}
		return true
	}
	in.ResetCandidate = netlist.ResetIsCandidate
	in.PotentialResetValue = tieValue
	r.candidates[in] = true
	r.latest = in
	return true
}

// reject demotes in to ResetRejected, decrementing the candidate count
// exactly once if in was previously a live candidate (spec §8 invariant
// 5, §7 class 2 "only decrementing when a 1->-1 transition occurs").
func (r *Registry) reject(in *netlist.Node, reason string) {
	wasCandidate := in.ResetCandidate == netlist.ResetIsCandidate
	in.ResetCandidate = netlist.ResetRejected
	if wasCandidate {
		delete(r.candidates, in)
		if r.latest == in {
			r.latest = nil
		}
	}
	if r.OnReject != nil {
		r.OnReject(in, reason)
	}
}
