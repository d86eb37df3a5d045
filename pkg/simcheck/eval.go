package simcheck

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// children returns the distinct nodes reached by following n's output
// pins to their nets' fanout, mirroring resetelision's directFanout.
func children(n *netlist.Node) []*netlist.Node {
	seen := make(map[*netlist.Node]bool)
	var out []*netlist.Node
	for _, o := range n.Outputs {
		if o.Net == nil {
			continue
		}
		for _, fo := range o.Net.Fanout {
			if fo == nil || seen[fo.Node] {
				continue
			}
			seen[fo.Node] = true
			out = append(out, fo.Node)
		}
	}
	return out
}

// ready reports whether n's value at cycle can be computed from what
// hist already holds. Flip-flops are always ready: at cycle 0 they are
// unconditionally undefined regardless of D, and at cycle >= 1 they
// depend only on D's value at cycle-1, which -- because a node only
// ever becomes a queue candidate once its driver has already fired for
// the cycle in question (see enqueueReadyChildren) -- is already in
// hist by construction. This is the cycle-offset that breaks feedback
// loops through the flip-flop instead of needing a visit tag.
func ready(n *netlist.Node, cycle int, hist *History) bool {
	switch n.Kind {
	case netlist.Gnd, netlist.Vcc, netlist.Pad, netlist.Input:
		return true
	case netlist.FF:
		return true
	default:
		for _, in := range n.Inputs {
			d := in.Driver()
			if d == nil {
				continue
			}
			if _, ok := hist.get(d, cycle); !ok {
				return false
			}
		}
		return true
	}
}

// compute is the opaque compute_and_store_value collaborator named by
// spec §4.H, given a concrete body: constants hold their fixed value,
// flip-flops pass through their D sample, and Generic nodes evaluate
// their sum-of-products bitmap against same-cycle input values. Add,
// Minus, and Memory nodes fall outside the reset-candidate cone this
// cross-check cares about and are treated as permanently undefined.
func compute(n *netlist.Node, cycle int, hist *History) int {
	switch n.Kind {
	case netlist.Gnd:
		return 0
	case netlist.Vcc:
		return 1
	case netlist.Pad:
		return -1
	case netlist.FF:
		return computeFF(n, cycle, hist)
	case netlist.Generic:
		return computeGeneric(n, cycle, hist)
	default:
		return -1
	}
}

// computeFF samples the D input at the cycle-offset that breaks
// feedback loops through the flip-flop: cycle-1 for cycle >= 1, so a
// same-cycle combinational loop back through this FF's own Q never has
// to resolve before the FF itself can fire. Cycle 0 has no prior cycle
// to sample, and a flip-flop's output is never observable before its
// first clock edge regardless of what D resolves to -- it is
// unconditionally undefined at cycle 0. This mirrors
// convert_reset_to_init's up_zero/down_zero reading, which requires
// every flip-flop to still be -1 at cycle 0 for either driven value
// before cycle 1 is even simulated.
func computeFF(n *netlist.Node, cycle int, hist *History) int {
	if cycle == 0 {
		return -1
	}
	if len(n.Inputs) == 0 {
		return -1
	}
	d := n.Inputs[0].Driver()
	if d == nil {
		return -1
	}
	v, ok := hist.get(d, cycle-1)
	if !ok {
		return -1
	}
	return v
}

// computeGeneric evaluates n's sum-of-products bitmap against the
// same-cycle value of each input. A dash column in a row never
// examines the corresponding input's value, so a row can still match
// (or fail to match, on a differing non-dash column) even when an
// unrelated input is undefined -- exactly the reset-mux shape
// component E detects, where a dash-masked data column sits beside a
// defined reset column. Only a non-dash column reading undefined can
// stop that particular row from matching; it does not stop the other
// rows from being tried.
func computeGeneric(n *netlist.Node, cycle int, hist *History) int {
	vals := make([]int, len(n.Inputs))
	for i, in := range n.Inputs {
		d := in.Driver()
		if d == nil {
			vals[i] = -1
			continue
		}
		v, ok := hist.get(d, cycle)
		if !ok {
			vals[i] = -1
			continue
		}
		vals[i] = v
	}

	onVal, offVal := 1, 0
	if !n.IsOnGate {
		onVal, offVal = 0, 1
	}
	for _, row := range n.BitMap {
		if rowMatches(row, vals) {
			return onVal
		}
	}
	return offVal
}

func rowMatches(row string, vals []int) bool {
	if len(row) != len(vals) {
		return false
	}
	for i, ch := range row {
		switch ch {
		case '-':
		case '0':
			if vals[i] != 0 {
				return false
			}
		case '1':
			if vals[i] != 1 {
				return false
			}
		}
	}
	return true
}
