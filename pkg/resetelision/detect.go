package resetelision

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// DetectCandidates is component E of the pipeline: it visits every
// top-level output with the TagCheckLatches tag and, whenever it
// encounters a flip-flop, runs latch-driver analysis on the
// combinational node driving that flip-flop's D input (input pin 0).
// Recursion otherwise follows input-driver edges upward, pruned by the
// visit tag.
func DetectCandidates(nl *netlist.Netlist) *Registry {
	return DetectCandidatesWith(nl, NewRegistry())
}

// DetectCandidatesWith runs the same pass into a caller-supplied
// registry, so callers that need to observe rejections as they happen
// (via Registry.OnReject) can install the hook before detection runs.
func DetectCandidatesWith(nl *netlist.Netlist, reg *Registry) *Registry {
	for _, out := range nl.Outputs {
		visitCheckLatches(out, reg)
	}
	return reg
}

func visitCheckLatches(n *netlist.Node, reg *Registry) {
	if n.Tagged(netlist.TagCheckLatches) {
		return
	}
	n.Tag(netlist.TagCheckLatches)

	if n.Kind == netlist.FF && len(n.Inputs) > 0 {
		if d := n.Inputs[0].Driver(); d != nil {
			analyzeLatchDriver(d, n, reg)
		}
	}

	for _, in := range n.Inputs {
		if d := in.Driver(); d != nil {
			visitCheckLatches(d, reg)
		}
	}
}

// analyzeLatchDriver is the two-case bitmap pattern match (spec §4.E). L
// is the combinational driver of ff's D input; only Generic nodes carry
// a bit_map, so non-Generic drivers are skipped (nothing to match).
func analyzeLatchDriver(l *netlist.Node, ff *netlist.Node, reg *Registry) {
	if l.Kind != netlist.Generic || l.BitMapLineCount == 0 {
		return
	}
	rows := l.BitMapLineCount

	for i := 0; i < l.NumInputPins && i < len(l.Inputs); i++ {
		drv := l.Inputs[i].Driver()
		if drv == nil || drv.Kind != netlist.Input {
			continue
		}
		if drv.ResetCandidate == netlist.ResetRejected {
			continue
		}

		is0, is1, last0, last1 := tallyColumn(l, i)

		switch {
		case is0 == rows || is1 == rows:
			// Case 1: uniform column — the input controls L
			// unconditionally in its truth table.
			positiveReset := l.BitMap[0][i] == '1'
			tieValue := 1
			if positiveReset {
				tieValue = 0
			}
			if reg.promote(drv, tieValue) {
				derived := 1
				if l.IsOnGate {
					derived = 0
				}
				ff.DerivedInitialValue = derived
			}
			return // stop iterating for this L

		default:
			// Case 2: isolating singleton — column i alone forces the
			// output on one row, and every other column on that row
			// is '-'.
			passA := is0 == 1 && rowAllDashExceptCol(l.BitMap[last0], i)
			passB := is1 == 1 && rowAllDashExceptCol(l.BitMap[last1], i)

			switch {
			case passA != passB:
				positiveReset := passB
				tieValue := 1
				if positiveReset {
					tieValue = 0
				}
				if reg.promote(drv, tieValue) {
					derived := 0
					if l.IsOnGate {
						derived = 1
					}
					ff.DerivedInitialValue = derived
				}
			default:
				// Both sub-tests fail, or both pass (ambiguous
				// bitmap) — reject per spec §9 open-question
				// resolution.
				reg.reject(drv, "ambiguous")
			}
		}
	}
}

// tallyColumn classifies column i of l.BitMap across all rows, counting
// '0' and '1' occurrences and recording the last row index at which
// each occurred.
func tallyColumn(l *netlist.Node, i int) (is0, is1, last0, last1 int) {
	last0, last1 = -1, -1
	for j, row := range l.BitMap {
		if i >= len(row) {
			continue
		}
		switch row[i] {
		case '0':
			is0++
			last0 = j
		case '1':
			is1++
			last1 = j
		}
	}
	return
}

// rowAllDashExceptCol reports whether every column of row other than col
// is '-'. An empty row is not a valid row to isolate on.
func rowAllDashExceptCol(row string, col int) bool {
	if row == "" {
		return false
	}
	for k := 0; k < len(row); k++ {
		if k == col {
			continue
		}
		if row[k] != '-' {
			return false
		}
	}
	return true
}
