package resetelision

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// FilterOutputCone is component F: from each top-level output, descend
// via input-driver edges (tagged TagOutToIn), stopping at flip-flops and
// memories. Any primary INPUT reached this way cannot be a pure
// synchronous reset (its fanout reaches a primary output directly
// through combinational logic), so a live candidate found this way is
// rejected.
func FilterOutputCone(nl *netlist.Netlist, reg *Registry) {
	for _, out := range nl.Outputs {
		visitOutToIn(out, reg)
	}
}

func visitOutToIn(n *netlist.Node, reg *Registry) {
	if n.Tagged(netlist.TagOutToIn) {
		return
	}
	n.Tag(netlist.TagOutToIn)

	if n.Kind == netlist.Input && n.ResetCandidate == netlist.ResetIsCandidate {
		reg.reject(n, "output-cone")
		return
	}
	if n.Kind == netlist.FF || n.Kind == netlist.Memory {
		return
	}

	for _, in := range n.Inputs {
		if d := in.Driver(); d != nil {
			visitOutToIn(d, reg)
		}
	}
}
