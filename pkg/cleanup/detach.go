package cleanup

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// Detach nulls the fanout-pin back-edge of every input pin on each removed
// node, then tags the node TagRemoved. Nodes and pins are never freed:
// their identity remains valid so the carry-chain analyzer can use
// TagRemoved as a chain terminator.
func Detach(removed []*netlist.Node) {
	for _, n := range removed {
		for _, in := range n.Inputs {
			if in.Net == nil {
				continue
			}
			if in.NetIdx < 0 || in.NetIdx >= len(in.Net.Fanout) {
				continue
			}
			in.Net.Fanout[in.NetIdx] = nil
		}
		n.Tag(netlist.TagRemoved)
	}
}
