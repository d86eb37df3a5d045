// Package cleanup implements the dead-logic sweep (backward/forward
// reachability marking) and the detacher that nulls fanout back-edges of
// removed nodes. It is components B and C of the netlist cleanup
// pipeline.
package cleanup

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// MarkBackward tags with TagBackward every node reachable from a
// top-level output by following input_pin -> net.driver_pin -> driver_node
// edges. Nets with no driver are skipped. Tagging happens before
// recursion so that cycles through flip-flops terminate.
func MarkBackward(nl *netlist.Netlist) {
	for _, out := range nl.Outputs {
		markBackward(out)
	}
}

func markBackward(n *netlist.Node) {
	if n.Tagged(netlist.TagBackward) {
		return
	}
	n.Tag(netlist.TagBackward)
	for _, in := range n.Inputs {
		if in.Net == nil || in.Net.Driver == nil {
			continue
		}
		markBackward(in.Net.Driver.Node)
	}
}

// Sweep is the result of the forward sweep: the append-only removal list
// and chain-head list used by the detacher and carry-chain analyzer.
type Sweep struct {
	Removed    []*netlist.Node
	ChainHeads []*netlist.Node
}

// MarkForward runs the forward sweep from every top-level source (gnd,
// vcc, pad, and the primary inputs), tagging with TagForward and
// accumulating the removal list and chain-head list. MarkBackward must
// have already run in this pipeline invocation.
func MarkForward(nl *netlist.Netlist) Sweep {
	s := &Sweep{}
	for _, src := range nl.Sources() {
		markForward(s, src, true, false)
	}
	return *s
}

func markForward(s *Sweep, n *netlist.Node, isToplevel bool, removeMe bool) {
	if n.Tagged(netlist.TagForward) {
		return
	}

	removeMe = removeMe || (!n.Tagged(netlist.TagBackward) && !isToplevel)
	n.Tag(netlist.TagForward)

	if removeMe {
		s.Removed = append(s.Removed, n)
	}

	if n.Kind == netlist.Add || n.Kind == netlist.Minus {
		if in := n.CarryInPin(); in != nil && in.Driver() != nil && in.Driver().Kind == netlist.Pad {
			s.ChainHeads = append(s.ChainHeads, n)
		}
	}

	for _, out := range n.Outputs {
		if out.Net == nil {
			continue
		}
		for _, fanout := range out.Net.Fanout {
			if fanout == nil {
				continue
			}
			child := fanout.Node
			if child.Tagged(netlist.TagForward) {
				continue
			}
			markForward(s, child, false, removeMe)
		}
	}
}
