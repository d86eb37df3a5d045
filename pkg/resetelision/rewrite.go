package resetelision

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// Rewrite is the structural half of component G. It runs only when
// exactly one candidate remains in reg (spec §4.G). It determines the
// replacement constant from the candidate's PotentialResetValue, stamps
// HasInitialValue/InitialValue on every grandchild flip-flop of the
// candidate, and remaps every child input pin driven by the candidate to
// the constant's output net. It returns the rewritten candidate so
// callers (e.g. the textual rewrite in package blif) know its name and
// tie polarity.
func Rewrite(nl *netlist.Netlist, reg *Registry) (*netlist.Node, error) {
	candidates := reg.Candidates()
	if len(candidates) != 1 {
		return nil, ErrNoSingleCandidate
	}
	candidate := candidates[0]

	// Per spec §4.G: if potential_reset_value == 1 use gnd, else vcc —
	// the candidate is being held at its inactive value.
	replacement := nl.Vcc
	if candidate.PotentialResetValue == 1 {
		replacement = nl.Gnd
	}
	targetNet := constantNet(replacement)

	children := directFanout(candidate)

	for _, child := range children {
		for _, gc := range directFanout(child) {
			if gc.Kind == netlist.FF {
				gc.HasInitialValue = true
				gc.InitialValue = gc.DerivedInitialValue
			}
		}
	}

	for _, child := range children {
		for _, pin := range child.Inputs {
			if pin.Net == nil || pin.Net.Driver == nil || pin.Net.Driver.Node != candidate {
				continue
			}
			removeFromFanout(pin.Net, pin)
			netlist.Connect(targetNet, pin)
		}
	}

	return candidate, nil
}

// constantNet returns the net driven by n's (singleton constant node)
// output pin 0, creating the pin/net pair if the node has none yet.
func constantNet(n *netlist.Node) *netlist.Net {
	if len(n.Outputs) > 0 && n.Outputs[0].Net != nil {
		return n.Outputs[0].Net
	}
	out := n.AddOutputPin()
	net := &netlist.Net{Name: n.Name + "_net"}
	netlist.SetDriver(net, out)
	return net
}

// directFanout returns the distinct nodes reached by following n's
// output pins to their nets' fanout pins.
func directFanout(n *netlist.Node) []*netlist.Node {
	seen := make(map[*netlist.Node]bool)
	var out []*netlist.Node
	for _, o := range n.Outputs {
		if o.Net == nil {
			continue
		}
		for _, fanout := range o.Net.Fanout {
			if fanout == nil || seen[fanout.Node] {
				continue
			}
			seen[fanout.Node] = true
			out = append(out, fanout.Node)
		}
	}
	return out
}

// removeFromFanout removes pin's entry from net.Fanout, compacting the
// slice and fixing the NetIdx of every pin shifted by the removal.
func removeFromFanout(net *netlist.Net, pin *netlist.Pin) {
	idx := pin.NetIdx
	if idx < 0 || idx >= len(net.Fanout) || net.Fanout[idx] != pin {
		// Fall back to a linear scan if NetIdx is stale.
		idx = -1
		for i, p := range net.Fanout {
			if p == pin {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}
	}
	net.Fanout = append(net.Fanout[:idx], net.Fanout[idx+1:]...)
	for i := idx; i < len(net.Fanout); i++ {
		if net.Fanout[i] != nil {
			net.Fanout[i].NetIdx = i
		}
	}
}
