package cleanup

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// Result bundles the outputs of the dead-logic sweep that downstream
// passes (carry-chain analysis, reset elision) consume.
type Result struct {
	Removed    []*netlist.Node
	ChainHeads []*netlist.Node
}

// Run executes components B and C of the pipeline in order: the backward
// sweep must complete before the forward sweep inspects TagBackward
// marks, and detachment must precede any pass (such as carrychain.Analyze)
// that treats TagRemoved as a terminator.
func Run(nl *netlist.Netlist) Result {
	MarkBackward(nl)
	sweep := MarkForward(nl)
	Detach(sweep.Removed)
	return Result{Removed: sweep.Removed, ChainHeads: sweep.ChainHeads}
}
