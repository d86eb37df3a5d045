package resetelision

import (
	"testing"

	"github.com/OpenTraceLab/gatecleanup/pkg/netlist"
)

func wireNet(nl *netlist.Netlist, name string, driver *netlist.Pin, fanin ...*netlist.Pin) *netlist.Net {
	net := nl.NewNet(name)
	netlist.SetDriver(net, driver)
	for _, in := range fanin {
		netlist.Connect(net, in)
	}
	return net
}

// buildLUT creates a Generic node with the given bitmap, wiring colDrivers[i]
// to input pin i.
func buildLUT(nl *netlist.Netlist, name string, bitMap []string, isOnGate bool, colDrivers []*netlist.Node) *netlist.Node {
	l := nl.NewNode(name, netlist.Generic)
	l.BitMap = bitMap
	l.BitMapLineCount = len(bitMap)
	l.NumInputPins = len(colDrivers)
	l.IsOnGate = isOnGate
	l.AddOutputPin()
	for _, d := range colDrivers {
		in := l.AddInputPin()
		wireNet(nl, d.Name+"_to_"+name, d.Outputs[0], in)
	}
	return l
}

func newInput(nl *netlist.Netlist, name string) *netlist.Node {
	n := nl.NewNode(name, netlist.Input)
	n.AddOutputPin()
	nl.AddInput(n)
	return n
}

func newFF(nl *netlist.Netlist, name string, d *netlist.Node) *netlist.Node {
	ff := nl.NewNode(name, netlist.FF)
	in := ff.AddInputPin()
	ff.AddOutputPin()
	wireNet(nl, name+"_d", d.Outputs[0], in)
	nl.AddFF(ff)
	return ff
}

func addOutput(nl *netlist.Netlist, name string, driver *netlist.Node) *netlist.Node {
	y := nl.NewNode(name, netlist.Output)
	in := y.AddInputPin()
	wireNet(nl, name+"_net", driver.Outputs[0], in)
	nl.AddOutput(y)
	return y
}

// TestUniformColumnReset implements scenario S3.
func TestUniformColumnReset(t *testing.T) {
	nl := netlist.New()
	rst := newInput(nl, "rst")
	other := newInput(nl, "other")

	lut := buildLUT(nl, "lut", []string{"1-", "1-"}, true, []*netlist.Node{rst, other})
	ff := newFF(nl, "q", lut)
	addOutput(nl, "y", ff)

	reg := DetectCandidates(nl)

	if rst.ResetCandidate != netlist.ResetIsCandidate {
		t.Fatalf("rst.ResetCandidate = %v, want ResetIsCandidate", rst.ResetCandidate)
	}
	if rst.PotentialResetValue != 0 {
		t.Fatalf("rst.PotentialResetValue = %d, want 0", rst.PotentialResetValue)
	}
	if ff.DerivedInitialValue != 0 {
		t.Fatalf("ff.DerivedInitialValue = %d, want 0", ff.DerivedInitialValue)
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

// TestIsolatingSingletonReset implements scenario S4: a 3-row bitmap
// where the reset column has exactly one defined bit, isolated on its
// own row, and the opposite-polarity sub-test does not also pass.
func TestIsolatingSingletonReset(t *testing.T) {
	nl := netlist.New()
	other := newInput(nl, "other")
	rst := newInput(nl, "rst")

	// columns: [other, rst]
	lut := buildLUT(nl, "lut", []string{"-0", "1-", "1-"}, false, []*netlist.Node{other, rst})
	ff := newFF(nl, "q", lut)
	addOutput(nl, "y", ff)

	DetectCandidates(nl)

	if rst.ResetCandidate != netlist.ResetIsCandidate {
		t.Fatalf("rst.ResetCandidate = %v, want ResetIsCandidate", rst.ResetCandidate)
	}
	if ff.DerivedInitialValue != 0 {
		t.Fatalf("ff.DerivedInitialValue = %d, want 0", ff.DerivedInitialValue)
	}
}

// TestCollisionRejection implements scenario S5: two flip-flops drive two
// candidates that disagree on the tie value for the same input.
func TestCollisionRejection(t *testing.T) {
	nl := netlist.New()
	rst := newInput(nl, "rst")
	a := newInput(nl, "a")
	b := newInput(nl, "b")

	// lut1: uniform column 0 all '1' -> tieValue 0.
	lut1 := buildLUT(nl, "lut1", []string{"1-", "1-"}, true, []*netlist.Node{rst, a})
	ff1 := newFF(nl, "q1", lut1)
	addOutput(nl, "y1", ff1)

	// lut2: uniform column 0 all '0' -> positiveReset=false -> tieValue 1.
	lut2 := buildLUT(nl, "lut2", []string{"0-", "0-"}, true, []*netlist.Node{rst, b})
	ff2 := newFF(nl, "q2", lut2)
	addOutput(nl, "y2", ff2)

	reg := DetectCandidates(nl)

	if rst.ResetCandidate != netlist.ResetRejected {
		t.Fatalf("rst.ResetCandidate = %v, want ResetRejected after collision", rst.ResetCandidate)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 after collision rejection", reg.Count())
	}
}

// TestOutputConeExclusion implements scenario S6: the candidate's fanout
// reaches a primary output directly through combinational logic, so it
// must be rejected by the filter even though latch-driver analysis
// accepted it.
func TestOutputConeExclusion(t *testing.T) {
	nl := netlist.New()
	rst := newInput(nl, "rst")
	other := newInput(nl, "other")

	lut := buildLUT(nl, "lut", []string{"1-", "1-"}, true, []*netlist.Node{rst, other})
	ff := newFF(nl, "q", lut)
	addOutput(nl, "y1", ff)

	// Pure combinational path: rst -> buf -> y2 (a primary output).
	buf := nl.NewNode("buf", netlist.Generic)
	buf.AddOutputPin()
	in := buf.AddInputPin()
	wireNet(nl, "rst_to_buf", rst.Outputs[0], in)
	addOutput(nl, "y2", buf)

	reg := DetectCandidates(nl)
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 before filtering", reg.Count())
	}

	FilterOutputCone(nl, reg)

	if rst.ResetCandidate != netlist.ResetRejected {
		t.Fatalf("rst.ResetCandidate = %v, want ResetRejected after output-cone filter", rst.ResetCandidate)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 after output-cone filter", reg.Count())
	}
}

// TestRewriteStructural checks invariants 6 and 7: after Rewrite, no pin
// references the candidate as driver, and every FF fed directly by one of
// the candidate's children (a grandchild FF) gets HasInitialValue stamped.
func TestRewriteStructural(t *testing.T) {
	nl := netlist.New()
	rst := newInput(nl, "rst")
	other := newInput(nl, "other")

	lut := buildLUT(nl, "lut", []string{"1-", "1-"}, true, []*netlist.Node{rst, other})
	ff := newFF(nl, "q", lut)
	addOutput(nl, "y", ff)

	reg := DetectCandidates(nl)
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}

	candidate, err := Rewrite(nl, reg)
	if err != nil {
		t.Fatalf("Rewrite returned error: %v", err)
	}
	if candidate != rst {
		t.Fatalf("Rewrite returned %v, want rst", candidate)
	}

	for _, n := range nl.Nodes() {
		for _, in := range n.Inputs {
			if in.Net != nil && in.Net.Driver != nil && in.Net.Driver.Node == rst {
				t.Fatalf("pin on %s still driven by rst after Rewrite", n.Name)
			}
		}
	}
	if !ff.HasInitialValue {
		t.Fatalf("ff.HasInitialValue = false, want true after Rewrite")
	}
	if ff.InitialValue != ff.DerivedInitialValue {
		t.Fatalf("ff.InitialValue = %d, want %d (DerivedInitialValue)", ff.InitialValue, ff.DerivedInitialValue)
	}

	// rst.PotentialResetValue == 0 -> tied to vcc per spec §4.G
	// ("if potential_reset_value == 1 use gnd, else use vcc").
	vccNet := nl.Vcc.Outputs[0].Net
	found := false
	for _, p := range vccNet.Fanout {
		if p != nil && p.Node == lut {
			found = true
		}
	}
	if !found {
		t.Fatalf("lut's rst input pin should now be driven by vcc")
	}
}

// TestRewriteRequiresSingleCandidate checks that Rewrite refuses to run
// with zero or multiple surviving candidates.
func TestRewriteRequiresSingleCandidate(t *testing.T) {
	nl := netlist.New()
	reg := NewRegistry()
	if _, err := Rewrite(nl, reg); err == nil {
		t.Fatalf("expected error for zero candidates")
	}
}
