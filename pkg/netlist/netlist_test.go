package netlist

import "testing"

func TestConnectAssignsFanoutSlot(t *testing.T) {
	nl := New()
	a := nl.NewNode("a", Input)
	g := nl.NewNode("g", Generic)

	aOut := a.AddOutputPin()
	gIn := g.AddInputPin()

	net := nl.NewNet("n1")
	SetDriver(net, aOut)
	Connect(net, gIn)

	if gIn.NetIdx != 0 {
		t.Fatalf("NetIdx = %d, want 0", gIn.NetIdx)
	}
	if net.Fanout[gIn.NetIdx] != gIn {
		t.Fatalf("fanout slot does not point back at gIn")
	}
	if gIn.Driver() != a {
		t.Fatalf("Driver() = %v, want a", gIn.Driver())
	}
}

func TestConnectMultipleFanoutSlots(t *testing.T) {
	nl := New()
	a := nl.NewNode("a", Input)
	g1 := nl.NewNode("g1", Generic)
	g2 := nl.NewNode("g2", Generic)

	net := nl.NewNet("n1")
	SetDriver(net, a.AddOutputPin())

	in1 := g1.AddInputPin()
	in2 := g2.AddInputPin()
	Connect(net, in1)
	Connect(net, in2)

	if in1.NetIdx != 0 || in2.NetIdx != 1 {
		t.Fatalf("unexpected slots: in1=%d in2=%d", in1.NetIdx, in2.NetIdx)
	}
	if len(net.Fanout) != 2 {
		t.Fatalf("fanout len = %d, want 2", len(net.Fanout))
	}
}

func TestDriverNilWhenUndriven(t *testing.T) {
	nl := New()
	g := nl.NewNode("g", Generic)
	in := g.AddInputPin()
	net := nl.NewNet("undriven")
	Connect(net, in)

	if in.Driver() != nil {
		t.Fatalf("Driver() = %v, want nil for undriven net", in.Driver())
	}
}

func TestCarryPins(t *testing.T) {
	nl := New()
	add := nl.NewNode("add0", Add)
	add.AddInputPin()
	add.AddInputPin()
	carryIn := add.AddInputPin()
	carryOut := add.AddOutputPin()

	if add.CarryInPin() != carryIn {
		t.Fatalf("CarryInPin() did not return the last input pin")
	}
	if add.CarryOutPin() != carryOut {
		t.Fatalf("CarryOutPin() did not return output pin 0")
	}
}

func TestVisitTagWriteOncePerPass(t *testing.T) {
	nl := New()
	n := nl.NewNode("n", Generic)

	if n.Tagged(TagBackward) {
		t.Fatalf("fresh node should not be tagged")
	}
	n.Tag(TagBackward)
	if !n.Tagged(TagBackward) {
		t.Fatalf("node should report TagBackward after Tag")
	}
	if n.Tagged(TagForward) {
		t.Fatalf("node tagged Backward should not also report Forward")
	}
}

func TestResetVisitClearsAllNodes(t *testing.T) {
	nl := New()
	a := nl.NewNode("a", Generic)
	b := nl.NewNode("b", Generic)
	a.Tag(TagBackward)
	b.Tag(TagForward)

	ResetVisit(nl)

	if a.Visit != TagNone || b.Visit != TagNone {
		t.Fatalf("ResetVisit did not clear tags: a=%v b=%v", a.Visit, b.Visit)
	}
}

func TestSourcesIncludesConstantsAndInputs(t *testing.T) {
	nl := New()
	in := nl.NewNode("rst", Input)
	nl.AddInput(in)

	sources := nl.Sources()
	if len(sources) != 4 {
		t.Fatalf("len(Sources()) = %d, want 4 (gnd, vcc, pad, rst)", len(sources))
	}
	want := map[*Node]bool{nl.Gnd: true, nl.Vcc: true, nl.Pad: true, in: true}
	for _, n := range sources {
		if !want[n] {
			t.Fatalf("unexpected source %v", n.Name)
		}
	}
}
