// Package netlist provides the in-memory graph model for an elaborated
// gate-level netlist: nodes, nets, and pins, plus the per-pass visit
// tagging used by the cleanup, carry-chain, and reset-elision passes.
package netlist

// NodeKind identifies the variant of a Node.
type NodeKind int

const (
	Input NodeKind = iota
	Output
	Clock
	Gnd
	Vcc
	Pad
	FF
	Add
	Minus
	Memory
	Generic
)

func (k NodeKind) String() string {
	switch k {
	case Input:
		return "INPUT"
	case Output:
		return "OUTPUT"
	case Clock:
		return "CLOCK"
	case Gnd:
		return "GND"
	case Vcc:
		return "VCC"
	case Pad:
		return "PAD"
	case FF:
		return "FF"
	case Add:
		return "ADD"
	case Minus:
		return "MINUS"
	case Memory:
		return "MEMORY"
	case Generic:
		return "GENERIC"
	default:
		return "UNKNOWN"
	}
}

// ResetState tracks a primary INPUT's progress through candidate detection.
type ResetState int

const (
	ResetUnknown    ResetState = 0
	ResetIsCandidate ResetState = 1
	ResetRejected    ResetState = -1
)

// PinRole distinguishes an input pin (driven by a net) from an output pin
// (the net's driver).
type PinRole int

const (
	PinInput PinRole = iota
	PinOutput
)

// NodeID is a stable, arena-assigned identity for a Node. It remains valid
// after the node is logically removed (detached, never freed).
type NodeID int

// Node is one gate, flip-flop, constant source, or primary I/O in the
// netlist. See the NodeKind-specific fields below for reset/FF metadata.
type Node struct {
	ID     NodeID
	Name   string
	Kind   NodeKind
	Inputs  []*Pin
	Outputs []*Pin

	Visit VisitTag

	// FF-only.
	HasInitialValue    bool
	InitialValue       int
	DerivedInitialValue int

	// Input-only (primary inputs considered as reset candidates).
	ResetCandidate      ResetState
	PotentialResetValue int // -1 = unset, else 0/1

	// Generic-only: sum-of-products bitmap over {'0','1','-'}.
	BitMap          []string
	BitMapLineCount int
	NumInputPins    int
	IsOnGate        bool
}

// NewNode allocates a node with the given kind and name. Pins are appended
// via AddInputPin/AddOutputPin.
func NewNode(id NodeID, name string, kind NodeKind) *Node {
	n := &Node{
		ID:                  id,
		Name:                name,
		Kind:                kind,
		PotentialResetValue: -1,
	}
	return n
}

// AddInputPin appends and returns a new unconnected input pin.
func (n *Node) AddInputPin() *Pin {
	p := &Pin{Node: n, Role: PinInput}
	n.Inputs = append(n.Inputs, p)
	return p
}

// AddOutputPin appends and returns a new unconnected output pin.
func (n *Node) AddOutputPin() *Pin {
	p := &Pin{Node: n, Role: PinOutput}
	n.Outputs = append(n.Outputs, p)
	return p
}

// CarryInPin returns the carry-in input pin of an ADD/MINUS node (the last
// input pin, index n-1), or nil if the node has no input pins.
func (n *Node) CarryInPin() *Pin {
	if len(n.Inputs) == 0 {
		return nil
	}
	return n.Inputs[len(n.Inputs)-1]
}

// CarryOutPin returns the carry-out output pin of an ADD/MINUS node (output
// pin index 0), or nil if the node has no output pins.
func (n *Node) CarryOutPin() *Pin {
	if len(n.Outputs) == 0 {
		return nil
	}
	return n.Outputs[0]
}

// Pin is one end of a connection, owned by exactly one Node.
type Pin struct {
	Node *Node
	Role PinRole
	Net  *Net
	// NetIdx is this pin's own index within Net.Fanout. Only meaningful for
	// input pins (Role == PinInput); it is how Detach finds the slot to null.
	NetIdx int
}

// Driver returns the node driving this pin's net, or nil if the pin is
// unconnected or the net is undriven.
func (p *Pin) Driver() *Node {
	if p.Net == nil || p.Net.Driver == nil {
		return nil
	}
	return p.Net.Driver.Node
}

// Net is a directed hyperwire: at most one driver pin, an ordered (and
// possibly sparse, post-detachment) array of fanout pins.
type Net struct {
	Name   string
	Driver *Pin
	Fanout []*Pin
}

// Connect attaches in (an input pin) to net by appending it to net's
// fanout, recording in's resulting slot index.
func Connect(net *Net, in *Pin) {
	in.Net = net
	in.NetIdx = len(net.Fanout)
	net.Fanout = append(net.Fanout, in)
}

// SetDriver assigns out as net's driver pin and records net on out.
func SetDriver(net *Net, out *Pin) {
	net.Driver = out
	out.Net = net
}

// Netlist is the owning root of the graph: top-level boundary arrays, the
// three singleton constants, and arena storage for every node and net it
// allocates. Pins are created by Node.AddInputPin/AddOutputPin and are held
// by their nodes; the pins slice is not filled. The graph is borrowed by the cleanup/reset-elision passes, which
// mutate it in place and never free entities (see package cleanup).
type Netlist struct {
	Inputs  []*Node
	Outputs []*Node
	FFs     []*Node

	Gnd *Node
	Vcc *Node
	Pad *Node

	nodes []*Node
	nets  []*Net
	pins  []*Pin

	nextID NodeID
}

// New creates an empty netlist, pre-populating the gnd/vcc/pad singletons.
func New() *Netlist {
	nl := &Netlist{}
	nl.Gnd = nl.NewNode("gnd", Gnd)
	nl.Vcc = nl.NewNode("vcc", Vcc)
	nl.Pad = nl.NewNode("pad", Pad)
	return nl
}

// NewNode allocates and arena-registers a node owned by nl.
func (nl *Netlist) NewNode(name string, kind NodeKind) *Node {
	n := NewNode(nl.nextID, name, kind)
	nl.nextID++
	nl.nodes = append(nl.nodes, n)
	return n
}

// NewNet allocates and arena-registers a net owned by nl.
func (nl *Netlist) NewNet(name string) *Net {
	net := &Net{Name: name}
	nl.nets = append(nl.nets, net)
	return net
}

// Nodes returns every node ever allocated in this netlist, including
// detached (removed) ones.
func (nl *Netlist) Nodes() []*Node {
	return nl.nodes
}

// Nets returns every net ever allocated in this netlist.
func (nl *Netlist) Nets() []*Net {
	return nl.nets
}

// AddInput registers n as a top-level primary input.
func (nl *Netlist) AddInput(n *Node) { nl.Inputs = append(nl.Inputs, n) }

// AddOutput registers n as a top-level primary output.
func (nl *Netlist) AddOutput(n *Node) { nl.Outputs = append(nl.Outputs, n) }

// AddFF registers n as a top-level flip-flop.
func (nl *Netlist) AddFF(n *Node) { nl.FFs = append(nl.FFs, n) }

// Sources returns the top-level sources used to seed the forward sweep:
// gnd, vcc, pad, and every primary input.
func (nl *Netlist) Sources() []*Node {
	out := make([]*Node, 0, 3+len(nl.Inputs))
	out = append(out, nl.Gnd, nl.Vcc, nl.Pad)
	out = append(out, nl.Inputs...)
	return out
}
