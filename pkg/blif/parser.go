package blif

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/gatecleanup/pkg/netlist"
)

var parser = participle.MustBuild[File](
	participle.Lexer(Lexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse reads a BLIF-like netlist from r and returns its AST.
func Parse(r io.Reader) (*File, error) {
	f, err := parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("blif: parse: %w", err)
	}
	return f, nil
}

// Build constructs a netlist.Netlist from a parsed File. It resolves
// named nets lazily: a net referenced before its driver is declared
// (the common case for .outputs, which precede the .names/.latch
// blocks that drive them) is created on first reference and given a
// driver later when that block is built.
func Build(f *File) *netlist.Netlist {
	nl := netlist.New()
	nets := make(map[string]*netlist.Net)

	getNet := func(name string) *netlist.Net {
		if n, ok := nets[name]; ok {
			return n
		}
		n := nl.NewNet(name)
		nets[name] = n
		return n
	}

	for _, name := range f.Inputs {
		n := nl.NewNode(name, netlist.Input)
		out := n.AddOutputPin()
		netlist.SetDriver(getNet(name), out)
		nl.AddInput(n)
	}

	for _, name := range f.Outputs {
		n := nl.NewNode(name, netlist.Output)
		in := n.AddInputPin()
		netlist.Connect(getNet(name), in)
		nl.AddOutput(n)
	}

	for _, item := range f.Items {
		switch {
		case item.Names != nil:
			buildNames(nl, getNet, item.Names)
		case item.Latch != nil:
			buildLatch(nl, getNet, item.Latch)
		}
	}

	return nl
}

func buildNames(nl *netlist.Netlist, getNet func(string) *netlist.Net, nb *NamesBlock) {
	g := nl.NewNode(nb.OutputName(), netlist.Generic)
	g.NumInputPins = len(nb.InputNames())
	g.BitMapLineCount = len(nb.Rows)
	g.IsOnGate = true
	if len(nb.Rows) > 0 {
		g.IsOnGate = nb.Rows[0].Bit == "1"
	}
	g.BitMap = make([]string, len(nb.Rows))
	for i, row := range nb.Rows {
		g.BitMap[i] = row.Pattern
	}

	out := g.AddOutputPin()
	netlist.SetDriver(getNet(nb.OutputName()), out)

	for _, name := range nb.InputNames() {
		in := g.AddInputPin()
		netlist.Connect(getNet(name), in)
	}
}

func buildLatch(nl *netlist.Netlist, getNet func(string) *netlist.Net, l *LatchDecl) {
	ff := nl.NewNode(l.Q, netlist.FF)
	in := ff.AddInputPin()
	netlist.Connect(getNet(l.D), in)
	out := ff.AddOutputPin()
	netlist.SetDriver(getNet(l.Q), out)

	switch l.Initial {
	case "0":
		ff.HasInitialValue = true
		ff.InitialValue = 0
	case "1":
		ff.HasInitialValue = true
		ff.InitialValue = 1
	default:
		// "2" (don't-care) and "3" (unknown), or omitted: no initial
		// value asserted by the source netlist.
	}

	nl.AddFF(ff)
}
