// Package diag provides the run's diagnostic output. It is a thin
// io.Writer wrapper rather than a structured logging library: nothing
// in the teacher's corpus pulls in one, and every cmd/* tool in it
// reports progress with bare fmt.Printf/Fprintln, so this package
// keeps that idiom while giving the pipeline a single seam to route
// diagnostics through (instead of calling fmt directly from pkg/*).
package diag

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/gatecleanup/pkg/netlist"
)

// Logger writes run diagnostics to an underlying io.Writer (typically
// os.Stderr from cmd/gatecleanup, or a buffer in tests).
type Logger struct {
	w io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Accepted reports a reset candidate that survived detection and the
// output-cone filter.
func (l *Logger) Accepted(n *netlist.Node) {
	fmt.Fprintf(l.w, "reset candidate accepted: %s (tie=%d)\n", n.Name, n.PotentialResetValue)
}

// RejectCollision reports a candidate rejected because two latch
// drivers disagreed on its tie value (spec §4.E collision rule).
func (l *Logger) RejectCollision(name string) {
	fmt.Fprintf(l.w, "reset candidate rejected: %s (tie-value collision)\n", name)
}

// RejectOutputCone reports a candidate rejected because its fanout
// reaches a primary output directly (spec §4.F).
func (l *Logger) RejectOutputCone(name string) {
	fmt.Fprintf(l.w, "reset candidate rejected: %s (reaches a primary output)\n", name)
}

// RejectAmbiguous reports a candidate rejected because neither (or
// both) Case-2 sub-tests passed on a latch-driver bitmap (spec §4.E).
func (l *Logger) RejectAmbiguous(name string) {
	fmt.Fprintf(l.w, "reset candidate rejected: %s (ambiguous bitmap pattern)\n", name)
}

// Summary reports the end-of-run totals gathered from the cleanup,
// carry-chain, and reset-elision passes.
func (l *Logger) Summary(removed, chainHeads, adders, subtractors, resetCandidates int) {
	fmt.Fprintf(l.w, "cleanup: removed %d dead node(s), found %d carry-chain head(s)\n", removed, chainHeads)
	fmt.Fprintf(l.w, "carry chains: %d adder(s), %d subtractor(s)\n", adders, subtractors)
	fmt.Fprintf(l.w, "reset elision: %d candidate(s) remaining after filtering\n", resetCandidates)
}
