package simcheck

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// Simulator is the cooperative event-driven engine named in spec §4.H:
// a FIFO of nodes ready to fire, a per-node (value, cycle) history, and
// a queued-membership set standing in for the source's per-node
// in_queue flag.
type Simulator struct {
	nl     *netlist.Netlist
	hist   *History
	queue  []*netlist.Node
	queued map[*netlist.Node]bool
}

// NewSimulator builds a cooperative simulator over nl. No cycle has
// run yet.
func NewSimulator(nl *netlist.Netlist) *Simulator {
	return &Simulator{
		nl:     nl,
		hist:   newHistory(),
		queued: make(map[*netlist.Node]bool),
	}
}

// Reset is reinitialize_simulation: it clears the per-node history so a
// fresh rst_value run starts from a clean slate.
func (s *Simulator) Reset() {
	s.hist = newHistory()
	s.queue = nil
	s.queued = make(map[*netlist.Node]bool)
}

func (s *Simulator) enqueue(n *netlist.Node) {
	if s.queued[n] {
		return
	}
	s.queued[n] = true
	s.queue = append(s.queue, n)
}

// runCycle seeds every primary input with -1 except the candidate
// (which gets rstValue), records the three constants' values, enqueues
// the ready children of the inputs and constants, and drains the queue
// until every reachable node has a value recorded at cycle.
func (s *Simulator) runCycle(cycle int, rstValue int, candidate *netlist.Node) {
	for _, in := range s.nl.Inputs {
		v := -1
		if in == candidate {
			v = rstValue
		}
		s.hist.set(in, cycle, v)
	}
	s.hist.set(s.nl.Gnd, cycle, 0)
	s.hist.set(s.nl.Vcc, cycle, 1)
	s.hist.set(s.nl.Pad, cycle, -1)

	for _, in := range s.nl.Inputs {
		s.enqueueReadyChildren(in, cycle)
	}
	s.enqueueReadyChildren(s.nl.Gnd, cycle)
	s.enqueueReadyChildren(s.nl.Vcc, cycle)
	s.enqueueReadyChildren(s.nl.Pad, cycle)

	for len(s.queue) > 0 {
		n := s.queue[0]
		s.queue = s.queue[1:]
		s.queued[n] = false

		if _, done := s.hist.get(n, cycle); done {
			continue
		}
		s.hist.set(n, cycle, compute(n, cycle, s.hist))
		s.enqueueReadyChildren(n, cycle)
	}
}

func (s *Simulator) enqueueReadyChildren(n *netlist.Node, cycle int) {
	for _, c := range children(n) {
		if s.queued[c] {
			continue
		}
		if _, done := s.hist.get(c, cycle); done {
			continue
		}
		if ready(c, cycle, s.hist) {
			s.enqueue(c)
		}
	}
}

// allFFsUndefined reports whether every flip-flop's value at cycle is
// still -1 (unreached flip-flops count as undefined, matching "remain
// -1" for outputs the reset signal never reaches this cycle).
func (s *Simulator) allFFsUndefined(cycle int) bool {
	for _, ff := range s.nl.FFs {
		if v, ok := s.hist.get(ff, cycle); ok && v != -1 {
			return false
		}
	}
	return true
}

// transitioned reports whether at least one flip-flop was undefined at
// cycle c0 and has taken a defined value by cycle c1, within the same
// run (no Reset between c0 and c1). This is the cycle-1 half of
// convert_reset_to_init's up_one/down_one reading: it does not ask
// "is everything still undefined" (that's allFFsUndefined again) but
// "did the driven value actually move something out of undefined".
func (s *Simulator) transitioned(c0, c1 int) bool {
	for _, ff := range s.nl.FFs {
		v0, ok0 := s.hist.get(ff, c0)
		wasUndefined := !ok0 || v0 == -1
		v1, ok1 := s.hist.get(ff, c1)
		isDefined := ok1 && v1 != -1
		if wasUndefined && isDefined {
			return true
		}
	}
	return false
}
