package simcheck

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// History is the per-node (value, cycle) sample cache described in
// spec §4.H. It is keyed by node rather than by pin: this cross-check
// treats every node as producing one logical value per cycle, which is
// enough to classify reset behavior without modelling bus widths.
type History struct {
	values map[*netlist.Node]map[int]int
}

func newHistory() *History {
	return &History{values: make(map[*netlist.Node]map[int]int)}
}

func (h *History) get(n *netlist.Node, cycle int) (int, bool) {
	m, ok := h.values[n]
	if !ok {
		return 0, false
	}
	v, ok := m[cycle]
	return v, ok
}

func (h *History) set(n *netlist.Node, cycle, v int) {
	m, ok := h.values[n]
	if !ok {
		m = make(map[int]int)
		h.values[n] = m
	}
	m[cycle] = v
}
