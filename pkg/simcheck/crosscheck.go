package simcheck

import "github.com/OpenTraceLab/gatecleanup/pkg/netlist"

// Pattern is the four-observation result named in spec §4.H, grounded
// on convert_reset_to_init's four simulate_for_reset calls: "up"/"down"
// select which value is driven onto the candidate this run (1 and 0
// respectively) and "zero"/"one" select which cycle is read back within
// that run -- cycle 0, where every flip-flop must still be undefined
// regardless of the driven value, and cycle 1, where the question is
// whether anything has transitioned out of undefined since cycle 0
// under that same driven value. Each observation is 1 for "yes", -1 for
// "no".
type Pattern struct {
	UpZero   int
	UpOne    int
	DownZero int
	DownOne  int
}

// PositiveReset and NegativeReset are the two patterns spec §4.H
// recognizes as a confirmed synchronous reset. Both require every
// flip-flop to start undefined at cycle 0 no matter which value is
// driven. Positive additionally requires the cycle-1 transition to
// happen when the candidate is driven to 1 but never when driven to 0
// (an active-high reset, with no other path to a defined value);
// Negative is the mirror image.
var (
	PositiveReset = Pattern{UpZero: 1, UpOne: 1, DownZero: 1, DownOne: -1}
	NegativeReset = Pattern{UpZero: 1, UpOne: -1, DownZero: 1, DownOne: 1}
)

// Classify reports which recognized pattern p matches, or
// "indeterminate" if it matches neither.
func (p Pattern) Classify() string {
	switch p {
	case PositiveReset:
		return "positive"
	case NegativeReset:
		return "negative"
	default:
		return "indeterminate"
	}
}

// CrossCheck runs the cooperative simulator twice — once driving
// candidate to 1, once to 0 — reinitializing between the two runs but
// not within one, mirroring convert_reset_to_init's up_zero/up_one pair
// (no reinitialize_simulation between them, so up_one's cycle-1 reading
// observes the same run's cycle-0 values) followed by a freshly reset
// down_zero/down_one pair. It shares no state with the
// resetelision.Registry structural candidate path (spec §9: "the two
// methods disagree on corner cases; they should not share candidate
// state").
func CrossCheck(nl *netlist.Netlist, candidate *netlist.Node) Pattern {
	sim := NewSimulator(nl)
	toObservation := func(b bool) int {
		if b {
			return 1
		}
		return -1
	}

	sim.Reset()
	sim.runCycle(0, 1, candidate)
	upZero := toObservation(sim.allFFsUndefined(0))
	sim.runCycle(1, 1, candidate)
	upOne := toObservation(sim.transitioned(0, 1))

	sim.Reset()
	sim.runCycle(0, 0, candidate)
	downZero := toObservation(sim.allFFsUndefined(0))
	sim.runCycle(1, 0, candidate)
	downOne := toObservation(sim.transitioned(0, 1))

	return Pattern{UpZero: upZero, UpOne: upOne, DownZero: downZero, DownOne: downOne}
}
