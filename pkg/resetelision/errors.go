package resetelision

import "errors"

// ErrNetlistIO classifies the one fatal error class named by spec §6/§7:
// a file-open failure on the textual rewrite output path. Callers use
// errors.Is to distinguish it from the heuristic rejections that this
// package otherwise handles by state transition, never by error return.
var ErrNetlistIO = errors.New("resetelision: netlist I/O error")

// ErrNoSingleCandidate is returned by Rewrite when the registry does not
// hold exactly one surviving candidate (spec §4.G: "Runs only when
// exactly one candidate remains after §4.F").
var ErrNoSingleCandidate = errors.New("resetelision: rewrite requires exactly one surviving candidate")
