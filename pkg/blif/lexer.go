// Package blif provides a reader for the BLIF-like gate-level netlist
// text format named in spec §6 (.model/.inputs/.outputs/.names/.latch/
// .end), and the line-oriented rewriter used by the textual half of
// component G (reset elision). The reader is a participle grammar, in
// the same style as the teacher's BSDL parser; the rewriter is a plain
// line-by-line text transform, matching how the spec itself describes
// the rewrite (rewind the stream, copy lines verbatim with two edits).
package blif

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer defines the lexical structure of a BLIF-like netlist file.
// Unlike the teacher's free-form VHDL lexer, newlines are significant
// here: BLIF is a line-oriented format where each directive and each
// bitmap row occupies exactly one line.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "EOL", Pattern: `\r?\n`},

	{Name: "KwModel", Pattern: `\.model\b`},
	{Name: "KwInputs", Pattern: `\.inputs\b`},
	{Name: "KwOutputs", Pattern: `\.outputs\b`},
	{Name: "KwNames", Pattern: `\.names\b`},
	{Name: "KwLatch", Pattern: `\.latch\b`},
	{Name: "KwEnd", Pattern: `\.end\b`},

	// A bitmap row pattern: a run of sum-of-products characters. The
	// trailing single-character output bit tokenizes as another
	// Pattern match, separated from the input pattern by whitespace.
	// The digits 2 and 3 are also accepted so that a .latch line's
	// trailing initial-value token (0, 1, 2 or 3) lexes as a Pattern.
	{Name: "Pattern", Pattern: `[0-3\-]+`},

	// Signal/model identifiers. BLIF names may contain brackets and
	// dots (bus indices, hierarchical names).
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_\[\]\.]*`},
})
