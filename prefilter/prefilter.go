// Package prefilter accelerates dispatch across a token set's literal-only
// terminals: when three or more Standalone terminals reduce to an exact
// literal (spec.md §4.6 expansion, "Literal fast path"), codegen wires a
// single Aho-Corasick automaton ahead of the jump-routine graph so that a
// match can be resolved in one pass instead of walking Branch/Seq nodes
// byte by byte for every such terminal.
package prefilter

// Prefilter is the contract codegen's literal fast path is built against.
// The graph remains the sole source of truth for priority and longest-match
// disambiguation — a Prefilter only proposes a candidate; the caller
// decides whether to trust it outright (IsComplete) or fall back to the
// graph walk.
type Prefilter interface {
	// Find returns the index of the first candidate match at or after
	// start, or -1 if none exists.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a Find result is itself a correct,
	// complete match — true for a pure literal-set prefilter like
	// LiteralSet, where every member is an exact terminal pattern with
	// no surrounding context to verify.
	IsComplete() bool

	// LiteralLen returns the length shared by every literal the
	// prefilter finds, or 0 when its literals vary in length (the span
	// then comes from MatchFinder.FindMatch).
	LiteralLen() int

	// HeapBytes reports the prefilter's heap memory footprint, for
	// generation-time diagnostics.
	HeapBytes() int
}

// MatchFinder is satisfied by prefilters whose matched literals vary in
// length — LiteralSet's underlying Aho-Corasick automaton reports the
// exact [start, end) span per match rather than a fixed LiteralLen.
type MatchFinder interface {
	// FindMatch returns the start and end positions of the first match
	// at or after start, or (-1, -1) if none exists.
	FindMatch(haystack []byte, start int) (matchStart, matchEnd int)
}
