package lexgen

import (
	"github.com/coregx/lexgen/graph"
	"github.com/coregx/lexgen/literal"
)

// planFastPath decides which Standalone terminals' exact literal can be
// safely handed to codegen's Aho-Corasick acceleration (SPEC_FULL.md
// §4.6 "Literal fast path"). codegen.FastPath trusts its input
// completely — this is the one place that proof has to happen, by
// construction rather than by a runtime cross-check:
//
// A literal only qualifies once it is shown to share no prefix
// relationship, in either direction, with any other terminal's required
// prefix set (literal.Extractor.ExtractPrefixes). That overlap is
// exactly the condition under which an Aho-Corasick hit anchored at the
// cursor could name a different winner than the graph's own
// longest-match-then-priority rule (spec.md §5 "Ordering guarantees") —
// ruling it out means an anchored automaton hit can never disagree with
// what the graph would have produced, so the fast path never needs to
// double-check itself against the graph at run time.
//
// Per SPEC_FULL.md §4.6, the fast path is only worth building once three
// or more terminals qualify; fewer gives codegen nothing (nil).
func planFastPath(terminals []graph.Terminal) map[int][]byte {
	candidates := make(map[int][]byte)
	for i, t := range terminals {
		if t.Kind != graph.Standalone {
			continue
		}
		lit, ok := literal.RequiredLiteral(t.HIR)
		if !ok || len(lit) == 0 {
			continue
		}
		candidates[i] = lit
	}
	if len(candidates) == 0 {
		return nil
	}

	extractor := literal.New(literal.DefaultConfig())
	safe := make(map[int][]byte, len(candidates))
	for i, lit := range candidates {
		if literalIsSafe(i, lit, terminals, extractor) {
			safe[i] = lit
		}
	}
	if len(safe) < 3 {
		return nil
	}
	return safe
}

// literalIsSafe reports whether lit (terminal i's exact literal) is free
// of prefix overlap, in either direction, with every other terminal's
// required prefix set — including other fast-path candidates, which are
// simply other entries of terminals. A terminal with no extractable
// prefix may start with anything, so it makes every literal unsafe.
func literalIsSafe(i int, lit []byte, terminals []graph.Terminal, extractor *literal.Extractor) bool {
	for j, other := range terminals {
		if j == i {
			continue
		}
		prefixes := extractor.ExtractPrefixes(other.HIR)
		if prefixes.IsEmpty() {
			return false
		}
		for k := 0; k < prefixes.Len(); k++ {
			if overlapsAsPrefix(lit, prefixes.Get(k).Bytes) {
				return false
			}
		}
	}
	return true
}

// overlapsAsPrefix reports whether a is a prefix of b or b is a prefix of
// a (including equality) — the shared-start relationship that makes two
// literal runs ambiguous for anchored leftmost matching.
func overlapsAsPrefix(a, b []byte) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for k := 0; k < n; k++ {
		if a[k] != b[k] {
			return false
		}
	}
	return true
}
