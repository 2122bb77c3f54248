package prefilter

import "github.com/coregx/ahocorasick"

// TerminalMatch identifies which terminal an automaton hit corresponds
// to, plus its span in the haystack.
type TerminalMatch struct {
	Terminal   int
	Start, End int
}

// LiteralSet accelerates dispatch for a token set's pure-literal
// Standalone terminals: an Aho-Corasick automaton is built once, at
// generation time, over their exact byte runs, the direct analogue of
// meta.Engine's ahoCorasick field (meta/compile.go's
// buildStrategyEngines, meta/find.go's findAhoCorasick) — there it
// accelerates one regex's large literal alternation, here it accelerates
// dispatch across many terminals sharing one graph.
type LiteralSet struct {
	automaton *ahocorasick.Automaton
	byLiteral map[string]int // literal bytes -> terminal index
}

// NewLiteralSet builds a LiteralSet over literals, keyed by terminal
// index. Terminal indices need not be contiguous or ordered; literals
// must be distinct (lexgen's planFastPath never admits a literal that
// equals, or is a prefix of, another terminal's prefix).
func NewLiteralSet(literals map[int][]byte) (*LiteralSet, error) {
	builder := ahocorasick.NewBuilder()
	byLiteral := make(map[string]int, len(literals))
	for terminal, lit := range literals {
		builder.AddPattern(lit)
		byLiteral[string(lit)] = terminal
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralSet{automaton: auto, byLiteral: byLiteral}, nil
}

// Find implements Prefilter.
func (s *LiteralSet) Find(haystack []byte, start int) int {
	m := s.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// FindMatch implements MatchFinder, also resolving which terminal
// matched via TerminalFor.
func (s *LiteralSet) FindMatch(haystack []byte, start int) (int, int) {
	m := s.automaton.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// TerminalFor returns which terminal index produced the bytes
// haystack[start:end] from the last FindMatch/Find call, by exact
// literal lookup — the automaton itself only reports a span, not which
// registered pattern it came from, so the caller re-keys on content.
func (s *LiteralSet) TerminalFor(haystack []byte, start, end int) (int, bool) {
	terminal, ok := s.byLiteral[string(haystack[start:end])]
	return terminal, ok
}

// IsComplete implements Prefilter: every LiteralSet member is an exact,
// whole-pattern literal (codegen only admits terminals for which
// literal.RequiredLiteral succeeded), so a match needs no verification
// against the graph.
func (s *LiteralSet) IsComplete() bool { return true }

// LiteralLen implements Prefilter. Members generally differ in length,
// so this returns 0 ("variable") — callers needing an exact span use
// FindMatch instead.
func (s *LiteralSet) LiteralLen() int { return 0 }

// HeapBytes implements Prefilter with a rough estimate: the automaton's
// own size isn't introspectable, so this counts only the lookup map.
func (s *LiteralSet) HeapBytes() int {
	total := 0
	for k := range s.byLiteral {
		total += len(k) + 8
	}
	return total
}
