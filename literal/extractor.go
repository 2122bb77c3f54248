// Package literal extracts literal byte sequences from lowered HIR, for
// two consumers: codegen's exact-literal fast path (RequiredLiteral) and
// prefilter's Aho-Corasick acceleration (ExtractPrefixes feeding
// prefilter.LiteralSet).
package literal

import "github.com/coregx/lexgen/hir"

// ExtractorConfig bounds extraction cost — prevents an alternation or
// character class from blowing up into an unbounded literal set.
type ExtractorConfig struct {
	// MaxLiterals caps how many alternatives a single extraction keeps.
	MaxLiterals int
	// MaxLiteralLen caps each literal's length.
	MaxLiteralLen int
	// MaxClassSize caps how large a Class may be before it's expanded
	// into individual byte literals; larger classes contribute nothing.
	MaxClassSize int
}

// DefaultConfig returns conservative, pre-tuned defaults.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 64, MaxClassSize: 10}
}

// Extractor extracts prefix literal sets from HIR nodes.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given configuration.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals that must appear at the start of
// any match of h, the cross-product algorithm of literal/extractor.go's
// extractPrefixesConcat narrowed to HIR's already-normalised algebra (no
// case folding, no anchors, no capture groups — those are rejected or
// collapsed at lowering time). Returns an empty Seq when no reliable
// prefix exists (e.g. h starts with a Loop or Maybe).
func (e *Extractor) ExtractPrefixes(h hir.Node) *Seq {
	return e.extract(h, 0)
}

func (e *Extractor) extract(h hir.Node, depth int) *Seq {
	if depth > 100 {
		return NewSeq()
	}
	switch h.Kind() {
	case hir.KindEmpty:
		return NewSeq(NewLiteral(nil, true))

	case hir.KindLiteral:
		run := h.Run()
		b := make([]byte, 0, len(run))
		for _, r := range run {
			if r > 0xFF {
				// A scalar outside a single byte can't be represented as
				// a literal byte sequence for the prefilter; truncate.
				break
			}
			b = append(b, byte(r))
		}
		if len(b) > e.config.MaxLiteralLen {
			b = b[:e.config.MaxLiteralLen]
		}
		return NewSeq(NewLiteral(b, len(b) == len(run)))

	case hir.KindClass:
		return e.expandClass(h)

	case hir.KindConcat:
		return e.extractConcat(h.Children(), depth)

	case hir.KindAlternation:
		var all []Literal
		for _, c := range h.Children() {
			seq := e.extract(c, depth+1)
			if seq.IsEmpty() {
				return NewSeq()
			}
			for i := 0; i < seq.Len(); i++ {
				all = append(all, seq.Get(i))
				if len(all) >= e.config.MaxLiterals {
					return markInexact(NewSeq(all...))
				}
			}
		}
		return NewSeq(all...)

	case hir.KindLoop, hir.KindMaybe:
		// Zero occurrences is always possible, so nothing is required.
		return NewSeq()

	default:
		return NewSeq()
	}
}

// extractConcat implements the cross-product walk: each child's
// contribution extends every accumulated literal, until a child offers
// no exact contribution (a Loop/Maybe, or an over-large Class), at which
// point accumulation stops and whatever was built so far is marked
// inexact (it's a required prefix, not a complete match).
func (e *Extractor) extractConcat(children []hir.Node, depth int) *Seq {
	acc := NewSeq(NewLiteral(nil, true))
	for _, c := range children {
		if !e.hasAnyExact(acc) {
			break
		}
		contribution := e.contribution(c, depth)
		if contribution == nil {
			e.markAllInexact(acc)
			break
		}
		acc.CrossForward(contribution)
		if acc.Len() > e.config.MaxLiterals {
			acc.KeepFirstBytes(4)
			e.markAllInexact(acc)
			acc.Dedup()
			if acc.Len() > e.config.MaxLiterals {
				acc.literals = acc.literals[:e.config.MaxLiterals]
			}
			break
		}
		e.enforceMaxLiteralLen(acc)
	}
	if acc.Len() == 1 && len(acc.Get(0).Bytes) == 0 {
		return NewSeq()
	}
	return acc
}

// contribution returns h's cross-product contribution, or nil if h
// cannot be folded into the running literal set at all.
func (e *Extractor) contribution(h hir.Node, depth int) *Seq {
	switch h.Kind() {
	case hir.KindLiteral:
		return e.extract(h, depth)
	case hir.KindClass:
		expanded := e.expandClass(h)
		if expanded.IsEmpty() {
			return nil
		}
		return expanded
	case hir.KindAlternation:
		var all []Literal
		for _, c := range h.Children() {
			seq := e.extract(c, depth+1)
			if seq.IsEmpty() {
				return nil
			}
			for i := 0; i < seq.Len(); i++ {
				all = append(all, seq.Get(i))
				if len(all) > e.config.MaxLiterals {
					return nil
				}
			}
		}
		return NewSeq(all...)
	default:
		return nil
	}
}

// expandClass expands a Class into individual byte literals when small
// enough to be worth it; too-wide classes (e.g. [a-z]) contribute
// nothing (an empty Seq) rather than exploding into dozens of literals.
func (e *Extractor) expandClass(h hir.Node) *Seq {
	total := 0
	for _, r := range h.Ranges() {
		if r.Hi > 0xFF {
			return NewSeq()
		}
		total += int(r.Hi-r.Lo) + 1
	}
	if total == 0 || total > e.config.MaxClassSize {
		return NewSeq()
	}
	var lits []Literal
	for _, r := range h.Ranges() {
		for b := r.Lo; b <= r.Hi; b++ {
			lits = append(lits, NewLiteral([]byte{byte(b)}, true))
		}
	}
	return NewSeq(lits...)
}

func (e *Extractor) hasAnyExact(s *Seq) bool {
	for i := 0; i < s.Len(); i++ {
		if s.Get(i).Complete {
			return true
		}
	}
	return false
}

func (e *Extractor) markAllInexact(s *Seq) {
	for i := range s.literals {
		s.literals[i].Complete = false
	}
}

func (e *Extractor) enforceMaxLiteralLen(s *Seq) {
	for i := range s.literals {
		if len(s.literals[i].Bytes) > e.config.MaxLiteralLen {
			s.literals[i].Bytes = s.literals[i].Bytes[:e.config.MaxLiteralLen]
			s.literals[i].Complete = false
		}
	}
}

func markInexact(s *Seq) *Seq {
	for i := range s.literals {
		s.literals[i].Complete = false
	}
	return s
}

// RequiredLiteral reports the single exact literal h reduces to, if any
// — i.e. h is a Literal, or a Concat of Literals with no branching at
// all. This is the test codegen uses to decide whether a Standalone
// terminal qualifies for the Aho-Corasick fast path (spec.md §4.6
// expansion, "Literal fast path"): a non-empty, exact result means the
// whole pattern is one fixed byte run.
func RequiredLiteral(h hir.Node) ([]byte, bool) {
	switch h.Kind() {
	case hir.KindLiteral:
		run := h.Run()
		b := make([]byte, 0, len(run))
		for _, r := range run {
			if r > 0xFF {
				return nil, false
			}
			b = append(b, byte(r))
		}
		return b, true
	case hir.KindConcat:
		var b []byte
		for _, c := range h.Children() {
			part, ok := RequiredLiteral(c)
			if !ok {
				return nil, false
			}
			b = append(b, part...)
		}
		return b, true
	default:
		return nil, false
	}
}
