package lexgen

import "github.com/coregx/lexgen/hir"

// patternKind distinguishes the two surface forms spec.md §6 allows a
// token variant to carry: an exact literal, or a regular expression.
type patternKind uint8

const (
	patternToken patternKind = iota
	patternRegex
)

// Pattern is the declarative association a TokenDef carries: exactly one
// of token(literal) or regex(pattern) (spec.md §6). Build one with Token
// or Regex.
type Pattern struct {
	kind patternKind
	text string
}

// Token returns a Pattern matching literal exactly, character for
// character — no regex metacharacters are interpreted (hir.Token).
func Token(literal string) Pattern {
	return Pattern{kind: patternToken, text: literal}
}

// Regex returns a Pattern matching the regular expression pattern,
// lowered through hir.Regex.
func Regex(pattern string) Pattern {
	return Pattern{kind: patternRegex, text: pattern}
}

// lower turns p into HIR, enforcing cfg's regex-depth ceiling on the
// result.
func (p Pattern) lower(cfg Config) (hir.Node, error) {
	var (
		h   hir.Node
		err error
	)
	switch p.kind {
	case patternToken:
		h = hir.Token(p.text)
	case patternRegex:
		h, err = hir.Regex(p.text)
		if err != nil {
			return hir.Node{}, err
		}
	}
	if depth := hirDepth(h); depth > cfg.MaxRegexDepth {
		return hir.Node{}, &PatternError{Pattern: p.text, Err: ErrRegexTooDeep}
	}
	return h, nil
}

// hirDepth measures h's nesting depth — the number of algebraic layers
// between the root and its deepest leaf — used as a proxy for the
// regex AST depth a pathologically nested pattern would have produced,
// since hir.Regex lowers through an unexported walk with no depth hook
// of its own to tap.
func hirDepth(h hir.Node) int {
	switch h.Kind() {
	case hir.KindConcat, hir.KindAlternation:
		max := 0
		for _, c := range h.Children() {
			if d := hirDepth(c); d > max {
				max = d
			}
		}
		return max + 1
	case hir.KindLoop, hir.KindMaybe:
		return hirDepth(h.Child()) + 1
	default:
		return 1
	}
}
