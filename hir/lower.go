package hir

import (
	"regexp/syntax"
	"unicode/utf8"
)

// Token builds the HIR for a literal token pattern. Every character of
// literal is treated as an exact scalar byte — no escaping or parsing
// step is needed because the whole string is already literal (spec.md
// §4.1: "For the token form, the string is pre-escaped so every
// metacharacter is literal").
func Token(literal string) Node {
	run := make([]uint32, 0, len(literal))
	for _, r := range literal {
		run = append(run, uint32(r))
	}
	if len(run) == 0 {
		return Empty()
	}
	return Literal(run)
}

// Regex parses pattern as a regular expression and lowers it to HIR,
// following the rules in spec.md §4.1. Parsing reuses regexp/syntax the
// same way a Thompson-NFA compiler's front end would — the AST-producing
// mechanism is kept, the lowering target (HIR instead of a Thompson NFA)
// is not.
func Regex(pattern string) (Node, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return Node{}, translateSyntaxError(pattern, err)
	}
	return lower(pattern, re)
}

func translateSyntaxError(pattern string, err error) error {
	se, ok := err.(*syntax.Error)
	if !ok {
		return &LowerError{Pattern: pattern, Kind: ErrNotSupportedRegexNode, Detail: err.Error()}
	}
	kind := ErrNotSupportedRegexNode
	switch se.Code {
	case syntax.ErrInvalidCharRange:
		kind = ErrIncorrectCharRange
	case syntax.ErrInvalidCharClass:
		kind = ErrNotSupportedCharacterClass
	case syntax.ErrInvalidEscape, syntax.ErrTrailingBackslash:
		kind = ErrInvalidEscapeCharacter
	case syntax.ErrInvalidRepeatSize:
		kind = ErrInvalidRepetitionRange
	case syntax.ErrInvalidRepeatOp, syntax.ErrMissingRepeatArgument:
		kind = ErrNotSupportedRepetitionKind
	case syntax.ErrInvalidUTF8:
		kind = ErrWiderUnicodeThanSupported
	}
	return &LowerError{Pattern: pattern, Kind: kind, Detail: string(se.Code) + ": " + se.Expr}
}

func lower(pattern string, re *syntax.Regexp) (Node, error) {
	switch re.Op {
	case syntax.OpEmptyMatch:
		return Empty(), nil

	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return Empty(), nil
		}
		run := make([]uint32, len(re.Rune))
		for i, r := range re.Rune {
			run[i] = uint32(r)
		}
		return Literal(run), nil

	case syntax.OpCharClass:
		return lowerCharClass(pattern, re)

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		// spec.md §4.1: "`.` becomes Class([0..=MAX])" — this frontend
		// does not distinguish DOTALL from default dot (no anchors, no
		// multiline semantics), so both syntax.Op variants collapse to
		// the unrestricted class.
		return Dot(), nil

	case syntax.OpCapture:
		// Groups are transparent (spec.md §4.1).
		return lower(pattern, re.Sub[0])

	case syntax.OpConcat:
		children := make([]Node, 0, len(re.Sub))
		for _, sub := range re.Sub {
			c, err := lower(pattern, sub)
			if err != nil {
				return Node{}, err
			}
			children = append(children, c)
		}
		return Concat(children...), nil

	case syntax.OpAlternate:
		children := make([]Node, 0, len(re.Sub))
		for _, sub := range re.Sub {
			c, err := lower(pattern, sub)
			if err != nil {
				return Node{}, err
			}
			children = append(children, c)
		}
		return Alternation(children...), nil

	case syntax.OpStar:
		return lowerStarPlus(pattern, re, false)
	case syntax.OpPlus:
		return lowerStarPlus(pattern, re, true)
	case syntax.OpQuest:
		child, err := lower(pattern, re.Sub[0])
		if err != nil {
			return Node{}, err
		}
		return Maybe(child), nil
	case syntax.OpRepeat:
		return lowerRepeat(pattern, re)

	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		// Non-goal (spec.md §1): anchors are not supported.
		return Node{}, &LowerError{Pattern: pattern, Kind: ErrNotSupportedRegexNode, Detail: re.Op.String()}

	default:
		return Node{}, &LowerError{Pattern: pattern, Kind: ErrNotSupportedRegexNode, Detail: re.Op.String()}
	}
}

func lowerStarPlus(pattern string, re *syntax.Regexp, plus bool) (Node, error) {
	if re.Flags&syntax.NonGreedy == 0 {
		// Greedy `*`/`+` — rejected (spec.md §4.1, §9).
		return Node{}, &LowerError{Pattern: pattern, Kind: ErrGreedyMatchingMore}
	}
	child, err := lower(pattern, re.Sub[0])
	if err != nil {
		return Node{}, err
	}
	if plus {
		return Concat(child, Loop(child)), nil
	}
	return Loop(child), nil
}

func lowerRepeat(pattern string, re *syntax.Regexp) (Node, error) {
	min, max := re.Min, re.Max
	if min < 0 || (max != -1 && max < min) {
		return Node{}, &LowerError{Pattern: pattern, Kind: ErrInvalidRepetitionRange}
	}
	child, err := lower(pattern, re.Sub[0])
	if err != nil {
		return Node{}, err
	}

	var parts []Node
	for i := 0; i < min; i++ {
		parts = append(parts, child)
	}

	switch {
	case max == -1:
		// {n,} → n copies + Loop(child).
		if re.Flags&syntax.NonGreedy == 0 {
			return Node{}, &LowerError{Pattern: pattern, Kind: ErrGreedyMatchingMore}
		}
		parts = append(parts, Loop(child))
	case max > min:
		// {n,m} (and {,m}, where n == 0) → n copies + (m-n) copies of
		// Maybe(child).
		for i := 0; i < max-min; i++ {
			parts = append(parts, Maybe(child))
		}
	case max == min:
		// {n} → n copies of child, nothing further.
	}

	return Concat(parts...), nil
}

func lowerCharClass(pattern string, re *syntax.Regexp) (Node, error) {
	// regexp/syntax has already parsed the class body (ranges, nested
	// shorthands, negation) into a sorted, coalesced []rune pair list by
	// the time we see an OpCharClass node — so the range-list-from-
	// re.Rune idiom here is the same one an ASCII-only class extractor
	// would use, just without that restriction.
	if len(re.Rune)%2 != 0 {
		return Node{}, &LowerError{Pattern: pattern, Kind: ErrNotSupportedCharacterClass}
	}
	ranges := make([]Range, 0, len(re.Rune)/2)
	for i := 0; i < len(re.Rune); i += 2 {
		lo, hi := re.Rune[i], re.Rune[i+1]
		if lo > hi {
			return Node{}, &LowerError{Pattern: pattern, Kind: ErrIncorrectCharRange}
		}
		if hi > utf8.MaxRune {
			return Node{}, &LowerError{Pattern: pattern, Kind: ErrWiderUnicodeThanSupported}
		}
		ranges = append(ranges, Range{Lo: uint32(lo), Hi: uint32(hi)})
	}
	return Class(ranges), nil
}
