package hir

import "fmt"

// Kind of lowering failure, named after spec.md §4.1's error list. Each
// kind is surfaced through LowerError rather than a bare error string, so
// callers can switch on ErrorKind the way nfa.CompileError callers can
// inspect its wrapped error (nfa/error.go).
type ErrorKind uint8

const (
	// ErrInvalidRepetitionRange: a {n,m} quantifier with n > m, or a
	// negative bound.
	ErrInvalidRepetitionRange ErrorKind = iota
	// ErrGreedyMatchingMore: a greedy `*` or `+` was used. Only
	// reluctant/possessive repetition is supported (spec.md §4.1,
	// §9 "Reluctant/possessive equivalence").
	ErrGreedyMatchingMore
	// ErrNotSupportedRepetitionKind: a repetition form other than
	// *, +, ?, {n}, {n,}, {,m}, {n,m}.
	ErrNotSupportedRepetitionKind
	// ErrNotSupportedQualification: a quantifier applied in an
	// unsupported way.
	ErrNotSupportedQualification
	// ErrNotSupportedAtomKind: an atom kind outside character, escape,
	// scalar, dot (e.g. a Unicode property escape).
	ErrNotSupportedAtomKind
	// ErrNotSupportedRegexNode: a top-level AST node kind outside
	// alternation/concatenation/group/quantification/quote/atom/class/
	// empty (e.g. an anchor or a lookaround assertion).
	ErrNotSupportedRegexNode
	// ErrNotSupportedCharacterClass: a character-class member that is
	// neither a range, an atom, nor a nested class.
	ErrNotSupportedCharacterClass
	// ErrIncorrectCharRange: a character range with lo > hi.
	ErrIncorrectCharRange
	// ErrNotSupportedCharacterRangeKind: a character-range endpoint of
	// an unsupported kind (e.g. a Unicode property shorthand).
	ErrNotSupportedCharacterRangeKind
	// ErrInvalidEscapeCharacter: an escape sequence this frontend does
	// not recognise.
	ErrInvalidEscapeCharacter
	// ErrQuoteInCharacterClass: a multi-character quoted literal
	// appearing where a single class member was expected.
	ErrQuoteInCharacterClass
	// ErrWiderUnicodeThanSupported: a scalar value wider than this
	// frontend's supported alphabet.
	ErrWiderUnicodeThanSupported
)

// String renders the error kind's name, used by LowerError.Error.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidRepetitionRange:
		return "InvalidRepetitionRange"
	case ErrGreedyMatchingMore:
		return "GreedyMatchingMore"
	case ErrNotSupportedRepetitionKind:
		return "NotSupportedRepetitionKind"
	case ErrNotSupportedQualification:
		return "NotSupportedQualification"
	case ErrNotSupportedAtomKind:
		return "NotSupportedAtomKind"
	case ErrNotSupportedRegexNode:
		return "NotSupportedRegexNode"
	case ErrNotSupportedCharacterClass:
		return "NotSupportedCharacterClass"
	case ErrIncorrectCharRange:
		return "IncorrectCharRange"
	case ErrNotSupportedCharacterRangeKind:
		return "NotSupportedCharacterRangeKind"
	case ErrInvalidEscapeCharacter:
		return "InvalidEscapeCharacter"
	case ErrQuoteInCharacterClass:
		return "QuoteInCharacterClass"
	case ErrWiderUnicodeThanSupported:
		return "WiderUnicodeThanSupported"
	default:
		return "Unknown"
	}
}

// LowerError reports why a pattern could not be lowered to HIR. It
// carries the offending pattern and kind the way nfa.CompileError carries
// the offending pattern and wrapped error (nfa/error.go).
type LowerError struct {
	Pattern string
	Kind    ErrorKind
	Detail  string
}

// Error implements the error interface.
func (e *LowerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("hir: lowering %q failed: %s: %s", e.Pattern, e.Kind, e.Detail)
	}
	return fmt.Sprintf("hir: lowering %q failed: %s", e.Pattern, e.Kind)
}

// Is supports errors.Is comparisons against a *LowerError with a matching
// Kind (Pattern/Detail are ignored), so callers can write
// errors.Is(err, &hir.LowerError{Kind: hir.ErrGreedyMatchingMore}).
func (e *LowerError) Is(target error) bool {
	t, ok := target.(*LowerError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
