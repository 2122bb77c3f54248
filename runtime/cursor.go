package runtime

import "github.com/coregx/lexgen/internal/asciiscan"

// Cursor is the contract generated jump routines are written against
// (spec.md §6): a single mutable scan position over a decoded input, plus
// the in-flight token slot for the current step. It is the single-owner,
// pull-based forward scan shape nfa.PikeVM uses internally (pos tracking,
// bump-and-check), narrowed to the scalar-cursor-only surface codegen
// needs.
//
// The cursor advances over Unicode scalar values, not raw UTF-8 bytes:
// spec.md's Glossary defines the alphabet element ("scalar byte") as "a
// 32-bit code unit (one Unicode scalar value)", and HIR/graph ranges run
// up to hir.MaxScalar, well past a single byte. Decoding once at
// construction keeps every layer — HIR, graph, codegen, cursor — working
// over the same element, instead of splitting ranges into UTF-8 byte-edge
// automata the way a byte-oriented regex engine has to.
type Cursor struct {
	src   []rune
	start int
	end   int

	token   any
	hasTok  bool
	skipped bool
}

// NewCursor decodes src into its scalar values and creates a cursor
// positioned at the start.
func NewCursor(src string) *Cursor {
	return &Cursor{src: decodeScalars(src)}
}

// decodeScalars decodes src once, at construction, the single place the
// ASCII fast path pays off: an all-ASCII source needs no UTF-8 decoding
// at all, since each byte already is its own scalar value.
func decodeScalars(src string) []rune {
	b := []byte(src)
	if !asciiscan.IsASCII(b) {
		return []rune(src)
	}
	out := make([]rune, len(b))
	for i, c := range b {
		out[i] = rune(c)
	}
	return out
}

// Peek returns the scalar value at the current end position, and whether
// one exists (false at end of input).
func (c *Cursor) Peek() (rune, bool) {
	if c.end >= len(c.src) {
		return 0, false
	}
	return c.src[c.end], true
}

// PeekN returns the n scalar values starting at the current end position,
// and whether that many remain.
func (c *Cursor) PeekN(n int) ([]rune, bool) {
	if c.end+n > len(c.src) {
		return nil, false
	}
	return c.src[c.end : c.end+n], true
}

// Bump advances the end position by n scalar values, failing with
// ErrSourceBoundExceeded if doing so would overshoot the input.
func (c *Cursor) Bump(n int) error {
	if c.end+n > len(c.src) {
		return &Error{Err: ErrSourceBoundExceeded, Pos: c.end}
	}
	c.end += n
	return nil
}

// Slice returns the scalar values spanning [start, end), re-encoded as a
// string.
func (c *Cursor) Slice() string {
	return string(c.src[c.start:c.end])
}

// Remaining returns the unconsumed scalar values from the current end
// position onward. It is not one of the eight core cursor operations
// (spec.md §6) but a narrow addition for the literal fast path
// (SPEC_FULL.md §4.6): prefilter.LiteralSet's Aho-Corasick automaton
// searches a byte haystack, and PeekN requires a caller-supplied length a
// fast-path dispatcher can't know in advance. Read-only, same as Slice.
func (c *Cursor) Remaining() []rune {
	return c.src[c.end:]
}

// Span returns the current [start, end) positions, in scalar-value units.
func (c *Cursor) Span() (int, int) {
	return c.start, c.end
}

// SetToken records tok as this step's result. Fails with
// ErrDuplicatedToken if a non-skip token was already recorded this step.
func (c *Cursor) SetToken(tok any) error {
	if c.hasTok {
		return &Error{Err: ErrDuplicatedToken, Pos: c.end}
	}
	c.token = tok
	c.hasTok = true
	return nil
}

// Skip drops the accumulated span for this step and marks it to be
// retried from the current end position. If no scalar values were
// consumed (start == end), it advances by one to guarantee scan progress.
func (c *Cursor) Skip() error {
	c.skipped = true
	if c.start == c.end {
		return c.Bump(1)
	}
	return nil
}

// Error reports that the current step failed to match anything.
func (c *Cursor) Error() error {
	return &Error{Err: ErrNotMatch, Pos: c.end}
}

// advance begins a new step: start catches up to end.
func (c *Cursor) advance() {
	c.start = c.end
	c.token = nil
	c.hasTok = false
	c.skipped = false
}

// atBoundary reports whether the cursor has consumed the whole source.
func (c *Cursor) atBoundary() bool {
	return c.end >= len(c.src)
}
