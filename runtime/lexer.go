package runtime

// RootFunc is the signature of a generated token set's entry point: the
// root jump routine, tail-calling into `jumpTo_<id>` routines as it
// consumes the cursor (spec.md §4.6).
type RootFunc func(c *Cursor) error

// Lexer drives the pull-based iteration loop of spec.md §6: each Next
// call starts a new step, runs the root routine until it records a token
// or the input ends, and surfaces the first failure terminally.
type Lexer struct {
	cursor *Cursor
	root   RootFunc
	failed error
}

// NewLexer creates a Lexer over src driven by root, the generated token
// set's entry routine.
func NewLexer(src string, root RootFunc) *Lexer {
	return &Lexer{cursor: NewCursor(src), root: root}
}

// Next produces the next token, or (nil, false, nil) at end of input, or
// a non-nil error on the first unrecoverable failure — after which the
// iterator is terminated and every subsequent Next call returns the same
// error (spec.md §4.7: "this lexer iterator terminates on the first
// failure").
func (l *Lexer) Next() (any, bool, error) {
	if l.failed != nil {
		return nil, false, l.failed
	}
	for {
		if l.cursor.atBoundary() {
			return nil, false, nil
		}
		l.cursor.advance()
		if err := l.root(l.cursor); err != nil {
			l.failed = err
			return nil, false, err
		}
		if l.cursor.skipped {
			continue
		}
		if !l.cursor.hasTok {
			l.failed = &Error{Err: ErrEmptyToken, Pos: l.cursor.end}
			return nil, false, l.failed
		}
		return l.cursor.token, true, nil
	}
}

// Tokens drains the lexer into a slice, stopping at the first error or
// at end of input. The returned error, if any, is the same one a
// subsequent Next call would return.
func (l *Lexer) Tokens() ([]any, error) {
	var out []any
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}
