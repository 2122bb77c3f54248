// Package runtime implements the tiny cursor contract consumed by
// generated lexer source (spec.md §6): cursor management, slicing, and
// the pull-based iteration loop that drives the emitted jump routines.
package runtime

import (
	"errors"
	"fmt"
)

// Runtime errors surfaced to the host, named the same way nfa's sentinel
// errors are (nfa/error.go) rather than distinct exported types per kind.
var (
	// ErrSourceBoundExceeded is raised when a bump would advance the
	// cursor past the end of the input. At run time this indicates the
	// generated graph is malformed relative to the alphabet it was built
	// against.
	ErrSourceBoundExceeded = errors.New("runtime: bump would exceed source bound")

	// ErrEmptyToken is raised when a step produces no token and no skip
	// outcome — a generator bug (every Leaf routine must call SetToken
	// or Skip).
	ErrEmptyToken = errors.New("runtime: step produced neither a token nor a skip")

	// ErrDuplicatedToken is raised by SetToken when a token has already
	// been recorded for the current step.
	ErrDuplicatedToken = errors.New("runtime: token already set for this step")

	// ErrNotMatch is raised by generated code when a byte run reaches a
	// node with no matching branch/seq and no miss fallback.
	ErrNotMatch = errors.New("runtime: input does not match any token")
)

// Error wraps a runtime fault with the cursor position it occurred at,
// mirroring nfa.BuildError's (NodeID-tagged sentinel) shape with a byte
// offset instead.
type Error struct {
	Err error
	Pos int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *Error) Unwrap() error { return e.Err }
