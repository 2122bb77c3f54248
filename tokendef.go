package lexgen

import "github.com/coregx/lexgen/graph"

// Kind classifies what a matched token variant does, the declarative
// counterpart of graph.TerminalKind (spec.md §6).
type Kind int

const (
	// Standalone records a plain token variant.
	Standalone Kind = iota
	// Skip silently drops the match and restarts the scan.
	Skip
	// FillCallback transforms the matched slice into the token payload.
	FillCallback
	// CreateCallback returns a token (or a skip sentinel) from the
	// matched slice.
	CreateCallback
)

func (k Kind) toGraph() graph.TerminalKind {
	switch k {
	case Skip:
		return graph.Skip
	case FillCallback:
		return graph.FillCallback
	case CreateCallback:
		return graph.CreateCallback
	default:
		return graph.Standalone
	}
}

// TokenDef is one declared token variant: exactly one Pattern, an
// optional priority (0 means "use the lowered HIR's own computed
// priority"), an optional Kind, and an opaque Callback handle consumed
// verbatim by codegen (spec.md §6, §9 "Callbacks").
type TokenDef struct {
	Name     string
	Pattern  Pattern
	Priority int
	Kind     Kind
	Callback string
}

// TokenSetDef is a complete declarative lexer: a name, an optional skip
// pattern whose matches are silently dropped, and the token variants
// themselves.
type TokenSetDef struct {
	Name   string
	Skip   *Pattern
	Tokens []TokenDef
}
