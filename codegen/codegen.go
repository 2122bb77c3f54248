// Package codegen walks a finalised, shaken graph.Graph and emits the Go
// source of a generated lexer: one jumpTo_<id> routine per node plus an
// entry point wired to the runtime.Cursor contract (spec.md §4.6).
//
// Emission writes directly to a *bytes.Buffer rather than through
// text/template — the per-node shapes (Branch's grouped-range switch,
// Seq's position-aware miss ladder, Leaf's terminal-kind dispatch) are
// few, small, and irregular enough that a template bought nothing over
// plain fmt.Fprintf calls. This keeps the same split a regex engine
// draws between computing a structure and turning it into something
// execution-ready — here, a static graph becomes compiled Go source
// instead of a table a runtime matcher walks.
package codegen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/coregx/lexgen/graph"
)

// Options configures one Generate call.
type Options struct {
	// Package is the generated file's package clause. Defaults to "lexer".
	Package string
	// TokenTypeName names the generated token-kind enum type. Defaults to
	// "Token".
	TokenTypeName string
	// EntryName names the exported entry-point function passed to
	// runtime.NewLexer. Defaults to "Run".
	EntryName string
	// FastPath, when non-nil, wires a literal pre-check ahead of the root
	// jump routine (SPEC_FULL.md §4.6, "Literal fast path").
	FastPath *FastPath
}

func (o Options) withDefaults() Options {
	if o.Package == "" {
		o.Package = "lexer"
	}
	if o.TokenTypeName == "" {
		o.TokenTypeName = "Token"
	}
	if o.EntryName == "" {
		o.EntryName = "Run"
	}
	return o
}

// FastPath names the terminals codegen accelerates via a
// prefilter.LiteralSet, keyed by terminal index (graph.Terminal order).
// The caller (the root lexgen package's Generate) is responsible for
// proving these literals are prefix-free against the rest of the terminal
// set before handing them to codegen — see lexgen.planFastPath — so that
// the Aho-Corasick automaton's result can never disagree with the graph's
// own longest-match winner; codegen itself performs no such proof, it
// only emits the call.
type FastPath struct {
	// Literals maps a terminal's index (as stored in graph.Graph's
	// terminal table) to its exact byte run.
	Literals map[int][]byte
}

// Generate emits the Go source of a complete lexer package implementing
// g: the token-kind enum, the optional literal fast path, one jumpTo_<id>
// routine per graph node, and the entry point.
func Generate(g *graph.Graph, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	terminals := g.Terminals()
	nodes := g.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	var buf bytes.Buffer
	writeHeader(&buf, opts)
	writeTokenType(&buf, opts, terminals)

	if opts.FastPath != nil {
		if err := writeFastPath(&buf, opts, terminals); err != nil {
			return nil, err
		}
	}

	writeEntryPoint(&buf, opts, g.RootID())

	for _, n := range nodes {
		if err := writeNode(&buf, opts, n, terminals); err != nil {
			return nil, fmt.Errorf("codegen: node %d: %w", n.ID, err)
		}
	}

	return buf.Bytes(), nil
}

func routineName(id graph.NodeID) string {
	return fmt.Sprintf("jumpTo_%d", id)
}
