// Package lexgen is the public entry point tying together pattern
// lowering (hir), multi-pattern graph construction (graph), and Go
// source emission (codegen) behind one declarative call: Generate takes
// a TokenSetDef and a Config and returns the generated lexer's source,
// the same role regex.Compile/regex.CompileWithConfig play over the
// teacher's NFA/DFA/meta engines.
package lexgen

import (
	"fmt"

	"github.com/coregx/lexgen/codegen"
	"github.com/coregx/lexgen/graph"
)

// GeneratedSource is the result of a successful Generate call.
type GeneratedSource struct {
	// TokenSetName is the TokenSetDef.Name the source was generated for.
	TokenSetName string
	// PackageName is the generated file's package clause.
	PackageName string
	// EntryName is the exported entry-point function name, wired to
	// runtime.NewLexer as the RootFunc argument.
	EntryName string
	// Source is the generated Go source text.
	Source []byte
}

// Generate lowers every pattern in def, merges the results into a single
// shared graph, and emits its Go source, following spec.md's
// `pattern strings → HIR → Graph.push(terminal) (×N) → makeRoot → shake →
// Codegen` pipeline (§2).
func Generate(def TokenSetDef, cfg Config) (*GeneratedSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(def.Tokens) == 0 {
		return nil, ErrNoTokens
	}
	total := len(def.Tokens)
	if def.Skip != nil {
		total++
	}
	if total > cfg.MaxTerminals {
		return nil, ErrTooManyTerminals
	}
	if err := checkDuplicateNames(def.Tokens); err != nil {
		return nil, err
	}

	g := graph.New()

	if def.Skip != nil {
		h, err := def.Skip.lower(cfg)
		if err != nil {
			return nil, &PatternError{Pattern: "<skip>", Err: err}
		}
		if _, err := g.PushTerminal(graph.Terminal{Name: "$skip", Kind: graph.Skip, HIR: h}); err != nil {
			return nil, &TokenError{Token: "<skip>", Err: err}
		}
	}

	for _, tok := range def.Tokens {
		h, err := tok.Pattern.lower(cfg)
		if err != nil {
			return nil, &PatternError{Pattern: tok.Name, Err: err}
		}
		term := graph.Terminal{
			Name:     tok.Name,
			Kind:     tok.Kind.toGraph(),
			HIR:      h,
			Priority: tok.Priority,
			Callback: tok.Callback,
		}
		if _, err := g.PushTerminal(term); err != nil {
			return nil, &TokenError{Token: tok.Name, Err: err}
		}
	}

	if _, err := g.MakeRoot(); err != nil {
		return nil, fmt.Errorf("lexgen: %s: %w", def.Name, err)
	}
	if err := g.Shake(); err != nil {
		return nil, fmt.Errorf("lexgen: %s: %w", def.Name, err)
	}

	opts := codegen.Options{Package: packageNameFor(def.Name)}
	if cfg.EnableLiteralFastPath {
		if literals := planFastPath(g.Terminals()); literals != nil {
			opts.FastPath = &codegen.FastPath{Literals: literals}
		}
	}

	src, err := codegen.Generate(g, opts)
	if err != nil {
		return nil, fmt.Errorf("lexgen: %s: %w", def.Name, err)
	}

	return &GeneratedSource{
		TokenSetName: def.Name,
		PackageName:  opts.Package,
		EntryName:    "Run",
		Source:       src,
	}, nil
}

func checkDuplicateNames(tokens []TokenDef) error {
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		if seen[t.Name] {
			return &TokenError{Token: t.Name, Err: ErrDuplicateTokenName}
		}
		seen[t.Name] = true
	}
	return nil
}

// packageNameFor derives a Go package name from a token set's name,
// falling back to "lexer" (codegen's own default) when the name is
// empty; otherwise the name goes through sanitizePackageName, which
// prefixes a leading digit with "_" and also yields "lexer" when no
// usable character survives.
func packageNameFor(name string) string {
	if name == "" {
		return "lexer"
	}
	return sanitizePackageName(name)
}
