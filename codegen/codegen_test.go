package codegen

import (
	"strings"
	"testing"

	"github.com/coregx/lexgen/graph"
	"github.com/coregx/lexgen/hir"
)

func mustLower(t *testing.T, pattern string) hir.Node {
	t.Helper()
	n, err := hir.Regex(pattern)
	if err != nil {
		t.Fatalf("hir.Regex(%q): %v", pattern, err)
	}
	return n
}

func buildFinal(t *testing.T, terms ...graph.Terminal) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, term := range terms {
		if _, err := g.PushTerminal(term); err != nil {
			t.Fatalf("PushTerminal(%s): %v", term.Name, err)
		}
	}
	if _, err := g.MakeRoot(); err != nil {
		t.Fatalf("MakeRoot: %v", err)
	}
	if err := g.Shake(); err != nil {
		t.Fatalf("Shake: %v", err)
	}
	return g
}

func TestGenerateSingleLiteralEmitsSeqAndLeaf(t *testing.T) {
	g := buildFinal(t, graph.Terminal{Name: "IF", Kind: graph.Standalone, HIR: hir.Token("if")})
	src, err := Generate(g, Options{Package: "lexer"})
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)

	for _, want := range []string{
		"package lexer",
		`"github.com/coregx/lexgen/runtime"`,
		"type TokenKind int",
		"TokenIF TokenKind = iota",
		"func Run(c *runtime.Cursor) error {",
		"func jumpTo_",
		"run := []rune{",
		"c.SetToken(Token{Kind: TokenIF})",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("generated source missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateBranchEmitsPeekAndSwitch(t *testing.T) {
	g := buildFinal(t,
		graph.Terminal{Name: "AB", Kind: graph.Standalone, HIR: hir.Token("ab")},
		graph.Terminal{Name: "CLASS", Kind: graph.Standalone, HIR: mustLower(t, "[a-b]+?"), Priority: 1},
	)
	src, err := Generate(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	if !strings.Contains(out, "b, ok := c.Peek()") {
		t.Fatalf("expected a Branch routine's Peek, got:\n%s", out)
	}
	if !strings.Contains(out, "switch {") {
		t.Fatalf("expected a Branch routine's switch, got:\n%s", out)
	}
}

func TestGenerateSkipTerminal(t *testing.T) {
	g := buildFinal(t, graph.Terminal{Name: "WS", Kind: graph.Skip, HIR: hir.Token(" ")})
	src, err := Generate(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "c.Skip()") {
		t.Fatalf("expected a Skip terminal to emit c.Skip(), got:\n%s", src)
	}
}

func TestGenerateFillCallbackTerminal(t *testing.T) {
	g := buildFinal(t, graph.Terminal{
		Name:     "NUM",
		Kind:     graph.FillCallback,
		HIR:      mustLower(t, "[0-9]+?"),
		Callback: "parseNumber",
	})
	src, err := Generate(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	if !strings.Contains(out, "Value: parseNumber(c.Slice())") {
		t.Fatalf("expected the FillCallback terminal to call parseNumber, got:\n%s", out)
	}
}

func TestGenerateCreateCallbackTerminal(t *testing.T) {
	g := buildFinal(t, graph.Terminal{
		Name:     "IDENT",
		Kind:     graph.CreateCallback,
		HIR:      mustLower(t, "[a-z]+?"),
		Callback: "classifyIdent",
	})
	src, err := Generate(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	if !strings.Contains(out, "tok, ok := classifyIdent(c.Slice())") {
		t.Fatalf("expected the CreateCallback terminal to call classifyIdent, got:\n%s", out)
	}
}

func TestGenerateWithLiteralFastPath(t *testing.T) {
	g := buildFinal(t,
		graph.Terminal{Name: "IF", Kind: graph.Standalone, HIR: hir.Token("if")},
		graph.Terminal{Name: "IN", Kind: graph.Standalone, HIR: hir.Token("in")},
		graph.Terminal{Name: "RETURN", Kind: graph.Standalone, HIR: hir.Token("return")},
	)
	src, err := Generate(g, Options{
		FastPath: &FastPath{Literals: map[int][]byte{
			0: []byte("if"),
			1: []byte("in"),
			2: []byte("return"),
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	out := string(src)
	for _, want := range []string{
		`"github.com/coregx/lexgen/prefilter"`,
		"var literalFastPath = mustLiteralFastPath()",
		"func tryLiteralFastPath(c *runtime.Cursor) (matched bool, err error) {",
		"prefilter.ScalarBytes(c.Remaining())",
		"if matched, err := tryLiteralFastPath(c); err != nil {",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("generated source missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateFastPathRejectsOutOfRangeIndex(t *testing.T) {
	g := buildFinal(t, graph.Terminal{Name: "IF", Kind: graph.Standalone, HIR: hir.Token("if")})
	_, err := Generate(g, Options{FastPath: &FastPath{Literals: map[int][]byte{5: []byte("nope")}}})
	if err == nil {
		t.Fatal("expected an error for an out-of-range fast path terminal index")
	}
}
