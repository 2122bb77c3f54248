package lexgen

import (
	"testing"

	"github.com/coregx/lexgen/graph"
	"github.com/coregx/lexgen/hir"
)

func TestPlanFastPathRequiresThreeQualifyingLiterals(t *testing.T) {
	terms := []graph.Terminal{
		{Name: "IF", Kind: graph.Standalone, HIR: hir.Token("if")},
		{Name: "IN", Kind: graph.Standalone, HIR: hir.Token("in")},
	}
	if got := planFastPath(terms); got != nil {
		t.Fatalf("expected nil with only two candidates, got %v", got)
	}
}

func TestPlanFastPathExcludesOverlappingLiteral(t *testing.T) {
	terms := []graph.Terminal{
		{Name: "IN", Kind: graph.Standalone, HIR: hir.Token("in")},
		{Name: "INT", Kind: graph.Standalone, HIR: hir.Token("int")},
		{Name: "IF", Kind: graph.Standalone, HIR: hir.Token("if")},
		{Name: "RETURN", Kind: graph.Standalone, HIR: hir.Token("return")},
		{Name: "ELSE", Kind: graph.Standalone, HIR: hir.Token("else")},
	}
	got := planFastPath(terms)
	if _, ok := got[0]; ok {
		t.Fatalf("expected IN to be excluded as a prefix of INT, got %v", got)
	}
	if _, ok := got[1]; ok {
		t.Fatalf("expected INT to be excluded since it shares IN's prefix, got %v", got)
	}
	for _, idx := range []int{2, 3, 4} {
		if _, ok := got[idx]; !ok {
			t.Fatalf("expected terminal %d (IF/RETURN/ELSE) to qualify, got %v", idx, got)
		}
	}
}

func TestOverlapsAsPrefix(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"if", "in", false},
		{"in", "int", true},
		{"int", "in", true},
		{"if", "if", true},
		{"", "anything", true},
	}
	for _, c := range cases {
		if got := overlapsAsPrefix([]byte(c.a), []byte(c.b)); got != c.want {
			t.Errorf("overlapsAsPrefix(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
