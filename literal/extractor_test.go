package literal

import (
	"testing"

	"github.com/coregx/lexgen/hir"
)

func mustRegex(t *testing.T, pattern string) hir.Node {
	t.Helper()
	n, err := hir.Regex(pattern)
	if err != nil {
		t.Fatalf("hir.Regex(%q): %v", pattern, err)
	}
	return n
}

func TestExtractPrefixesLiteral(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(hir.Token("hello"))
	if seq.Len() != 1 || string(seq.Get(0).Bytes) != "hello" || !seq.Get(0).Complete {
		t.Fatalf("seq = %v, want one complete literal 'hello'", seq)
	}
}

func TestExtractPrefixesAlternation(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(mustRegex(t, "foo|bar"))
	if seq.Len() != 2 {
		t.Fatalf("seq len = %d, want 2", seq.Len())
	}
}

func TestExtractPrefixesLoopYieldsEmpty(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(mustRegex(t, "a*?bc"))
	if !seq.IsEmpty() {
		t.Fatalf("seq = %v, want empty (loop has no reliable prefix)", seq)
	}
}

func TestExtractPrefixesConcatWithClass(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(mustRegex(t, "ag[act]gtaaa"))
	if seq.Len() != 3 {
		t.Fatalf("seq len = %d, want 3 (cross-product over the class)", seq.Len())
	}
	for i := 0; i < seq.Len(); i++ {
		if len(seq.Get(i).Bytes) != len("agagtaaa") {
			t.Fatalf("literal %q has unexpected length", seq.Get(i).Bytes)
		}
	}
}

func TestExtractPrefixesConcatStopsAtLoop(t *testing.T) {
	e := New(DefaultConfig())
	seq := e.ExtractPrefixes(mustRegex(t, "hello[a-z]*?world"))
	if seq.IsEmpty() {
		t.Fatal("seq should retain the 'hello' prefix even though the tail is unreliable")
	}
	if seq.Get(0).Complete {
		t.Fatal("prefix should be marked inexact once a loop follows it")
	}
}

func TestExtractClassTooLargeYieldsEmpty(t *testing.T) {
	e := New(ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 64, MaxClassSize: 2})
	seq := e.ExtractPrefixes(mustRegex(t, "[a-z]"))
	if !seq.IsEmpty() {
		t.Fatalf("seq = %v, want empty ([a-z] exceeds MaxClassSize)", seq)
	}
}

func TestRequiredLiteralExactToken(t *testing.T) {
	b, ok := RequiredLiteral(hir.Token("fast"))
	if !ok || string(b) != "fast" {
		t.Fatalf("RequiredLiteral = (%q, %v), want (fast, true)", b, ok)
	}
}

func TestRequiredLiteralConcatOfLiterals(t *testing.T) {
	b, ok := RequiredLiteral(hir.Concat(hir.Token("foo"), hir.Token("bar")))
	if !ok || string(b) != "foobar" {
		t.Fatalf("RequiredLiteral = (%q, %v), want (foobar, true)", b, ok)
	}
}

func TestRequiredLiteralRejectsBranching(t *testing.T) {
	h := mustRegex(t, "fa+?st")
	if _, ok := RequiredLiteral(h); ok {
		t.Fatal("RequiredLiteral should reject a pattern with a loop")
	}
}
