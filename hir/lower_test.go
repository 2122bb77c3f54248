package hir

import (
	"errors"
	"testing"
)

func TestTokenIsLiteralWithNoParsing(t *testing.T) {
	n := Token("a.b*")
	if n.Kind() != KindLiteral {
		t.Fatalf("Token should always produce a Literal, got %v", n.Kind())
	}
	want := []uint32{'a', '.', 'b', '*'}
	run := n.Run()
	if len(run) != len(want) {
		t.Fatalf("got run %v, want %v", run, want)
	}
	for i := range want {
		if run[i] != want[i] {
			t.Fatalf("got run %v, want %v", run, want)
		}
	}
}

func TestRegexGreedyStarRejected(t *testing.T) {
	_, err := Regex("a*")
	var le *LowerError
	if !errors.As(err, &le) || le.Kind != ErrGreedyMatchingMore {
		t.Fatalf("expected GreedyMatchingMore, got %v", err)
	}
}

func TestRegexGreedyPlusRejected(t *testing.T) {
	_, err := Regex("a+")
	var le *LowerError
	if !errors.As(err, &le) || le.Kind != ErrGreedyMatchingMore {
		t.Fatalf("expected GreedyMatchingMore, got %v", err)
	}
}

func TestRegexReluctantStarIsLoop(t *testing.T) {
	n, err := Regex("a*?")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindLoop {
		t.Fatalf("expected Loop, got %v", n.Kind())
	}
}

func TestRegexReluctantPlusIsConcatOfChildAndLoop(t *testing.T) {
	n, err := Regex("a+?")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindConcat {
		t.Fatalf("expected Concat, got %v", n.Kind())
	}
	children := n.Children()
	if len(children) != 2 || children[0].Kind() != KindLiteral || children[1].Kind() != KindLoop {
		t.Fatalf("expected [Literal, Loop], got %v", children)
	}
}

func TestRegexQuestIsMaybe(t *testing.T) {
	n, err := Regex("a?")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindMaybe {
		t.Fatalf("expected Maybe, got %v", n.Kind())
	}
}

func TestRegexExactRepeatIsConcatOfCopies(t *testing.T) {
	n, err := Regex("a{3}")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindLiteral || len(n.Run()) != 3 {
		t.Fatalf("expected 3 merged literal copies, got %v", n)
	}
}

func TestRegexOpenRepeatIsCopiesPlusLoop(t *testing.T) {
	n, err := Regex("a{2,}?")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindConcat {
		t.Fatalf("expected Concat, got %v", n)
	}
	children := n.Children()
	if len(children) != 2 {
		t.Fatalf("expected [Literal(2), Loop], got %v", children)
	}
	if children[0].Kind() != KindLiteral || len(children[0].Run()) != 2 {
		t.Fatalf("expected merged 2-copy literal prefix, got %v", children[0])
	}
	if children[1].Kind() != KindLoop {
		t.Fatalf("expected trailing loop, got %v", children[1])
	}
}

func TestRegexBoundedRepeatIsCopiesPlusMaybes(t *testing.T) {
	n, err := Regex("a{1,3}")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindConcat {
		t.Fatalf("expected Concat, got %v", n)
	}
	children := n.Children()
	if len(children) != 3 {
		t.Fatalf("expected 1 literal + 2 maybes = 3 children, got %d: %v", len(children), children)
	}
	if children[0].Kind() != KindLiteral {
		t.Fatalf("expected first child literal, got %v", children[0])
	}
	if children[1].Kind() != KindMaybe || children[2].Kind() != KindMaybe {
		t.Fatalf("expected trailing Maybe children, got %v", children[1:])
	}
}

func TestRegexInvalidRepetitionRange(t *testing.T) {
	_, err := Regex("a{3,1}")
	if err == nil {
		t.Fatal("expected an error for {3,1}")
	}
}

func TestRegexAnchorsRejected(t *testing.T) {
	for _, p := range []string{"^a", "a$", `\ba`, `\Ba`} {
		_, err := Regex(p)
		var le *LowerError
		if !errors.As(err, &le) || le.Kind != ErrNotSupportedRegexNode {
			t.Errorf("pattern %q: expected NotSupportedRegexNode, got %v", p, err)
		}
	}
}

func TestRegexDotIsFullRangeClass(t *testing.T) {
	n, err := Regex(".")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindClass {
		t.Fatalf("expected Class, got %v", n.Kind())
	}
	ranges := n.Ranges()
	if len(ranges) != 1 || ranges[0].Lo != 0 {
		t.Fatalf("expected single unrestricted range, got %v", ranges)
	}
}

func TestRegexGroupIsTransparent(t *testing.T) {
	n, err := Regex("(ab)")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindLiteral {
		t.Fatalf("expected group to collapse to Literal, got %v", n.Kind())
	}
}

func TestRegexCustomCharacterClass(t *testing.T) {
	n, err := Regex("[a-cx]")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindClass {
		t.Fatalf("expected Class, got %v", n.Kind())
	}
}

func TestRegexInvertedCharacterClass(t *testing.T) {
	n, err := Regex("[^bc]")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindClass {
		t.Fatalf("expected Class, got %v", n.Kind())
	}
	ranges := n.Ranges()
	for _, r := range ranges {
		if r.Contains('b') || r.Contains('c') {
			t.Fatalf("inverted class must exclude b/c, got %v", ranges)
		}
	}
}

func TestRegexAlternation(t *testing.T) {
	n, err := Regex("ab|cd")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != KindAlternation {
		t.Fatalf("expected Alternation, got %v", n.Kind())
	}
	if len(n.Children()) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(n.Children()))
	}
}
