package graph

import (
	"testing"

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

func buildFinal(t *testing.T, terms ...Terminal) *Graph {
	t.Helper()
	g := New()
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

// assertBranchDisjoint checks spec.md §8's branch-table invariant: ranges
// within a single Branch node never overlap.
func assertBranchDisjoint(t *testing.T, g *Graph) {
	t.Helper()
	for _, v := range g.Nodes() {
		if v.Kind != Branch {
			continue
		}
		for i := 0; i < len(v.BranchRanges); i++ {
			for j := i + 1; j < len(v.BranchRanges); j++ {
				a, b := v.BranchRanges[i], v.BranchRanges[j]
				if a.Lo <= b.Hi && b.Lo <= a.Hi {
					t.Fatalf("node %d: overlapping ranges [%d,%d] and [%d,%d]",
						v.ID, a.Lo, a.Hi, b.Lo, b.Hi)
				}
			}
		}
	}
}

// assertDenseInjective checks spec.md §8's post-shake numbering invariant:
// ids span [1, Len()) with no gaps and no duplicates.
func assertDenseInjective(t *testing.T, g *Graph) {
	t.Helper()
	seen := make(map[NodeID]bool)
	for _, v := range g.Nodes() {
		if v.ID == invalidID || int(v.ID) >= g.Len() {
			t.Fatalf("node id %d out of [1,%d)", v.ID, g.Len())
		}
		if seen[v.ID] {
			t.Fatalf("duplicate node id %d", v.ID)
		}
		seen[v.ID] = true
	}
	if len(seen) != g.Len()-1 {
		t.Fatalf("gap in reachable ids: got %d nodes, want %d", len(seen), g.Len()-1)
	}
}

func TestPushTerminalSingleLiteral(t *testing.T) {
	g := buildFinal(t, Terminal{Name: "AB", Kind: Standalone, HIR: hir.Token("ab")})
	assertBranchDisjoint(t, g)
	assertDenseInjective(t, g)

	root, ok := g.Node(g.RootID())
	if !ok {
		t.Fatal("root not found")
	}
	if root.Kind != Seq {
		t.Fatalf("root kind = %v, want Seq", root.Kind)
	}
	if len(root.SeqRun) != 2 || root.SeqRun[0] != 'a' || root.SeqRun[1] != 'b' {
		t.Fatalf("root run = %v, want [a b]", root.SeqRun)
	}
	then, ok := g.Node(root.SeqThen)
	if !ok || then.Kind != Leaf {
		t.Fatalf("then node = %+v, want Leaf", then)
	}
}

func TestPushTerminalDuplicateRejected(t *testing.T) {
	g := New()
	term := Terminal{Name: "AB", Kind: Standalone, HIR: hir.Token("ab")}
	if _, err := g.PushTerminal(term); err != nil {
		t.Fatalf("first push: %v", err)
	}
	if _, err := g.PushTerminal(term); err != ErrDuplicatedInputs {
		t.Fatalf("second push err = %v, want ErrDuplicatedInputs", err)
	}
}

func TestMakeRootEmptyFails(t *testing.T) {
	g := New()
	if _, err := g.MakeRoot(); err != ErrEmptyRoot {
		t.Fatalf("err = %v, want ErrEmptyRoot", err)
	}
}

func TestIdenticalPriorityRejected(t *testing.T) {
	g := New()
	lit := hir.Token("ab")
	if _, err := g.PushTerminal(Terminal{Name: "A", Kind: Standalone, HIR: lit}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.PushTerminal(Terminal{Name: "B", Kind: Standalone, HIR: lit, Priority: 0}); err != nil {
		// distinct name, same HIR: not a duplicate, but will collide on
		// merge with identical, non-overridden priority.
		t.Fatal(err)
	}
	if _, err := g.MakeRoot(); err != ErrIdenticalPriority {
		t.Fatalf("MakeRoot err = %v, want ErrIdenticalPriority", err)
	}
}

// TestTwoLiteralsSharedPrefix exercises the "ab" + "ab(b)+?" scenario from
// spec.md §8: a shared literal prefix merges into one Seq, and the
// priority-losing branch becomes a miss fallback on the continuation.
func TestTwoLiteralsSharedPrefix(t *testing.T) {
	g := buildFinal(t,
		Terminal{Name: "AB", Kind: Standalone, HIR: mustLower(t, "ab")},
		Terminal{Name: "ABB", Kind: Standalone, HIR: mustLower(t, "ab(b)+?")},
	)
	assertBranchDisjoint(t, g)
	assertDenseInjective(t, g)

	root, ok := g.Node(g.RootID())
	if !ok {
		t.Fatal("root missing")
	}
	if root.Kind != Seq {
		t.Fatalf("root kind = %v, want Seq", root.Kind)
	}
	if len(root.SeqRun) != 2 {
		t.Fatalf("root run = %v, want length-2 shared prefix", root.SeqRun)
	}
}

// TestLiteralAndCharClass exercises the "ab" + "[a-b]+?" scenario: a
// single-byte class overlapping a literal's first byte forces a Branch at
// the point of divergence.
func TestLiteralAndCharClass(t *testing.T) {
	g := buildFinal(t,
		Terminal{Name: "AB", Kind: Standalone, HIR: mustLower(t, "ab")},
		Terminal{Name: "CLASS", Kind: Standalone, HIR: mustLower(t, "[a-b]+?"), Priority: 1},
	)
	assertBranchDisjoint(t, g)
	assertDenseInjective(t, g)
}

// TestLiteralAndNegatedClass exercises the "ab" + "[^bc]+?" scenario.
func TestLiteralAndNegatedClass(t *testing.T) {
	g := buildFinal(t,
		Terminal{Name: "AB", Kind: Standalone, HIR: mustLower(t, "ab")},
		Terminal{Name: "NEG", Kind: Standalone, HIR: mustLower(t, "[^bc]+?"), Priority: 1},
	)
	assertBranchDisjoint(t, g)
	assertDenseInjective(t, g)
}

func TestPriorityPrefersHigher(t *testing.T) {
	g := buildFinal(t,
		Terminal{Name: "LOW", Kind: Standalone, HIR: hir.Token("if"), Priority: 1},
		Terminal{Name: "HIGH", Kind: Standalone, HIR: hir.Token("if"), Priority: 2},
	)
	root, ok := g.Node(g.RootID())
	if !ok || root.Kind != Seq {
		t.Fatalf("root = %+v, want Seq", root)
	}
	then, ok := g.Node(root.SeqThen)
	if !ok || then.Kind != Leaf {
		t.Fatalf("then = %+v, want Leaf", then)
	}
	if g.TerminalAt(then.LeafTerminal).Name != "HIGH" {
		t.Fatalf("winning terminal = %s, want HIGH", g.TerminalAt(then.LeafTerminal).Name)
	}
}

func TestCallbackPreserved(t *testing.T) {
	g := buildFinal(t, Terminal{
		Name:     "NUM",
		Kind:     FillCallback,
		HIR:      mustLower(t, "[0-9]+?"),
		Callback: "parseNumber",
	})
	term := g.TerminalAt(0)
	if term.Callback != "parseNumber" || term.Kind != FillCallback {
		t.Fatalf("terminal = %+v, want Callback=parseNumber Kind=FillCallback", term)
	}
}
