package graph

import (
	"testing"

	"github.com/coregx/lexgen/hir"
)

func TestMergeSelfIsNoop(t *testing.T) {
	g := New()
	g.terminals = append(g.terminals, Terminal{Name: "X", HIR: hir.Token("a")})
	id, err := g.alloc(&node{kind: kindLeaf, leaf: leafContent{end: 0}})
	if err != nil {
		t.Fatal(err)
	}
	merged, err := g.merge(id, id)
	if err != nil {
		t.Fatal(err)
	}
	if merged != id {
		t.Fatalf("merge(a,a) = %d, want %d", merged, id)
	}
}

func TestMergeBothEmptyIsError(t *testing.T) {
	g := New()
	a := g.reserveID()
	b := g.reserveID()
	if _, err := g.merge(a, b); err == nil {
		t.Fatal("expected error merging two unfilled nodes")
	}
}

func TestMergeBranchesDisjointRangesPreserved(t *testing.T) {
	g := New()
	left := &branchContent{ranges: []rangeEntry{{lo: 'a', hi: 'm', next: 1}}}
	right := &branchContent{ranges: []rangeEntry{{lo: 'n', hi: 'z', next: 2}}}
	merged, err := g.mergeBranches(left, right)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged.ranges) != 2 {
		t.Fatalf("ranges = %v, want 2 disjoint entries", merged.ranges)
	}
}

func TestMergeBranchesOverlapRecurses(t *testing.T) {
	g := New()
	g.terminals = []Terminal{
		{Name: "A", HIR: hir.Token("a"), Priority: 1},
		{Name: "B", HIR: hir.Token("b"), Priority: 2},
	}
	leafA, err := g.alloc(&node{kind: kindLeaf, leaf: leafContent{end: 0}})
	if err != nil {
		t.Fatal(err)
	}
	leafB, err := g.alloc(&node{kind: kindLeaf, leaf: leafContent{end: 1}})
	if err != nil {
		t.Fatal(err)
	}
	left := &branchContent{ranges: []rangeEntry{{lo: 'a', hi: 'z', next: leafA}}}
	right := &branchContent{ranges: []rangeEntry{{lo: 'm', hi: 'q', next: leafB}}}
	merged, err := g.mergeBranches(left, right)
	if err != nil {
		t.Fatal(err)
	}
	// expect three sub-ranges: [a,l]->leafA, [m,q]->merged(leafA,leafB), [r,z]->leafA
	if len(merged.ranges) != 3 {
		t.Fatalf("ranges = %+v, want 3 entries from overlap split", merged.ranges)
	}
}

func TestSplitMissForRemainder(t *testing.T) {
	first := seqMiss{kind: missFirst, target: 7}
	if got := splitMissForRemainder(first); got.kind != missNone {
		t.Fatalf("First remainder = %v, want None", got)
	}
	any := seqMiss{kind: missAnytime, target: 9}
	if got := splitMissForRemainder(any); got != any {
		t.Fatalf("Anytime remainder = %v, want unchanged %v", got, any)
	}
}

func TestMissCompatible(t *testing.T) {
	none := seqMiss{}
	first := seqMiss{kind: missFirst, target: 1}
	firstOther := seqMiss{kind: missFirst, target: 2}
	any := seqMiss{kind: missAnytime, target: 1}

	if !missCompatible(none, first) {
		t.Fatal("None is compatible with anything")
	}
	if !missCompatible(first, first) {
		t.Fatal("identical miss is compatible")
	}
	if missCompatible(first, firstOther) {
		t.Fatal("same kind, different target should be incompatible")
	}
	if missCompatible(first, any) {
		t.Fatal("different kinds should be incompatible")
	}
}
