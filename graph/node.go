package graph

import "fmt"

// NodeID is a dense, arena-relative index identifying a graph node.
// Index 0 is reserved and never refers to a real node (spec.md §3),
// mirroring nfa.StateID's sentinel-value convention (nfa/nfa.go) except
// that here the sentinel is the zero value rather than a max-value
// constant, since the arena itself reserves slot 0 unused.
type NodeID uint32

// kind identifies which of the three node variants (Branch/Seq/Leaf) a
// node holds — a closed, exhaustively-matched set, the same posture as
// nfa.StateKind (nfa/nfa.go).
type kind uint8

const (
	kindBranch kind = iota
	kindSeq
	kindLeaf
)

// missKind identifies a Seq node's miss policy (spec.md §3).
type missKind uint8

const (
	// missNone: the Seq has no fallback; on a mismatch the emitted
	// routine raises NotMatch (spec.md §4.7).
	missNone missKind = iota
	// missFirst: the fallback fires only if the very first byte of the
	// run mismatches.
	missFirst
	// missAnytime: the fallback fires on a mismatch at any position
	// within the run.
	missAnytime
)

// seqMiss is a Seq node's fallback policy: none, or a target gated by
// First/Anytime semantics (spec.md §3's SeqMiss = First(NodeId) |
// Anytime(NodeId)).
type seqMiss struct {
	kind   missKind
	target NodeID
}

func (m seqMiss) String() string {
	switch m.kind {
	case missFirst:
		return fmt.Sprintf("First(%d)", m.target)
	case missAnytime:
		return fmt.Sprintf("Anytime(%d)", m.target)
	default:
		return "None"
	}
}

// rangeEntry is one key of a Branch's dispatch table: an inclusive byte
// range mapped to a successor node.
type rangeEntry struct {
	lo, hi uint32
	next   NodeID
}

func (r rangeEntry) contains(b uint32) bool { return b >= r.lo && b <= r.hi }

// branchContent is the payload of a Branch node: a set of pairwise
// disjoint, ascending byte ranges dispatching to successor nodes, plus an
// optional fallback for bytes matching none of them.
type branchContent struct {
	ranges []rangeEntry // invariant: sorted by lo, pairwise disjoint
	miss   NodeID       // 0 (invalidID) means "no fallback"
}

func (b *branchContent) hasMiss() bool { return b.miss != invalidID }

// lookup returns the successor for byte value v, if any range covers it.
func (b *branchContent) lookup(v uint32) (NodeID, bool) {
	// Ranges are few in practice (an alphabet partition, not one entry
	// per byte value) — linear scan over a small-N table this size beats
	// building a binary-search index for it.
	for _, r := range b.ranges {
		if r.contains(v) {
			return r.next, true
		}
	}
	return invalidID, false
}

func (b *branchContent) clone() *branchContent {
	cp := &branchContent{miss: b.miss}
	if len(b.ranges) > 0 {
		cp.ranges = make([]rangeEntry, len(b.ranges))
		copy(cp.ranges, b.ranges)
	}
	return cp
}

// seqContent is the payload of a Seq node: a fixed byte run that must be
// matched in full before continuing to `then`, with a miss policy for
// mismatches.
type seqContent struct {
	run  []uint32
	then NodeID
	miss seqMiss
}

// leafContent is the payload of a Leaf node: an index into the graph's
// terminal table.
type leafContent struct {
	end int
}

// node is the closed sum type over the three graph node variants — plain
// conversion/inspection functions do the work an IntoNode-style interface
// hierarchy would in an OO design (spec.md §9, "Sum types over
// inheritance").
type node struct {
	kind   kind
	branch *branchContent
	seq    *seqContent
	leaf   leafContent
}

// invalidID is the zero NodeID: arena slot 0, reserved and unused.
const invalidID NodeID = 0

// NodeKind is the exported, read-only classification of a node, used by
// codegen to select which routine shape to emit.
type NodeKind uint8

const (
	// Branch dispatches on disjoint byte ranges, with an optional miss.
	Branch NodeKind = iota
	// Seq consumes a fixed byte run before continuing.
	Seq
	// Leaf records a terminal.
	Leaf
)

func (k kind) export() NodeKind {
	switch k {
	case kindBranch:
		return Branch
	case kindSeq:
		return Seq
	default:
		return Leaf
	}
}
