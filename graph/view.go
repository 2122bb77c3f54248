package graph

// RangeView is one key of a Branch node's dispatch table, exported for
// codegen consumption.
type RangeView struct {
	Lo, Hi uint32
	Next   NodeID
}

// MissKind classifies a Seq node's fallback policy.
type MissKind uint8

const (
	// MissNone: no fallback.
	MissNone MissKind = iota
	// MissFirst: fallback fires only on a first-byte mismatch.
	MissFirst
	// MissAnytime: fallback fires on a mismatch at any position.
	MissAnytime
)

// SeqMissView describes a Seq node's miss policy.
type SeqMissView struct {
	Kind   MissKind
	Target NodeID
}

// NodeView is a read-only snapshot of one arena node, exposing exactly
// the fields codegen needs (spec.md §4.6) without reaching into the
// graph package's internal representation.
type NodeView struct {
	ID   NodeID
	Kind NodeKind

	// Branch fields (Kind == Branch)
	BranchRanges []RangeView
	BranchMiss   NodeID // invalidID (0) means no fallback
	BranchHasMiss bool

	// Seq fields (Kind == Seq)
	SeqRun  []uint32
	SeqThen NodeID
	SeqMiss SeqMissView

	// Leaf fields (Kind == Leaf)
	LeafTerminal int
}

func exportMiss(m seqMiss) SeqMissView {
	switch m.kind {
	case missFirst:
		return SeqMissView{Kind: MissFirst, Target: m.target}
	case missAnytime:
		return SeqMissView{Kind: MissAnytime, Target: m.target}
	default:
		return SeqMissView{Kind: MissNone}
	}
}

func (g *Graph) view(id NodeID, n *node) NodeView {
	v := NodeView{ID: id, Kind: n.kind.export()}
	switch n.kind {
	case kindBranch:
		v.BranchRanges = make([]RangeView, len(n.branch.ranges))
		for i, r := range n.branch.ranges {
			v.BranchRanges[i] = RangeView{Lo: r.lo, Hi: r.hi, Next: r.next}
		}
		v.BranchHasMiss = n.branch.hasMiss()
		v.BranchMiss = n.branch.miss
	case kindSeq:
		v.SeqRun = append([]uint32(nil), n.seq.run...)
		v.SeqThen = n.seq.then
		v.SeqMiss = exportMiss(n.seq.miss)
	case kindLeaf:
		v.LeafTerminal = n.leaf.end
	}
	return v
}

// Nodes returns a view of every arena slot in index order, valid after
// Shake (slot 0 is always the reserved-unused sentinel and is omitted).
// Every returned node is guaranteed filled (Shake drops unreachable,
// never-filled slots) — this is the property spec.md §8 invariant 4
// asserts.
func (g *Graph) Nodes() []NodeView {
	out := make([]NodeView, 0, len(g.nodes)-1)
	for id := 1; id < len(g.nodes); id++ {
		n := g.nodes[id]
		if n == nil {
			continue
		}
		out = append(out, g.view(NodeID(id), n))
	}
	return out
}

// Node returns the view for a single id, and whether that id refers to a
// filled node in the current arena.
func (g *Graph) Node(id NodeID) (NodeView, bool) {
	if id == invalidID || int(id) >= len(g.nodes) || g.nodes[id] == nil {
		return NodeView{}, false
	}
	return g.view(id, g.nodes[id]), true
}

// TerminalAt returns the terminal with the given index (as stored in a
// Leaf node's LeafTerminal field).
func (g *Graph) TerminalAt(idx int) Terminal {
	return g.terminals[idx]
}

// Len returns the number of arena slots, including the reserved slot 0.
// After Shake, valid NodeIds lie in [1, Len()).
func (g *Graph) Len() int {
	return len(g.nodes)
}
