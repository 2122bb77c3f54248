package graph

import (
	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/internal/sparse"
)

// Shake performs spec.md §4.5's reachability-and-compaction pass: a DFS
// from RootID marks every reachable node, unreachable slots are dropped,
// and the arena is rebuilt with a dense, stable, injective renumbering.
// Terminals are not renumbered. Must be called after MakeRoot.
func (g *Graph) Shake() error {
	if g.rootID == invalidID {
		return ErrShakingError
	}

	visited := sparse.NewSparseSet(uint32(len(g.nodes)))
	var order []NodeID
	var walkErr error

	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		if id == invalidID || walkErr != nil {
			return
		}
		if int(id) >= len(g.nodes) || visited.Contains(uint32(id)) {
			if int(id) >= len(g.nodes) {
				walkErr = &BuildError{Err: ErrShakingError, NodeID: id}
			}
			return
		}
		visited.Insert(uint32(id))
		n := g.nodes[id]
		if n == nil {
			walkErr = &BuildError{Err: ErrShakingError, NodeID: id}
			return
		}
		order = append(order, id)
		switch n.kind {
		case kindBranch:
			for _, r := range n.branch.ranges {
				dfs(r.next)
			}
			if n.branch.hasMiss() {
				dfs(n.branch.miss)
			}
		case kindSeq:
			dfs(n.seq.then)
			if n.seq.miss.kind != missNone {
				dfs(n.seq.miss.target)
			}
		case kindLeaf:
			// no outgoing edges
		}
	}
	dfs(g.rootID)
	if walkErr != nil {
		return walkErr
	}

	// Dense, stable, injective renumbering in DFS-discovery order. Spec.md
	// §4.5 describes numbering by counting marks in reverse so the
	// highest-index reachable node gets the largest new index, but is
	// explicit that "exact order is unimportant as long as it is dense,
	// stable, and injective" — discovery order satisfies all three and
	// keeps the remap a single linear pass.
	mapping := make(map[NodeID]NodeID, len(order))
	for i, old := range order {
		mapping[old] = NodeID(conv.IntToUint32(i + 1)) // slot 0 stays reserved/unused
	}

	newNodes := make([]*node, len(order)+1)
	for i, old := range order {
		newNodes[i+1] = remapNode(g.nodes[old], mapping)
	}

	g.nodes = newNodes
	g.rootID = mapping[g.rootID]
	return nil
}

func remapNode(n *node, mapping map[NodeID]NodeID) *node {
	switch n.kind {
	case kindBranch:
		nb := &branchContent{ranges: make([]rangeEntry, len(n.branch.ranges))}
		for i, r := range n.branch.ranges {
			nb.ranges[i] = rangeEntry{lo: r.lo, hi: r.hi, next: mapping[r.next]}
		}
		if n.branch.hasMiss() {
			nb.miss = mapping[n.branch.miss]
		}
		return &node{kind: kindBranch, branch: nb}
	case kindSeq:
		run := make([]uint32, len(n.seq.run))
		copy(run, n.seq.run)
		ns := &seqContent{run: run, then: mapping[n.seq.then]}
		if n.seq.miss.kind != missNone {
			ns.miss = seqMiss{kind: n.seq.miss.kind, target: mapping[n.seq.miss.target]}
		}
		return &node{kind: kindSeq, seq: ns}
	default: // kindLeaf
		return &node{kind: kindLeaf, leaf: n.leaf}
	}
}
