package graph

import "sort"

// merge combines two node entry points into one, per spec.md §4.3. It is
// the workhorse behind both Alternation building and root finalisation.
func (g *Graph) merge(a, b NodeID) (NodeID, error) {
	if a == b {
		return a, nil
	}
	key := normKey(a, b)
	if id, ok := g.memo[key]; ok {
		return id, nil
	}

	an, bn := g.nodes[a], g.nodes[b]

	if an == nil && bn == nil {
		return invalidID, &BuildError{Err: ErrEmptyMerging, NodeID: a}
	}

	if an == nil || bn == nil {
		var emptySide, filledSide NodeID
		if an == nil {
			emptySide, filledSide = a, b
		} else {
			emptySide, filledSide = b, a
		}
		into := g.reserveID()
		g.pending = append(g.pending, pendingEntry{waiting: emptySide, has: filledSide, into: into})
		g.memo[normKey(a, b)] = into
		g.memo[normKey(a, into)] = into
		g.memo[normKey(b, into)] = into
		return into, nil
	}

	if an.kind == kindLeaf && bn.kind == kindLeaf {
		ta := g.terminals[an.leaf.end]
		tb := g.terminals[bn.leaf.end]
		pa, pb := ta.priority(), tb.priority()
		switch {
		case pa == pb:
			return invalidID, ErrIdenticalPriority
		case pa > pb:
			g.memo[key] = a
			return a, nil
		default:
			g.memo[key] = b
			return b, nil
		}
	}

	into := g.reserveID()
	g.memo[key] = into
	if err := g.mergeKnown(a, b, into); err != nil {
		return invalidID, err
	}
	return into, nil
}

// mergeKnown merges two already-filled, non-leaf-leaf nodes into the
// reserved slot into (spec.md §4.3). It is also the entry point pending
// merges resolve through once their forward-referenced operand fills in.
func (g *Graph) mergeKnown(a, b, into NodeID) error {
	an, bn := g.nodes[a], g.nodes[b]
	if an == nil || bn == nil {
		return &BuildError{Err: ErrEmptyMerging, NodeID: into}
	}
	if an.kind == kindLeaf && bn.kind == kindLeaf {
		return &BuildError{Err: ErrMergingLeaves, NodeID: into}
	}

	if an.kind == kindSeq || bn.kind == kindSeq {
		handled, err := g.mergeSeqSpecialized(a, an, b, bn, into)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
	}

	la, err := g.branchView(a)
	if err != nil {
		return err
	}
	lb, err := g.branchView(b)
	if err != nil {
		return err
	}
	merged, err := g.mergeBranches(la, lb)
	if err != nil {
		return err
	}
	return g.fill(into, &node{kind: kindBranch, branch: merged})
}

// mergeSeqSpecialized attempts the Seq-aware merges of spec.md §4.3
// (Seq-vs-Branch, Seq-vs-Seq, Seq-vs-Leaf) before falling back to
// generic Branch projection. Returns handled=false when the
// specialisation's own preconditions rule it out, in which case the
// caller proceeds to the generic path.
func (g *Graph) mergeSeqSpecialized(a NodeID, an *node, b NodeID, bn *node, into NodeID) (bool, error) {
	if an.kind == kindSeq && bn.kind == kindSeq {
		return g.mergeSeqSeq(an.seq, bn.seq, into)
	}
	var sc *seqContent
	var otherID NodeID
	var otherKind kind
	var otherLeaf leafContent
	var otherBranch *branchContent
	if an.kind == kindSeq {
		sc, otherID, otherKind = an.seq, b, bn.kind
		otherLeaf, otherBranch = bn.leaf, bn.branch
	} else {
		sc, otherID, otherKind = bn.seq, a, an.kind
		otherLeaf, otherBranch = an.leaf, an.branch
	}
	switch otherKind {
	case kindBranch:
		return g.mergeSeqBranch(sc, otherID, otherBranch, into)
	case kindLeaf:
		return g.mergeSeqLeaf(sc, otherID, otherLeaf, into)
	default:
		return false, nil
	}
}

// mergeSeqBranch implements "Seq vs Branch (seq has no miss)": the
// longest prefix of the seq's run whose bytes the branch dispatches back
// to the branch itself is kept as a head Seq with an Anytime miss to the
// branch, and the head's continuation is the merge of the branch with
// the remaining bytes (or with the seq's then, if none remain). Counting
// bytes that loop back to the branch stands in for detecting a loop-back;
// when the first byte does not, the generic Branch projection is used.
func (g *Graph) mergeSeqBranch(s *seqContent, branchID NodeID, b *branchContent, into NodeID) (bool, error) {
	if s.miss.kind != missNone {
		return false, nil
	}
	k := 0
	for k < len(s.run) {
		target, ok := b.lookup(s.run[k])
		if !ok || target != branchID {
			break
		}
		k++
	}
	if k == 0 {
		return false, nil
	}

	var tailTarget NodeID
	if k == len(s.run) {
		tailTarget = s.then
	} else {
		rem, err := g.alloc(&node{kind: kindSeq, seq: &seqContent{
			run:  s.run[k:],
			then: s.then,
			miss: seqMiss{},
		}})
		if err != nil {
			return true, err
		}
		tailTarget = rem
	}

	mergedThen, err := g.merge(tailTarget, branchID)
	if err != nil {
		return true, err
	}

	run := make([]uint32, k)
	copy(run, s.run[:k])
	head := &seqContent{run: run, then: mergedThen, miss: seqMiss{kind: missAnytime, target: branchID}}
	return true, g.fill(into, &node{kind: kindSeq, seq: head})
}

// mergeSeqSeq implements "Seq vs Seq": the longest common byte prefix is
// kept as a single Seq, with the tails beyond it re-merged recursively.
func (g *Graph) mergeSeqSeq(a, b *seqContent, into NodeID) (bool, error) {
	p := 0
	for p < len(a.run) && p < len(b.run) && a.run[p] == b.run[p] {
		p++
	}
	if p == 0 {
		return false, nil
	}
	if !missCompatible(a.miss, b.miss) {
		return false, nil
	}
	combinedMiss := chooseMiss(a.miss, b.miss)

	tailA, err := g.seqRemainder(a, p)
	if err != nil {
		return true, err
	}
	tailB, err := g.seqRemainder(b, p)
	if err != nil {
		return true, err
	}
	mergedTail, err := g.merge(tailA, tailB)
	if err != nil {
		return true, err
	}

	run := make([]uint32, p)
	copy(run, a.run[:p])
	return true, g.fill(into, &node{kind: kindSeq, seq: &seqContent{run: run, then: mergedTail, miss: combinedMiss}})
}

// seqRemainder returns the NodeID representing what remains of s after
// its first p bytes are consumed: s.then if p exhausts the run, else a
// fresh Seq over the remaining bytes.
func (g *Graph) seqRemainder(s *seqContent, p int) (NodeID, error) {
	if p >= len(s.run) {
		return s.then, nil
	}
	run := make([]uint32, len(s.run)-p)
	copy(run, s.run[p:])
	return g.alloc(&node{kind: kindSeq, seq: &seqContent{run: run, then: s.then, miss: splitMissForRemainder(s.miss)}})
}

func missCompatible(a, b seqMiss) bool {
	if a.kind == missNone || b.kind == missNone {
		return true
	}
	return a.kind == b.kind && a.target == b.target
}

func chooseMiss(a, b seqMiss) seqMiss {
	if a.kind == missNone {
		return b
	}
	return a
}

// mergeSeqLeaf implements "Seq vs Leaf (seq has no miss)": the leaf
// becomes the seq's First-miss target.
func (g *Graph) mergeSeqLeaf(s *seqContent, leafID NodeID, _ leafContent, into NodeID) (bool, error) {
	if s.miss.kind != missNone {
		return false, nil
	}
	run := make([]uint32, len(s.run))
	copy(run, s.run)
	head := &seqContent{run: run, then: s.then, miss: seqMiss{kind: missFirst, target: leafID}}
	return true, g.fill(into, &node{kind: kindSeq, seq: head})
}

// mergeBranches implements spec.md §4.4's range-table merge: miss
// combination, then a sweep over both sides' ranges producing a single
// pairwise-disjoint table. Because each side's own ranges are already
// disjoint (the invariant is maintained by construction), at any given
// byte value at most one L range and one R range can apply — so the
// sweep only ever needs to combine pairs, not the general N-way overlap
// case, which is the same simplification spec.md's stack-assisted walk
// relies on.
func (g *Graph) mergeBranches(l, r *branchContent) (*branchContent, error) {
	out := &branchContent{miss: l.miss}
	switch {
	case !l.hasMiss():
		out.miss = r.miss
	case r.hasMiss() && l.miss != r.miss:
		merged, err := g.merge(l.miss, r.miss)
		if err != nil {
			return nil, err
		}
		out.miss = merged
	}

	var points []uint32
	for _, rg := range l.ranges {
		points = append(points, rg.lo)
		if rg.hi != ^uint32(0) {
			points = append(points, rg.hi+1)
		}
	}
	for _, rg := range r.ranges {
		points = append(points, rg.lo)
		if rg.hi != ^uint32(0) {
			points = append(points, rg.hi+1)
		}
	}
	points = dedupSortUint32(points)

	var entries []rangeEntry
	for i := 0; i < len(points); i++ {
		lo := points[i]
		var hi uint32
		if i+1 < len(points) {
			hi = points[i+1] - 1
		} else {
			hi = ^uint32(0)
		}
		if lo > hi {
			continue
		}
		lTarget, lOK := findRange(l.ranges, lo)
		rTarget, rOK := findRange(r.ranges, lo)
		switch {
		case lOK && rOK:
			if lTarget == rTarget {
				entries = append(entries, rangeEntry{lo: lo, hi: hi, next: lTarget})
				continue
			}
			merged, err := g.merge(lTarget, rTarget)
			if err != nil {
				return nil, err
			}
			entries = append(entries, rangeEntry{lo: lo, hi: hi, next: merged})
		case lOK:
			entries = append(entries, rangeEntry{lo: lo, hi: hi, next: lTarget})
		case rOK:
			entries = append(entries, rangeEntry{lo: lo, hi: hi, next: rTarget})
		}
	}

	out.ranges = coalesceAdjacent(entries)
	return out, nil
}

func findRange(ranges []rangeEntry, v uint32) (NodeID, bool) {
	for _, r := range ranges {
		if r.contains(v) {
			return r.next, true
		}
	}
	return invalidID, false
}

func dedupSortUint32(vs []uint32) []uint32 {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	out := vs[:0]
	var last uint32
	for i, v := range vs {
		if i == 0 || v != last {
			out = append(out, v)
			last = v
		}
	}
	return out
}

// coalesceAdjacent merges adjacent output ranges that share a target,
// keeping the final table compact (not strictly required by spec.md
// §4.4's disjointness invariant, but it is what a hand-rolled
// implementation of "canonical table" would naturally also do, and it
// keeps codegen's switch-arm grouping smaller).
func coalesceAdjacent(entries []rangeEntry) []rangeEntry {
	if len(entries) == 0 {
		return nil
	}
	out := entries[:1]
	for _, e := range entries[1:] {
		last := &out[len(out)-1]
		if last.next == e.next && last.hi+1 == e.lo {
			last.hi = e.hi
			continue
		}
		out = append(out, e)
	}
	return out
}
