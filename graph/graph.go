package graph

import (
	"reflect"

	"github.com/coregx/lexgen/hir"
	"github.com/coregx/lexgen/internal/conv"
)

// TerminalKind classifies what a matched terminal does, mirroring the
// declarative token kinds in spec.md §6.
type TerminalKind uint8

const (
	// Standalone records a plain token variant.
	Standalone TerminalKind = iota
	// Skip silently drops the match and restarts the scan.
	Skip
	// FillCallback transforms the matched slice into the token payload.
	FillCallback
	// CreateCallback returns a token (or a skip sentinel) from the
	// matched slice.
	CreateCallback
)

// Terminal is spec.md §3's GraphInput: a token definition bound to its
// lowered HIR. Callback is an opaque symbolic handle (a name or inline
// expression captured as text) that codegen emits verbatim — the graph
// never interprets it (spec.md §9, "Callbacks").
type Terminal struct {
	Name     string
	Kind     TerminalKind
	HIR      hir.Node
	Priority int
	Callback string
}

// priority resolves the effective tie-break priority: the declared
// Priority if non-zero, else the HIR's own computed priority (spec.md
// §3: "priority defaults to hir.priority()"). Terminals that explicitly
// want priority 0 and whose HIR would also compute to a nonzero value
// cannot currently express that — callers needing an explicit zero use
// a HIR whose own priority is already zero (e.g. Loop/Maybe/Empty).
func (t Terminal) priority() int {
	if t.Priority != 0 {
		return t.Priority
	}
	return t.HIR.Priority()
}

type pendingEntry struct {
	waiting NodeID
	has     NodeID
	into    NodeID
}

// mergeKey is a memo key for the (a, b) → result cache. Lookup and
// storage both normalise the pair to (min, max) — merge produces a
// single canonical result for an unordered pair
// (the same result node must come out of merge(a,b) and merge(b,a)), so
// normalising here makes the memo commutative without changing observed
// behaviour; it is a storage-layout choice, not a semantic one.
type mergeKey struct{ a, b NodeID }

func normKey(a, b NodeID) mergeKey {
	if a > b {
		a, b = b, a
	}
	return mergeKey{a, b}
}

// Graph is the process-local workspace described in spec.md §3: a node
// arena, an insertion-ordered terminal table, a merge memo, a
// pending-merge queue, and per-terminal entry points. It is not safe for
// concurrent use — like nfa.Builder (nfa/builder.go), it is a
// single-owner incremental construction type.
type Graph struct {
	nodes     []*node // index 0 reserved, always nil
	terminals []Terminal
	memo      map[mergeKey]NodeID
	pending   []pendingEntry
	roots     []NodeID
	rootID    NodeID
}

// New creates an empty Graph, ready for PushTerminal calls.
func New() *Graph {
	return &Graph{
		nodes: make([]*node, 1), // slot 0 reserved unused
		memo:  make(map[mergeKey]NodeID),
	}
}

// Terminals returns the terminals pushed so far, in insertion order.
func (g *Graph) Terminals() []Terminal {
	out := make([]Terminal, len(g.terminals))
	copy(out, g.terminals)
	return out
}

// reserveID allocates a new, empty (unfilled) arena slot.
func (g *Graph) reserveID() NodeID {
	id := NodeID(conv.IntToUint32(len(g.nodes)))
	g.nodes = append(g.nodes, nil)
	return id
}

// fill installs content at id (which must be currently empty) and drains
// any pending merges that were waiting on id.
func (g *Graph) fill(id NodeID, n *node) error {
	if g.nodes[id] != nil {
		return &BuildError{Err: ErrOverwriteNonReserved, NodeID: id}
	}
	g.nodes[id] = n
	return g.drain(id)
}

// alloc reserves a fresh slot and immediately fills it.
func (g *Graph) alloc(n *node) (NodeID, error) {
	id := g.reserveID()
	if err := g.fill(id, n); err != nil {
		return invalidID, err
	}
	return id, nil
}

// installAt fills reserved (if non-nil) or allocates a fresh slot.
func (g *Graph) installAt(reserved *NodeID, n *node) (NodeID, error) {
	if reserved != nil {
		if err := g.fill(*reserved, n); err != nil {
			return invalidID, err
		}
		return *reserved, nil
	}
	return g.alloc(n)
}

// drain processes any Pending entries whose `waiting` slot is id, now
// that id has content. Draining a pending entry fills its `into` slot,
// which may itself unblock further pending entries — so this recurses
// via fill → drain rather than relying solely on the residual
// MergeAllPendings pass (spec.md §4.3).
func (g *Graph) drain(id NodeID) error {
	for {
		idx := -1
		for i := len(g.pending) - 1; i >= 0; i-- {
			if g.pending[i].waiting == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil
		}
		p := g.pending[idx]
		g.pending = append(g.pending[:idx], g.pending[idx+1:]...)
		if err := g.mergeKnown(p.has, p.waiting, p.into); err != nil {
			return err
		}
	}
}

// MergeAllPendings drains any pending merges left over after all
// PushTerminal calls, as a residual closure pass before Shake (spec.md
// §4.3: "A residual mergeAllPendings pass after the pattern-level pushes
// ensures closure before shake"). In this implementation fill() already
// drains eagerly, so in practice this only has work to do if a forward
// reference's target was reserved but never independently filled — which
// indicates a real bug elsewhere, not a normal code path — but it is
// still safe (and cheap) to call unconditionally.
func (g *Graph) MergeAllPendings() error {
	for {
		progressed := false
		for i := len(g.pending) - 1; i >= 0; i-- {
			p := g.pending[i]
			if g.nodes[p.waiting] == nil {
				continue
			}
			g.pending = append(g.pending[:i], g.pending[i+1:]...)
			if err := g.mergeKnown(p.has, p.waiting, p.into); err != nil {
				return err
			}
			progressed = true
			break
		}
		if !progressed {
			break
		}
	}
	return nil
}

// PushTerminal appends a terminal and threads its HIR into the graph,
// returning the terminal's entry NodeID (also recorded in roots).
// Fails with ErrDuplicatedInputs if an identical (HIR, Name) pair was
// already pushed (spec.md §4.2).
func (g *Graph) PushTerminal(t Terminal) (NodeID, error) {
	for _, existing := range g.terminals {
		if existing.Name == t.Name && reflect.DeepEqual(existing.HIR, t.HIR) {
			return invalidID, ErrDuplicatedInputs
		}
	}
	end := len(g.terminals)
	g.terminals = append(g.terminals, t)

	leafID, err := g.alloc(&node{kind: kindLeaf, leaf: leafContent{end: end}})
	if err != nil {
		return invalidID, err
	}

	entry, err := g.pushHIR(t.HIR, leafID, seqMiss{}, nil)
	if err != nil {
		return invalidID, err
	}
	g.roots = append(g.roots, entry)
	return entry, nil
}

// pushHIR threads h into the graph so that matching h then continues at
// succ, falling back to miss on mismatch (if miss.kind != missNone), and
// installs the result at reserved if given (spec.md §4.2).
func (g *Graph) pushHIR(h hir.Node, succ NodeID, miss seqMiss, reserved *NodeID) (NodeID, error) {
	switch h.Kind() {
	case hir.KindEmpty:
		// Empty collapses to its continuation: succ is returned
		// directly, and a reserved slot, if one was passed, is not
		// filled here.
		return succ, nil

	case hir.KindLoop:
		missNext := succ
		if miss.kind != missNone {
			merged, err := g.merge(succ, miss.target)
			if err != nil {
				return invalidID, err
			}
			missNext = merged
		}
		var loopID NodeID
		if reserved != nil {
			loopID = *reserved
		} else {
			loopID = g.reserveID()
		}
		return g.pushHIR(h.Child(), loopID, seqMiss{kind: missAnytime, target: missNext}, &loopID)

	case hir.KindMaybe:
		missNext := succ
		if miss.kind != missNone {
			merged, err := g.merge(succ, miss.target)
			if err != nil {
				return invalidID, err
			}
			missNext = merged
		}
		return g.pushHIR(h.Child(), succ, seqMiss{kind: missAnytime, target: missNext}, reserved)

	case hir.KindConcat:
		return g.pushConcat(h.Children(), succ, miss, reserved)

	case hir.KindAlternation:
		return g.pushAlternation(h.Children(), succ, miss, reserved)

	case hir.KindLiteral:
		var m seqMiss
		if miss.kind != missNone {
			m = seqMiss{kind: missFirst, target: miss.target}
		}
		return g.installAt(reserved, &node{kind: kindSeq, seq: &seqContent{run: h.Run(), then: succ, miss: m}})

	case hir.KindClass:
		entries := make([]rangeEntry, len(h.Ranges()))
		for i, r := range h.Ranges() {
			entries[i] = rangeEntry{lo: r.Lo, hi: r.Hi, next: succ}
		}
		missTarget := invalidID
		if miss.kind != missNone {
			missTarget = miss.target
		}
		return g.installAt(reserved, &node{kind: kindBranch, branch: &branchContent{ranges: entries, miss: missTarget}})

	default:
		panic("graph: unhandled hir kind")
	}
}

// pushConcat folds a Concat's children from the right: everything after
// the leftmost child forbids its own miss/reserved, and only the
// leftmost child receives the outer miss/reserved (spec.md §4.2).
func (g *Graph) pushConcat(children []hir.Node, succ NodeID, miss seqMiss, reserved *NodeID) (NodeID, error) {
	cur := succ
	for i := len(children) - 1; i >= 0; i-- {
		if i == 0 {
			next, err := g.pushHIR(children[i], cur, miss, reserved)
			if err != nil {
				return invalidID, err
			}
			return next, nil
		}
		next, err := g.pushHIR(children[i], cur, seqMiss{}, nil)
		if err != nil {
			return invalidID, err
		}
		cur = next
	}
	return cur, nil
}

// pushAlternation builds a single Branch accumulating every child's
// entry point, reinterpreted as a branch view (spec.md §4.2).
func (g *Graph) pushAlternation(children []hir.Node, succ NodeID, miss seqMiss, reserved *NodeID) (NodeID, error) {
	var acc *branchContent
	if miss.kind != missNone {
		acc = &branchContent{miss: miss.target}
	} else {
		acc = &branchContent{}
	}
	for _, c := range children {
		childEntry, err := g.pushHIR(c, succ, seqMiss{}, nil)
		if err != nil {
			return invalidID, err
		}
		view, err := g.branchView(childEntry)
		if err != nil {
			return invalidID, err
		}
		merged, err := g.mergeBranches(acc, view)
		if err != nil {
			return invalidID, err
		}
		acc = merged
	}
	return g.installAt(reserved, &node{kind: kindBranch, branch: acc})
}

// branchView reinterprets any node as branch content without mutating
// it: a Branch is returned as-is; a Leaf becomes an empty branch whose
// miss is the leaf itself; a Seq is split on its first byte, with the
// remaining bytes (if any) installed as a fresh remainder Seq node
// (spec.md §4.2 "reinterpret that node as a Branch", and §4.3's
// Seq-projection rule used by merge_known's generic fallback).
func (g *Graph) branchView(id NodeID) (*branchContent, error) {
	n := g.nodes[id]
	if n == nil {
		return nil, &BuildError{Err: ErrEmptyMerging, NodeID: id}
	}
	switch n.kind {
	case kindBranch:
		return n.branch.clone(), nil
	case kindLeaf:
		return &branchContent{miss: id}, nil
	case kindSeq:
		return g.seqAsBranch(n.seq)
	default:
		panic("graph: unhandled node kind")
	}
}

func (g *Graph) seqAsBranch(s *seqContent) (*branchContent, error) {
	first := s.run[0]
	var remainder NodeID
	if len(s.run) == 1 {
		remainder = s.then
	} else {
		rem, err := g.alloc(&node{kind: kindSeq, seq: &seqContent{
			run:  s.run[1:],
			then: s.then,
			miss: splitMissForRemainder(s.miss),
		}})
		if err != nil {
			return nil, err
		}
		remainder = rem
	}
	missTarget := invalidID
	if s.miss.kind != missNone {
		missTarget = s.miss.target
	}
	return &branchContent{
		ranges: []rangeEntry{{lo: first, hi: first, next: remainder}},
		miss:   missTarget,
	}, nil
}

// splitMissForRemainder computes the miss policy a remainder Seq (the
// bytes after a consumed prefix) inherits from the original. A First
// policy only ever guards the very first byte, which the remainder no
// longer owns, so it drops to None; an Anytime policy still applies to
// every remaining byte, so it is kept unchanged.
func splitMissForRemainder(m seqMiss) seqMiss {
	if m.kind == missAnytime {
		return m
	}
	return seqMiss{}
}
