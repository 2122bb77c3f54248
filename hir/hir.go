// Package hir provides the High-level Intermediate Representation used to
// normalise regex and literal token patterns before they are merged into a
// shared lexer graph.
//
// HIR is an algebraic, immutable representation over byte ranges: literal
// byte runs, character classes, concatenation, alternation, bounded/
// unbounded repetition and optionality. It has no notion of anchors,
// backreferences, lookaround or Unicode-property classes. Anchors,
// backreferences and lookaround are rejected when a pattern is lowered
// (see Regex); a Unicode-property class such as \pL or \w is expanded by
// the regexp/syntax parser into plain ranges and lowered as an ordinary
// Class.
package hir

import "fmt"

// Kind identifies which HIR variant a Node holds.
type Kind uint8

const (
	// KindEmpty matches the empty string.
	KindEmpty Kind = iota
	// KindLiteral matches an exact, non-empty run of scalar bytes.
	KindLiteral
	// KindClass matches any single scalar byte within a disjoint,
	// ascending set of byte ranges.
	KindClass
	// KindConcat matches each child HIR in sequence. Always has at
	// least two children after normalisation.
	KindConcat
	// KindAlternation matches any one of its children. Always has at
	// least two children after normalisation.
	KindAlternation
	// KindLoop matches its child zero or more times (reluctant/
	// possessive only — greedy repetition is rejected at lowering).
	KindLoop
	// KindMaybe matches its child zero or one times.
	KindMaybe
)

// MaxScalar is the upper bound of the scalar-byte alphabet used internally
// by ranges, conservatively wider than a single Unicode scalar value
// (0x10FFFF) to keep range arithmetic simple at the edges.
const MaxScalar = 0xFFFFFFFF

// Range is an inclusive byte range [Lo, Hi].
type Range struct {
	Lo, Hi uint32
}

// Contains reports whether b falls within the range.
func (r Range) Contains(b uint32) bool {
	return b >= r.Lo && b <= r.Hi
}

// Node is an immutable HIR value. Exactly one of its fields is meaningful,
// selected by Kind — a closed, exhaustively matched variant set rather
// than an interface hierarchy.
type Node struct {
	kind     Kind
	run      []uint32 // KindLiteral
	ranges   []Range  // KindClass, sorted ascending, non-overlapping
	children []Node   // KindConcat, KindAlternation
	child    *Node    // KindLoop, KindMaybe
}

// Kind returns the node's variant.
func (n Node) Kind() Kind { return n.kind }

// Empty returns the HIR for the empty string.
func Empty() Node { return Node{kind: KindEmpty} }

// Literal returns the HIR for an exact run of scalar bytes. Panics if run
// is empty — callers that might produce an empty run should use Empty
// instead (this mirrors spec.md §3: "Literal(run) — a non-empty byte
// run").
func Literal(run []uint32) Node {
	if len(run) == 0 {
		panic("hir: Literal requires a non-empty run")
	}
	cp := make([]uint32, len(run))
	copy(cp, run)
	return Node{kind: KindLiteral, run: cp}
}

// Run returns the literal byte run. Only meaningful when Kind() ==
// KindLiteral.
func (n Node) Run() []uint32 { return n.run }

// Class returns the HIR for a character class over the given ranges. The
// ranges are sorted and coalesced (overlapping/adjacent ranges merged)
// before storage, satisfying the Class invariant in spec.md §3.
func Class(ranges []Range) Node {
	return Node{kind: KindClass, ranges: coalesce(ranges)}
}

// Dot returns the HIR for `.` — the class spanning the whole alphabet.
func Dot() Node {
	return Class([]Range{{Lo: 0, Hi: MaxScalar}})
}

// Ranges returns the class's disjoint, ascending ranges. Only meaningful
// when Kind() == KindClass.
func (n Node) Ranges() []Range { return n.ranges }

// Invert returns the complement of a class against [0, MaxScalar]. Only
// valid when Kind() == KindClass.
func (n Node) Invert() Node {
	if n.kind != KindClass {
		panic("hir: Invert requires a Class node")
	}
	var out []Range
	next := uint32(0)
	for _, r := range n.ranges {
		if r.Lo > next {
			out = append(out, Range{Lo: next, Hi: r.Lo - 1})
		}
		if r.Hi == MaxScalar {
			next = MaxScalar
			break
		}
		next = r.Hi + 1
	}
	if next <= MaxScalar && (len(n.ranges) == 0 || n.ranges[len(n.ranges)-1].Hi != MaxScalar) {
		out = append(out, Range{Lo: next, Hi: MaxScalar})
	}
	return Node{kind: KindClass, ranges: out}
}

// Concat concatenates children in order. Nested Concats are flattened,
// Empty children are dropped, and adjacent Literal children are merged
// into a single Literal here (spec.md §4.2, "Collect runs of adjacent
// Literal children"), so graph push never sees two adjacent Literals. A
// single child collapses to itself; an empty list collapses to Empty.
func Concat(children ...Node) Node {
	flat := make([]Node, 0, len(children))
	for _, c := range children {
		if c.kind == KindEmpty {
			continue
		}
		if c.kind == KindConcat {
			flat = append(flat, c.children...)
			continue
		}
		flat = append(flat, c)
	}
	flat = mergeAdjacentLiterals(flat)
	switch len(flat) {
	case 0:
		return Empty()
	case 1:
		return flat[0]
	default:
		return Node{kind: KindConcat, children: flat}
	}
}

func mergeAdjacentLiterals(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.kind == KindLiteral && len(out) > 0 && out[len(out)-1].kind == KindLiteral {
			prev := out[len(out)-1]
			merged := make([]uint32, 0, len(prev.run)+len(n.run))
			merged = append(merged, prev.run...)
			merged = append(merged, n.run...)
			out[len(out)-1] = Node{kind: KindLiteral, run: merged}
			continue
		}
		out = append(out, n)
	}
	return out
}

// Children returns the concatenation/alternation's children. Only
// meaningful when Kind() is KindConcat or KindAlternation.
func (n Node) Children() []Node { return n.children }

// Alternation returns the HIR matching any one of its children. A single
// child collapses to itself; an empty list collapses to Empty.
func Alternation(children ...Node) Node {
	flat := make([]Node, 0, len(children))
	for _, c := range children {
		if c.kind == KindAlternation {
			flat = append(flat, c.children...)
			continue
		}
		flat = append(flat, c)
	}
	switch len(flat) {
	case 0:
		return Empty()
	case 1:
		return flat[0]
	default:
		return Node{kind: KindAlternation, children: flat}
	}
}

// Loop returns the HIR matching child zero or more times.
func Loop(child Node) Node {
	c := child
	return Node{kind: KindLoop, child: &c}
}

// Maybe returns the HIR matching child zero or one times.
func Maybe(child Node) Node {
	c := child
	return Node{kind: KindMaybe, child: &c}
}

// Child returns the wrapped child. Only meaningful when Kind() is
// KindLoop or KindMaybe.
func (n Node) Child() Node { return *n.child }

// Priority computes the tie-breaking score defined by spec.md §3:
//
//	Empty|Loop|Maybe → 0
//	Class            → 1
//	Literal(run)     → 2·len(run)
//	Concat           → Σ children
//	Alternation      → min children
//
// This rewards specificity and length and penalises open-ended
// repetition. The asymmetry between Class (constant 1) and Alternation
// (min, which can itself be driven arbitrarily low by a Class child) is
// intentional — see spec.md §9's first Design Note/Open Question, which
// this implementation preserves rather than "fixes".
func (n Node) Priority() int {
	switch n.kind {
	case KindEmpty, KindLoop, KindMaybe:
		return 0
	case KindClass:
		return 1
	case KindLiteral:
		return 2 * len(n.run)
	case KindConcat:
		sum := 0
		for _, c := range n.children {
			sum += c.Priority()
		}
		return sum
	case KindAlternation:
		min := n.children[0].Priority()
		for _, c := range n.children[1:] {
			if p := c.Priority(); p < min {
				min = p
			}
		}
		return min
	default:
		panic(fmt.Sprintf("hir: unknown kind %d", n.kind))
	}
}

func coalesce(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	cp := make([]Range, len(ranges))
	copy(cp, ranges)
	sortRanges(cp)
	out := cp[:1]
	for _, r := range cp[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func sortRanges(ranges []Range) {
	// Small, bounded inputs (character classes rarely exceed a few dozen
	// members) — a simple insertion sort keeps this dependency-free and
	// avoids importing sort.Slice's closure overhead, matching the
	// teacher's preference for direct loops over small fixed data in hot
	// construction paths (e.g. nfa.ByteClassSet).
	for i := 1; i < len(ranges); i++ {
		for j := i; j > 0 && less(ranges[j], ranges[j-1]); j-- {
			ranges[j], ranges[j-1] = ranges[j-1], ranges[j]
		}
	}
}

func less(a, b Range) bool {
	if a.Lo != b.Lo {
		return a.Lo < b.Lo
	}
	return a.Hi < b.Hi
}

// String renders a compact debug form, used in tests and error messages.
func (n Node) String() string {
	switch n.kind {
	case KindEmpty:
		return "Empty"
	case KindLiteral:
		return fmt.Sprintf("Literal(%v)", n.run)
	case KindClass:
		return fmt.Sprintf("Class(%v)", n.ranges)
	case KindConcat:
		return fmt.Sprintf("Concat(%v)", n.children)
	case KindAlternation:
		return fmt.Sprintf("Alternation(%v)", n.children)
	case KindLoop:
		return fmt.Sprintf("Loop(%v)", n.Child())
	case KindMaybe:
		return fmt.Sprintf("Maybe(%v)", n.Child())
	default:
		return "Unknown"
	}
}
