package codegen

import (
	"bytes"
	"fmt"

	"github.com/coregx/lexgen/graph"
)

// runeMax bounds a range's upper edge for comparison purposes. HIR ranges
// run up to hir.MaxScalar (0xFFFFFFFF, "conservatively wider than a single
// Unicode scalar value" per hir.go) to keep range arithmetic simple at the
// edges, but no rune ever decoded from real text exceeds unicode.MaxRune —
// clamping here just turns "no practical upper bound" into a concrete,
// always-true comparison instead of an int32 overflow.
const runeMax = 0x10FFFF

func clampRune(v uint32) int64 {
	if v > runeMax {
		return runeMax
	}
	return int64(v)
}

// writeBranch emits spec.md §4.6's Branch rule: peek one scalar value,
// switch over range groups (one arm per distinct target, covering every
// range that dispatches there), default/peek-failure falls to miss or
// raises NotMatch.
func writeBranch(buf *bytes.Buffer, n graph.NodeView) {
	buf.WriteString("\tb, ok := c.Peek()\n")
	buf.WriteString("\tif !ok {\n")
	writeMissOrError(buf, "\t\t", n.BranchHasMiss, n.BranchMiss)
	buf.WriteString("\t}\n")

	order, groups := groupRangesByTarget(n.BranchRanges)
	buf.WriteString("\tswitch {\n")
	for _, target := range order {
		buf.WriteString("\tcase ")
		for i, r := range groups[target] {
			if i > 0 {
				buf.WriteString(" || ")
			}
			writeRangeCond(buf, r)
		}
		buf.WriteString(":\n")
		buf.WriteString("\t\tif err := c.Bump(1); err != nil {\n\t\t\treturn err\n\t\t}\n")
		fmt.Fprintf(buf, "\t\treturn %s(c)\n", routineName(target))
	}
	buf.WriteString("\tdefault:\n")
	writeMissOrError(buf, "\t\t", n.BranchHasMiss, n.BranchMiss)
	buf.WriteString("\t}\n")
}

func writeRangeCond(buf *bytes.Buffer, r graph.RangeView) {
	lo, hi := clampRune(r.Lo), clampRune(r.Hi)
	if lo == hi {
		fmt.Fprintf(buf, "b == %d", lo)
		return
	}
	fmt.Fprintf(buf, "(b >= %d && b <= %d)", lo, hi)
}

func writeMissOrError(buf *bytes.Buffer, indent string, hasMiss bool, miss graph.NodeID) {
	if hasMiss {
		fmt.Fprintf(buf, "%sreturn %s(c)\n", indent, routineName(miss))
		return
	}
	fmt.Fprintf(buf, "%sreturn c.Error()\n", indent)
}

// groupRangesByTarget partitions ranges by their Next target, preserving
// first-appearance order so emission is deterministic across runs (the
// graph's own range table is already sorted and pairwise disjoint —
// spec.md §8 invariant 3 — grouping here only merges equal-target keys,
// it never reorders within a group).
func groupRangesByTarget(ranges []graph.RangeView) ([]graph.NodeID, map[graph.NodeID][]graph.RangeView) {
	var order []graph.NodeID
	groups := make(map[graph.NodeID][]graph.RangeView)
	for _, r := range ranges {
		if _, ok := groups[r.Next]; !ok {
			order = append(order, r.Next)
		}
		groups[r.Next] = append(groups[r.Next], r)
	}
	return order, groups
}
