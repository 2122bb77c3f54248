package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/lexgen/graph"
)

// writeSeq emits spec.md §4.6's Seq rule, one scalar value at a time
// rather than a single PeekN block compare: a byte-by-byte loop is the
// only way to tell a first-position mismatch (SeqMiss.First only fires
// there) from a later one (SeqMiss.Anytime fires at any position), and
// PeekN's all-or-nothing length check can't recover that distinction once
// it reports "not enough bytes remain".
func writeSeq(buf *bytes.Buffer, n graph.NodeView) {
	fmt.Fprintf(buf, "\trun := []rune{%s}\n", runLiteral(n.SeqRun))
	buf.WriteString("\tfor i, want := range run {\n")
	buf.WriteString("\t\tr, ok := c.Peek()\n")
	buf.WriteString("\t\tif !ok || r != want {\n")
	writeSeqMiss(buf, n.SeqMiss)
	buf.WriteString("\t\t}\n")
	buf.WriteString("\t\tif err := c.Bump(1); err != nil {\n\t\t\treturn err\n\t\t}\n")
	buf.WriteString("\t}\n")
	fmt.Fprintf(buf, "\treturn %s(c)\n", routineName(n.SeqThen))
}

func writeSeqMiss(buf *bytes.Buffer, m graph.SeqMissView) {
	buf.WriteString("\t\t\tif i == 0 {\n")
	if m.Kind == graph.MissNone {
		buf.WriteString("\t\t\t\treturn c.Error()\n")
	} else {
		fmt.Fprintf(buf, "\t\t\t\treturn %s(c)\n", routineName(m.Target))
	}
	buf.WriteString("\t\t\t}\n")
	if m.Kind == graph.MissAnytime {
		fmt.Fprintf(buf, "\t\t\treturn %s(c)\n", routineName(m.Target))
	} else {
		buf.WriteString("\t\t\treturn c.Error()\n")
	}
}

func runLiteral(run []uint32) string {
	parts := make([]string, len(run))
	for i, v := range run {
		parts[i] = strconv.FormatInt(clampRune(v), 10)
	}
	return strings.Join(parts, ", ")
}
