package codegen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/coregx/lexgen/graph"
)

// writeFastPath emits the package-level *prefilter.LiteralSet and the
// tryLiteralFastPath function the entry point tries first. Only the
// terminal indices named in opts.FastPath.Literals participate; every
// other terminal is reached exclusively through the jump-routine graph.
func writeFastPath(buf *bytes.Buffer, opts Options, terminals []graph.Terminal) error {
	indices := make([]int, 0, len(opts.FastPath.Literals))
	for idx := range opts.FastPath.Literals {
		if idx < 0 || idx >= len(terminals) {
			return fmt.Errorf("codegen: fast path terminal index %d out of range", idx)
		}
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	buf.WriteString("var literalFastPath = mustLiteralFastPath()\n\n")
	buf.WriteString("func mustLiteralFastPath() *prefilter.LiteralSet {\n")
	buf.WriteString("\tls, err := prefilter.NewLiteralSet(map[int][]byte{\n")
	for _, idx := range indices {
		fmt.Fprintf(buf, "\t\t%d: %s,\n", idx, byteSliceLiteral(opts.FastPath.Literals[idx]))
	}
	buf.WriteString("\t})\n")
	buf.WriteString("\tif err != nil {\n\t\tpanic(\"lexgen: literal fast path: \" + err.Error())\n\t}\n")
	buf.WriteString("\treturn ls\n}\n\n")

	buf.WriteString("// tryLiteralFastPath attempts the accelerated literal dispatch ahead of\n")
	buf.WriteString("// the jump-routine graph. It only commits (returns matched=true) for a\n")
	buf.WriteString("// literal anchored at the cursor's current position; any other outcome\n")
	buf.WriteString("// falls through to the graph, which remains the sole source of truth.\n")
	buf.WriteString("func tryLiteralFastPath(c *runtime.Cursor) (matched bool, err error) {\n")
	buf.WriteString("\thaystack := prefilter.ScalarBytes(c.Remaining())\n")
	buf.WriteString("\tstart, end := literalFastPath.FindMatch(haystack, 0)\n")
	buf.WriteString("\tif start != 0 {\n\t\treturn false, nil\n\t}\n")
	buf.WriteString("\tterminal, ok := literalFastPath.TerminalFor(haystack, start, end)\n")
	buf.WriteString("\tif !ok {\n\t\treturn false, nil\n\t}\n")
	buf.WriteString("\tswitch terminal {\n")
	for _, idx := range indices {
		fmt.Fprintf(buf, "\tcase %d:\n", idx)
		buf.WriteString("\t\tif err := c.Bump(end - start); err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		writeLeafDispatch(buf, opts, terminals[idx], "\t\t", "false, err", "true, nil")
	}
	buf.WriteString("\tdefault:\n\t\treturn false, nil\n\t}\n}\n\n")
	return nil
}

func byteSliceLiteral(b []byte) string {
	var sb bytes.Buffer
	sb.WriteString("[]byte(")
	fmt.Fprintf(&sb, "%q", string(b))
	sb.WriteByte(')')
	return sb.String()
}
