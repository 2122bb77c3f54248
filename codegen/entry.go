package codegen

import (
	"bytes"
	"fmt"

	"github.com/coregx/lexgen/graph"
)

// writeEntryPoint emits the exported RootFunc passed to runtime.NewLexer.
// When a literal fast path is configured it is tried first; any terminal
// it resolves is recorded and consumed without a graph walk, otherwise
// control falls through to the root node's jump routine.
func writeEntryPoint(buf *bytes.Buffer, opts Options, rootID graph.NodeID) {
	fmt.Fprintf(buf, "// %s is the generated token set's entry point (runtime.RootFunc).\n", opts.EntryName)
	fmt.Fprintf(buf, "func %s(c *runtime.Cursor) error {\n", opts.EntryName)
	if opts.FastPath != nil {
		buf.WriteString("\tif matched, err := tryLiteralFastPath(c); err != nil {\n")
		buf.WriteString("\t\treturn err\n")
		buf.WriteString("\t} else if matched {\n")
		buf.WriteString("\t\treturn nil\n")
		buf.WriteString("\t}\n")
	}
	fmt.Fprintf(buf, "\treturn %s(c)\n}\n\n", routineName(rootID))
}
