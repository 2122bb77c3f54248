package codegen

import (
	"bytes"
	"fmt"

	"github.com/coregx/lexgen/graph"
)

// writeLeafDispatch emits the statements that record (or skip) a matched
// terminal, shared between a Leaf node's routine and the literal fast
// path's per-terminal case (spec.md §4.6's Leaf emission rule: "skip /
// record-token / record-fill-callback / record-create-callback by
// TerminalKind"). errReturn and okReturn are the literal text following
// "return " for the failure and success paths respectively, letting the
// same dispatch serve both `func(...) error` (errReturn "err", okReturn
// "nil") and `func(...) (bool, error)` (errReturn "false, err", okReturn
// "true, nil") callers.
func writeLeafDispatch(buf *bytes.Buffer, opts Options, t graph.Terminal, indent, errReturn, okReturn string) {
	switch t.Kind {
	case graph.Skip:
		fmt.Fprintf(buf, "%sif err := c.Skip(); err != nil {\n%s\treturn %s\n%s}\n", indent, indent, errReturn, indent)
		fmt.Fprintf(buf, "%sreturn %s\n", indent, okReturn)

	case graph.FillCallback:
		fmt.Fprintf(buf, "%sif err := c.SetToken(%s{Kind: %s, Value: %s(c.Slice())}); err != nil {\n%s\treturn %s\n%s}\n",
			indent, opts.TokenTypeName, tokenConstName(opts, t), t.Callback, indent, errReturn, indent)
		fmt.Fprintf(buf, "%sreturn %s\n", indent, okReturn)

	case graph.CreateCallback:
		fmt.Fprintf(buf, "%sif tok, ok := %s(c.Slice()); ok {\n", indent, t.Callback)
		fmt.Fprintf(buf, "%s\tif err := c.SetToken(tok); err != nil {\n%s\t\treturn %s\n%s\t}\n", indent, indent, errReturn, indent)
		fmt.Fprintf(buf, "%s\treturn %s\n", indent, okReturn)
		fmt.Fprintf(buf, "%s}\n", indent)
		fmt.Fprintf(buf, "%sif err := c.Skip(); err != nil {\n%s\treturn %s\n%s}\n", indent, indent, errReturn, indent)
		fmt.Fprintf(buf, "%sreturn %s\n", indent, okReturn)

	default: // graph.Standalone
		fmt.Fprintf(buf, "%sif err := c.SetToken(%s{Kind: %s}); err != nil {\n%s\treturn %s\n%s}\n",
			indent, opts.TokenTypeName, tokenConstName(opts, t), indent, errReturn, indent)
		fmt.Fprintf(buf, "%sreturn %s\n", indent, okReturn)
	}
}
