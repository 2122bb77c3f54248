package codegen

import (
	"bytes"
	"fmt"

	"github.com/coregx/lexgen/graph"
)

// writeTokenType emits the TokenKind enum (one constant per terminal,
// regardless of TerminalKind, so FillCallback/CreateCallback callbacks can
// reference it too) and the Token struct every SetToken call carries.
func writeTokenType(buf *bytes.Buffer, opts Options, terminals []graph.Terminal) {
	fmt.Fprintf(buf, "// %sKind identifies which terminal a %s was recorded for.\n", opts.TokenTypeName, opts.TokenTypeName)
	fmt.Fprintf(buf, "type %sKind int\n\n", opts.TokenTypeName)
	buf.WriteString("const (\n")
	for i, t := range terminals {
		if i == 0 {
			fmt.Fprintf(buf, "\t%s%s %sKind = iota\n", opts.TokenTypeName, exportedIdent(t.Name), opts.TokenTypeName)
		} else {
			fmt.Fprintf(buf, "\t%s%s\n", opts.TokenTypeName, exportedIdent(t.Name))
		}
	}
	buf.WriteString(")\n\n")

	fmt.Fprintf(buf, "// %s is the value runtime.Cursor.SetToken receives for a matched terminal.\n", opts.TokenTypeName)
	fmt.Fprintf(buf, "type %s struct {\n\tKind  %sKind\n\tValue any\n}\n\n", opts.TokenTypeName, opts.TokenTypeName)
}

func tokenConstName(opts Options, t graph.Terminal) string {
	return opts.TokenTypeName + exportedIdent(t.Name)
}
