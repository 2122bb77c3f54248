package codegen

import (
	"bytes"
	"fmt"
)

const runtimeImportPath = "github.com/coregx/lexgen/runtime"
const prefilterImportPath = "github.com/coregx/lexgen/prefilter"

// writeHeader emits the package clause and the fixed import block. The
// generated file always needs runtime.Cursor; it additionally needs
// prefilter.LiteralSet only when a literal fast path was requested.
func writeHeader(buf *bytes.Buffer, opts Options) {
	fmt.Fprintf(buf, "// Code generated by lexgen. DO NOT EDIT.\n\npackage %s\n\nimport (\n", opts.Package)
	fmt.Fprintf(buf, "\t%q\n", runtimeImportPath)
	if opts.FastPath != nil {
		fmt.Fprintf(buf, "\t%q\n", prefilterImportPath)
	}
	buf.WriteString(")\n\n")
}
