package codegen

import (
	"bytes"
	"fmt"

	"github.com/coregx/lexgen/graph"
)

// writeNode emits one jumpTo_<id> routine, dispatching on NodeKind the
// way spec.md §4.6 names the three emission rules.
func writeNode(buf *bytes.Buffer, opts Options, n graph.NodeView, terminals []graph.Terminal) error {
	fmt.Fprintf(buf, "func %s(c *runtime.Cursor) error {\n", routineName(n.ID))
	switch n.Kind {
	case graph.Branch:
		writeBranch(buf, n)
	case graph.Seq:
		writeSeq(buf, n)
	case graph.Leaf:
		if n.LeafTerminal < 0 || n.LeafTerminal >= len(terminals) {
			return fmt.Errorf("leaf terminal index %d out of range", n.LeafTerminal)
		}
		writeLeafDispatch(buf, opts, terminals[n.LeafTerminal], "\t", "err", "nil")
	default:
		return fmt.Errorf("unhandled node kind %v", n.Kind)
	}
	buf.WriteString("}\n\n")
	return nil
}
