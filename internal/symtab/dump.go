package symtab

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented tree rendering of n and its children to w,
// one node per line. It is a debugging aid, wired to the CLI's
// dump-symbols build toggle; it never runs during ordinary
// compilation.
func Dump(w io.Writer, n *Node, depth int) {
	if n == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s %q n=%d nint=%d\n", indent, n.Kind, n.Key, n.N, n.NInt)

	switch n.Kind {
	case Function:
		for i := 0; i < n.NParam; i++ {
			Dump(w, n.Args[i], depth+1)
		}
	case Vector:
		for i := 0; i < n.NElem; i++ {
			Dump(w, n.Elem[i], depth+1)
		}
	}
}
