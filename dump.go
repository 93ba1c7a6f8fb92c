package arithbuf

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	redNode   = color.New(color.FgRed)
	blackNode = color.New(color.FgWhite, color.Bold)
)

// Dump writes a sideways rendering of the tree to w, one node per line,
// right subtree first. Red nodes are colored when w is a terminal. For
// debugging purposes.
func (b *Buffer) Dump(w io.Writer) {
	if b.root == nullNode {
		fmt.Fprintln(w, "(zero)")
		return
	}
	b.dumpNode(w, b.root, 0)
}

func (b *Buffer) dumpNode(w io.Writer, i uint32, depth int) {
	if i == nullNode {
		return
	}
	b.dumpNode(w, b.child[i][1], depth+1)
	m := &b.mono[i]
	c := blackNode
	if b.isred[i] {
		c = redNode
	}
	for d := 0; d < depth; d++ {
		io.WriteString(w, "    ")
	}
	c.Fprintf(w, "%s·%s\n", m.coeff.RatString(), m.prod.String())
	b.dumpNode(w, b.child[i][0], depth+1)
}
