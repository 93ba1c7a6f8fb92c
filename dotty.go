package arithbuf

import (
	"fmt"
	"io"
)

// Buffer2Dot outputs the internal tree structure of a Buffer in Graphviz DOT
// format (for debugging purposes). Node labels show the arena index and the
// monomial; red tree nodes are drawn filled red.
func Buffer2Dot(b *Buffer, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	b.each(b.root, func(i uint32) bool {
		m := &b.mono[i]
		label := fmt.Sprintf("#%d\\n%s·%s", i, m.coeff.RatString(), m.prod.String())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", i, label, nodeDotStyles(b.isred[i]))
		for s := 0; s < 2; s++ {
			if c := b.child[i][s]; c != nullNode {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i, c)
			} else {
				nilid := int(i)*2 + s + 10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i, nilid)
			}
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isred bool) string {
	s := ",style=filled,shape=box"
	if isred {
		s += ",fillcolor=\"#E47272\""
	} else {
		s += ",color=black,fillcolor=\"#CCCCCC\""
	}
	return s
}
