package cypher

import (
	"fmt"
	"io"
	"strings"
)

// Fdump writes the structure of t to w, one node per line.
func Fdump(w io.Writer, t *Tree) error {
	ew := &stickyErrWriter{w: w}
	var dump func(id NodeID, depth int)
	dump = func(id NodeID, depth int) {
		indent := strings.Repeat(". ", depth)
		n := t.Node(id)
		if n.Kind == Terminal {
			fmt.Fprintf(ew, "%s%v\n", indent, t.Token(id))
			return
		}
		fmt.Fprintf(ew, "%s%v\n", indent, n.Kind)
		for _, c := range n.Children {
			dump(c, depth+1)
		}
	}
	dump(t.Root, 0)
	return ew.err
}

type stickyErrWriter struct {
	w   io.Writer
	err error
}

func (w *stickyErrWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}
