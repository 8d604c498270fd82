package transcode

import (
	"bufio"
	"io"
	"strings"

	"github.com/arloliu/etf/term"
)

const treeIndent = "  "

// WriteTree writes an indented rendering of v to w, one element per line.
//
// Scalars and empty containers use their String form. Sequences and
// Mappings open on the current line and list their elements one level
// deeper:
//
//	#{
//	  <<"error">> => nil
//	  items => [
//	    1
//	    2
//	  ]
//	}
func WriteTree(w io.Writer, v term.Value) error {
	bw := bufio.NewWriter(w)
	writeTree(bw, v, 0)
	bw.WriteByte('\n')

	return bw.Flush()
}

// Tree returns the WriteTree rendering of v without the trailing newline.
func Tree(v term.Value) string {
	var sb strings.Builder
	_ = WriteTree(&sb, v)

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeTree(w *bufio.Writer, v term.Value, depth int) {
	switch x := v.(type) {
	case term.Sequence:
		if len(x) == 0 {
			w.WriteString("[]")
			return
		}
		w.WriteString("[\n")
		for _, item := range x {
			writeIndent(w, depth+1)
			writeTree(w, item, depth+1)
			w.WriteByte('\n')
		}
		writeIndent(w, depth)
		w.WriteByte(']')
	case *term.Mapping:
		if x.Len() == 0 {
			w.WriteString("#{}")
			return
		}
		w.WriteString("#{\n")
		for k, val := range x.All() {
			writeIndent(w, depth+1)
			writeTree(w, k, depth+1)
			w.WriteString(" => ")
			writeTree(w, val, depth+1)
			w.WriteByte('\n')
		}
		writeIndent(w, depth)
		w.WriteByte('}')
	case nil:
		w.WriteString("<nil>")
	default:
		w.WriteString(x.String())
	}
}

func writeIndent(w *bufio.Writer, depth int) {
	for range depth {
		w.WriteString(treeIndent)
	}
}
