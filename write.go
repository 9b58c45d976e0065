// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

import (
	"io"
	"strings"
)

// Indent strings for the first 16 nesting depths, precomputed. Deeper levels
// reuse the last entry.
var indents = func() (tab [16]string) {
	for i := range tab {
		tab[i] = strings.Repeat("  ", i)
	}
	return
}()

func indent(depth int) string {
	if depth < len(indents) {
		return indents[depth]
	}
	return indents[len(indents)-1]
}

// An errWriter accumulates the byte count of a multi-write rendering and
// latches the first write error, turning later writes into no-ops.
type errWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err == nil {
		n, err := io.WriteString(e.w, s)
		e.n += int64(n)
		e.err = err
	}
}

// WriteTo renders v to w as JSON with two spaces of indentation per nesting
// level, and reports the number of bytes written. The walk is the same
// closing-delimiter reconciliation as JSON, with sequences and fixed
// sequences both rendered as arrays and mapping keys in sorted order.
// WriteTo satisfies io.WriterTo.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	ew := &errWriter{w: w}
	stk := []frame{{node: &v}}
	var closers []byte
	for len(stk) > 0 && ew.err == nil {
		fr := stk[len(stk)-1]
		stk = stk[:len(stk)-1]
		ew.writeString(fr.prefix)
		n := fr.node

		switch {
		case !n.kind.isComposite() || n.comp.Len() == 0:
			if n.kind.isComposite() {
				ew.writeString(emptyMarker(n.kind, false))
			} else {
				ew.writeString(n.primText(false))
			}
			lvl := fr.depth
			if len(stk) == 0 {
				for len(closers) > 0 {
					c := closers[len(closers)-1]
					closers = closers[:len(closers)-1]
					lvl--
					if c == '}' {
						ew.writeString("\n" + indent(lvl))
					}
					ew.writeString(string(c))
				}
				continue
			}
			down := stk[len(stk)-1].depth
			if lvl == down {
				ew.writeString(", ")
				if fr.prefix != "" {
					ew.writeString("\n" + indent(lvl))
				}
			}
			for lvl > down && len(closers) > 0 {
				c := closers[len(closers)-1]
				closers = closers[:len(closers)-1]
				lvl--
				if c == '}' {
					ew.writeString("\n" + indent(lvl))
				}
				ew.writeString(string(c))
				if lvl == down {
					ew.writeString(",\n" + indent(lvl))
				}
			}

		case n.kind == MapKind:
			ew.writeString("{\n" + indent(fr.depth+1))
			closers = append(closers, '}')
			m := n.comp.(*Mapping)
			keys := sortedKeys(m)
			for i := len(keys) - 1; i >= 0; i-- {
				stk = append(stk, frame{
					node:   m.m[keys[i]],
					prefix: Quote(keys[i]) + ": ",
					depth:  fr.depth + 1,
				})
			}

		default: // Sequence or FixedSequence
			ew.writeString("[")
			closers = append(closers, ']')
			elems := n.elems()
			for i := len(elems) - 1; i >= 0; i-- {
				stk = append(stk, frame{node: &elems[i], depth: fr.depth + 1})
			}
		}
	}
	return ew.n, ew.err
}
