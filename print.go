// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// JSON renders v as JSON text. Object members are separated by newlines but
// no indentation is added; see WriteTo for an indented rendering. Sequences
// and fixed sequences both render as arrays. Mapping keys are emitted in
// sorted order so that equal trees render identically.
func (v Value) JSON() string { return v.text(false) }

// Visualize renders v in a readable debugging dialect that is not valid
// JSON: fixed sequences render in parentheses, characters in single quotes,
// integers with digits grouped by underscores, floating-point values in
// scientific notation, and the keywords spelled True, False, and NullPtr.
// Empty containers render as (Null), [Null], and {Null}.
func (v Value) Visualize() string { return v.text(true) }

// A frame is one pending node of an iterative tree walk: the prefix (such as
// a quoted key) is emitted before the node itself.
type frame struct {
	node   *Value
	prefix string
	depth  int
}

// text walks v without recursion. Nodes wait on a frame stack; each open
// container leaves its closing delimiter on a second stack, reconciled
// against the depth of the next pending frame after every leaf.
func (v Value) text(viz bool) string {
	var sb strings.Builder
	stk := []frame{{node: &v}}
	var closers []byte
	for len(stk) > 0 {
		fr := stk[len(stk)-1]
		stk = stk[:len(stk)-1]
		sb.WriteString(fr.prefix)
		n := fr.node

		switch {
		case !n.kind.isComposite() || n.comp.Len() == 0:
			if n.kind.isComposite() {
				sb.WriteString(emptyMarker(n.kind, viz))
			} else {
				sb.WriteString(n.primText(viz))
			}
			if len(stk) == 0 {
				for len(closers) > 0 {
					c := closers[len(closers)-1]
					closers = closers[:len(closers)-1]
					if c == '}' {
						sb.WriteByte('\n')
					}
					sb.WriteByte(c)
				}
				continue
			}
			lvl, down := fr.depth, stk[len(stk)-1].depth
			if lvl == down {
				sb.WriteString(", ")
				if fr.prefix != "" {
					// The next member of this object starts on its own line.
					sb.WriteByte('\n')
				}
			}
			for lvl > down && len(closers) > 0 {
				c := closers[len(closers)-1]
				closers = closers[:len(closers)-1]
				if c == '}' {
					sb.WriteByte('\n')
				}
				sb.WriteByte(c)
				lvl--
				if lvl == down {
					sb.WriteString(",\n")
				}
			}

		case n.kind == MapKind:
			sb.WriteString("{\n")
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
			open, close := byte('['), byte(']')
			if viz && n.kind == FixedKind {
				open, close = '(', ')'
			}
			sb.WriteByte(open)
			closers = append(closers, close)
			elems := n.elems()
			// Reversed, so the first element is popped first.
			for i := len(elems) - 1; i >= 0; i-- {
				stk = append(stk, frame{node: &elems[i], depth: fr.depth + 1})
			}
		}
	}
	return sb.String()
}

// emptyMarker returns the rendering of an empty container of kind k.
func emptyMarker(k Kind, viz bool) string {
	if viz {
		switch k {
		case FixedKind:
			return "(Null)"
		case SeqKind:
			return "[Null]"
		default:
			return "{Null}"
		}
	}
	if k == MapKind {
		return "{}"
	}
	return "[]"
}

// primText renders a scalar payload. Canonical mode writes valid JSON
// tokens, with characters as their numeric codes and floating-point values
// in the shortest form that reads back exactly. Visualize mode trades
// validity for readability.
func (v Value) primText(viz bool) string {
	switch v.kind {
	case NullKind:
		if viz {
			return "NullPtr"
		}
		return "null"
	case CharKind:
		if viz {
			return "'" + string(byte(v.num)) + "'"
		}
		return strconv.Itoa(int(byte(v.num)))
	case Int32Kind, Int64Kind:
		z := int64(v.num)
		if v.kind == Int32Kind {
			z = int64(int32(z))
		}
		if viz {
			return groupDigits(z)
		}
		return strconv.FormatInt(z, 10)
	case Float32Kind:
		f := math.Float32frombits(uint32(v.num))
		if viz {
			return fmt.Sprintf("%.4e", f)
		}
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case Float64Kind:
		f := math.Float64frombits(v.num)
		if viz {
			return fmt.Sprintf("%.8e", f)
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case BigFloatKind:
		if viz {
			return fmt.Sprintf("%.12e", v.big)
		}
		return v.big.Text('g', -1)
	case BoolKind:
		if viz {
			if v.num != 0 {
				return "True"
			}
			return "False"
		}
		if v.num != 0 {
			return "true"
		}
		return "false"
	case StringKind:
		return Quote(v.str)
	}
	return ""
}

// groupDigits formats z in decimal with an underscore between each group of
// three digits, counted from the right.
func groupDigits(z int64) string {
	s := strconv.FormatInt(z, 10)
	start := 0
	if s[0] == '-' {
		start = 1
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if i > start && (len(s)-i)%3 == 0 {
			sb.WriteByte('_')
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys(m *Mapping) []string {
	keys := m.Keys()
	sort.Strings(keys)
	return keys
}
