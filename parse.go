// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

import "math"

// A Parser consumes JSON text and produces a Value tree. The zero Parser is
// ready for use. Parsing is permissive: malformed input degrades to partial
// trees and Null tokens rather than aborting, and the error reports what was
// wrong. The strictness lives in the Value API instead.
type Parser struct {
	meter Meter
}

// NewParser constructs a Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// SetMeter attaches a progress meter polled after each consumed token, or
// detaches it if m == nil.
func (p *Parser) SetMeter(m Meter) { p.meter = m }

// Parse parses input with a default Parser. It is shorthand for
// NewParser().Parse(input).
func Parse(input string) (Value, error) { return new(Parser).Parse(input) }

// Parse parses input into a Value tree.
//
// Input whose root is braced becomes a Mapping, bracketed input becomes a
// Sequence, and anything else is read as a single primitive literal. If the
// input ends before every open container is closed, Parse returns the
// deepest container still open together with a *ParseError wrapping
// ErrMalformed; the partial tree is usable. Empty input returns Null and a
// *ParseError wrapping ErrEmptyInput.
func (p *Parser) Parse(input string) (Value, error) {
	lo, hi := 0, len(input)
	for lo < hi && isSpace(input[lo]) {
		lo++
	}
	for hi > lo && isSpace(input[hi-1]) {
		hi--
	}
	if lo == hi {
		return Value{}, &ParseError{Offset: lo, Err: ErrEmptyInput}
	}

	first, last := input[lo], input[hi-1]
	switch {
	case first == '{' && last == '}':
		return p.parseContainer(input[:hi], lo)
	case first == '[' && last == ']':
		return p.parseContainer(input[:hi], lo)
	case first != '{' && first != '[' && last != '}' && last != ']':
		v, _ := parseLiteral(input[:hi], lo, 0)
		return v, nil
	default:
		return Value{}, &ParseError{Offset: lo, Err: ErrMalformed}
	}
}

// parseContainer scans a braced or bracketed document beginning at pos.
// The container stack is explicit, so document depth is limited by memory
// rather than by the goroutine stack.
func (p *Parser) parseContainer(input string, pos int) (Value, error) {
	total := len(input)

	var root Value
	if input[pos] == '{' {
		root = OfKind(MapKind)
	} else {
		root = OfKind(SeqKind)
	}
	pos++

	// Entries alias the containers already linked into the tree, so storing
	// through the top of the stack extends the tree in place.
	stk := []Value{root}

	for pos < total {
		c := input[pos]
		if isSpace(c) || c == ',' {
			pos++
			continue
		}
		if c == '}' || c == ']' {
			pos++
			done := stk[len(stk)-1]
			stk = stk[:len(stk)-1]
			if len(stk) == 0 {
				p.tick(pos, total)
				return done, nil
			}
			continue
		}

		top := &stk[len(stk)-1]
		if top.kind == MapKind {
			m := top.comp.(*Mapping)

			// The span up to the next ':' is the key. No colon before the
			// end of input means the document cannot continue.
			next := pos + 1
			for next < total && input[next] != ':' {
				next++
			}
			if next == total {
				pos = total
				break
			}
			key := trimKey(input[pos:next])
			pos = next + 1
			for pos < total && isSpace(input[pos]) {
				pos++
			}
			if pos == total {
				break
			}

			switch input[pos] {
			case '{':
				sub := OfKind(MapKind)
				m.Upsert(key, sub)
				stk = append(stk, sub)
				pos++
			case '[':
				sub := OfKind(SeqKind)
				m.Upsert(key, sub)
				stk = append(stk, sub)
				pos++
			case '}', ']', ',':
				// A delimiter directly after the colon leaves the key with
				// no value. Record Null and let the loop handle the
				// delimiter.
				m.Upsert(key, Value{})
			default:
				v, end := parseLiteral(input, pos, '}')
				m.Upsert(key, v)
				pos = end
			}
		} else {
			s := top.comp.(*Sequence)
			switch c {
			case '{':
				sub := OfKind(MapKind)
				s.Append(sub)
				stk = append(stk, sub)
				pos++
			case '[':
				sub := OfKind(SeqKind)
				s.Append(sub)
				stk = append(stk, sub)
				pos++
			default:
				v, end := parseLiteral(input, pos, ']')
				s.Append(v)
				pos = end
			}
		}
		p.tick(pos, total)
	}

	// The input ran out with containers still open. Hand back the deepest
	// one so the caller can inspect what was parsed.
	p.tick(pos, total)
	return stk[len(stk)-1], &ParseError{Offset: pos, Err: ErrMalformed}
}

func (p *Parser) tick(cur, total int) {
	if p.meter != nil {
		p.meter.Update(cur, total)
	}
}

// isSpace reports whether c is insignificant between tokens.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == 0
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// trimKey reduces a raw key span to the key string: surrounding whitespace
// and one layer of double quotes are removed, and any escape sequences in a
// quoted key are decoded.
func trimKey(span string) string {
	lo, hi := 0, len(span)
	for lo < hi && isSpace(span[lo]) {
		lo++
	}
	for hi > lo && isSpace(span[hi-1]) {
		hi--
	}
	if hi-lo >= 2 && span[lo] == '"' && span[hi-1] == '"' {
		if key, err := Unquote(span[lo:hi]); err == nil {
			return key
		}
	}
	return span[lo:hi]
}

// atDelim reports whether pos is a valid stopping point for a literal: end
// of input, insignificant space, a comma, or the enclosing container's
// closing delimiter.
func atDelim(input string, pos int, fin byte) bool {
	if pos >= len(input) {
		return true
	}
	c := input[pos]
	return isSpace(c) || c == ',' || c == fin
}

// skipToDelim advances past a token that could not be read, stopping at the
// next comma or closing delimiter so the scan can resume.
func skipToDelim(input string, pos int, fin byte) int {
	for pos < len(input) && input[pos] != ',' && input[pos] != fin {
		pos++
	}
	return pos
}

// parseLiteral reads one primitive token of input starting at pos, with fin
// as the closing delimiter of the enclosing container (0 at top level). It
// returns the token's value and the position after it.
//
// Tokens are, in order of precedence, a double-quoted string with standard
// JSON escapes, the keywords true, false, and null, and a number. Numbers
// accumulate into an Int32, widen to Int64 at 9 digits and to Float64 at 16;
// a decimal point or exponent forces Float64. A token not followed by a
// delimiter, or otherwise unreadable, degrades to Null with the cursor moved
// past the next delimiter.
func parseLiteral(input string, pos int, fin byte) (Value, int) {
	total := len(input)

	if input[pos] == '"' {
		end := pos + 1
		esc := false
		for end < total {
			c := input[end]
			if c == '"' && !esc {
				break
			}
			esc = c == '\\' && !esc
			end++
		}
		if end < total {
			if s, err := Unquote(input[pos : end+1]); err == nil {
				return String(s), end + 1
			}
		}
		return Value{}, skipToDelim(input, end, fin)
	}

	for _, kw := range [...]struct {
		text string
		val  Value
	}{
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"null", Value{}},
	} {
		n := len(kw.text)
		if pos+n <= total && input[pos:pos+n] == kw.text && atDelim(input, pos+n, fin) {
			return kw.val, pos + n
		}
	}

	c := input[pos]
	if c == '+' || c == '-' || c == '.' || isDigit(c) {
		return parseNumber(input, pos, fin)
	}
	return Value{}, skipToDelim(input, pos, fin)
}

// Digit-count thresholds at which the integer accumulator widens. Nine
// decimal digits can exceed int32, sixteen can exceed exact int64 reading
// without risk of misparsing shorter inputs.
const (
	int32Digits = 9
	int64Digits = 16
)

func parseNumber(input string, pos int, fin byte) (Value, int) {
	total := len(input)

	neg := false
	switch input[pos] {
	case '-':
		neg = true
		pos++
	case '+':
		pos++
	}

	kind := Int32Kind
	var i32 int32
	var i64 int64
	var dec float64
	digits := 0   // integer digits consumed, drives widening
	fraction := 0 // digits after the decimal point
	point := false

	for pos < total {
		c := input[pos]
		if c == '.' {
			if point {
				// A second decimal point makes the token unreadable.
				return Value{}, skipToDelim(input, pos, fin)
			}
			point = true
			switch kind {
			case Int32Kind:
				dec = float64(i32)
			case Int64Kind:
				dec = float64(i64)
			}
			kind = Float64Kind
			pos++
			continue
		}
		if !isDigit(c) {
			break
		}
		if kind == Int32Kind && digits == int32Digits {
			kind = Int64Kind
			i64 = int64(i32)
		}
		if kind == Int64Kind && digits == int64Digits {
			kind = Float64Kind
			dec = float64(i64)
		}
		d := c - '0'
		switch kind {
		case Int32Kind:
			i32 = i32*10 + int32(d)
		case Int64Kind:
			i64 = i64*10 + int64(d)
		default:
			dec = dec*10 + float64(d)
		}
		if point {
			fraction++
		}
		digits++
		pos++
	}
	if kind == Float64Kind && fraction > 0 {
		dec *= math.Pow(10, float64(-fraction))
	}

	if pos < total && (input[pos] == 'e' || input[pos] == 'E') {
		switch kind {
		case Int32Kind:
			dec = float64(i32)
		case Int64Kind:
			dec = float64(i64)
		}
		kind = Float64Kind
		pos++
		expNeg := false
		if pos < total && (input[pos] == '+' || input[pos] == '-') {
			expNeg = input[pos] == '-'
			pos++
		}
		exp := 0
		for pos < total && isDigit(input[pos]) {
			exp = exp*10 + int(input[pos]-'0')
			pos++
		}
		if expNeg {
			exp = -exp
		}
		dec *= math.Pow(10, float64(exp))
	}

	if !atDelim(input, pos, fin) {
		return Value{}, skipToDelim(input, pos, fin)
	}
	switch kind {
	case Int32Kind:
		if neg {
			i32 = -i32
		}
		return Int32(i32), pos
	case Int64Kind:
		if neg {
			i64 = -i64
		}
		return Int64(i64), pos
	default:
		if neg {
			dec = -dec
		}
		return Float64(dec), pos
	}
}
