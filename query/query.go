// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package query implements structural queries over joson values.
//
// A query describes a substructure of a value tree, such as a mapping
// member, sequence element, or a path through the tree. Evaluating a query
// against a concrete value traverses the structure described by the query
// and returns the resulting value.
//
// The simplest query is for a "path", a sequence of mapping keys and/or
// sequence indices that describes a path from the root of a value. For
// example, given the value parsed from:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the value true.
//
// Composite results alias the input tree rather than copying it.
package query

import (
	"errors"
	"fmt"
	"sort"

	"github.com/creachadair/joson"
)

// Eval evaluates the given query beginning from root, returning the
// resulting value or an error.
func Eval(root joson.Value, q Query) (joson.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a value.
type Query interface {
	eval(joson.Value) (joson.Value, error)
}

// Path traverses a sequence of nested mapping keys or sequence indices from
// the root. If no keys are specified, the root is returned. Each key must be
// a string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return mapKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

type mapKey string

func (o mapKey) eval(v joson.Value) (joson.Value, error) {
	m, err := v.Mapping()
	if err != nil {
		return joson.Null, fmt.Errorf("got %v, want mapping", v.Kind())
	}
	w := m.Find(string(o))
	if w == nil {
		return joson.Null, fmt.Errorf("key %q not found", o)
	}
	return *w, nil
}

type nthQuery int

func (nq nthQuery) eval(v joson.Value) (joson.Value, error) {
	elts, ok := seqElems(v)
	if !ok {
		return joson.Null, fmt.Errorf("got %v, want sequence", v.Kind())
	}
	idx := int(nq)
	if idx < 0 {
		idx += len(elts)
	}
	if idx < 0 || idx >= len(elts) {
		return joson.Null, fmt.Errorf("index %d out of range (0..%d)", nq, len(elts))
	}
	return elts[idx], nil
}

// Selection constructs a sequence of the elements of its input sequence, for
// which the specified function returns true.
type Selection func(joson.Value) bool

func (q Selection) eval(v joson.Value) (joson.Value, error) {
	elts, ok := seqElems(v)
	if !ok {
		return joson.Null, fmt.Errorf("got %v, want sequence", v.Kind())
	}
	var out []joson.Value
	for _, elt := range elts {
		if q(elt) {
			out = append(out, elt)
		}
	}
	return seqValue(out), nil
}

// Apply constructs a sequence in which each value is replaced by the result
// of calling the specified function on the corresponding input value.
type Apply func(joson.Value) joson.Value

func (q Apply) eval(v joson.Value) (joson.Value, error) {
	elts, ok := seqElems(v)
	if !ok {
		return joson.Null, fmt.Errorf("got %v, want sequence", v.Kind())
	}
	out := make([]joson.Value, len(elts))
	for i, elt := range elts {
		out[i] = q(elt)
	}
	return seqValue(out), nil
}

// Slice selects a slice of a sequence from offsets lo to hi. The range
// includes lo but excludes hi. Negative offsets select from the end of the
// sequence. If hi == 0, the length of the sequence is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(v joson.Value) (joson.Value, error) {
	elts, ok := seqElems(v)
	if !ok {
		return joson.Null, fmt.Errorf("got %v, want sequence", v.Kind())
	}
	lox := q.lo
	if lox < 0 {
		lox += len(elts)
	}
	hix := q.hi
	if hix <= 0 {
		hix += len(elts)
	}
	if lox < 0 || lox >= len(elts) {
		return joson.Null, fmt.Errorf("index %d out of range (0..%d)", q.lo, len(elts))
	} else if hix < 0 || hix > len(elts) {
		return joson.Null, fmt.Errorf("index %d out of range (0..%d)", q.hi, len(elts))
	} else if lox > hix {
		return joson.Null, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	return seqValue(elts[lox:hix]), nil
}

// Pick constructs a sequence by picking the designated offsets from a
// sequence. Negative offsets select from the end of the input.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(v joson.Value) (joson.Value, error) {
	elts, ok := seqElems(v)
	if !ok {
		return joson.Null, fmt.Errorf("got %v, want sequence", v.Kind())
	}
	var out []joson.Value
	for _, off := range q {
		if off < 0 {
			off += len(elts)
		}
		if off < 0 || off >= len(elts) {
			return joson.Null, fmt.Errorf("index %d out of range (0..%d)", off, len(elts))
		}
		out = append(out, elts[off])
	}
	return seqValue(out), nil
}

// Len returns an integer representing the length of the root.
//
// For a mapping, the length is the number of members.
// For a sequence, the length is the number of elements.
// For a string, the length is the length of the string.
// For null, the length is zero.
func Len() Query { return lenQuery{} }

type lenQuery struct{}

func (lenQuery) eval(v joson.Value) (joson.Value, error) {
	switch v.Kind() {
	case joson.NullKind:
		return joson.Int32(0), nil
	case joson.StringKind:
		s, _ := v.Text()
		return joson.ToValue(len(s)), nil
	case joson.MapKind, joson.SeqKind, joson.FixedKind:
		return joson.ToValue(v.Size()), nil
	}
	return joson.Null, fmt.Errorf("cannot take length of %v", v.Kind())
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v joson.Value) (joson.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return joson.Null, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives. The result
// of the first alternative that does not report an error is returned. If
// there are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(v joson.Value) (joson.Value, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return joson.Null, errors.New("no matching alternatives")
}

// Recur applies a query to each recursive descendant of its input and
// returns a sequence of the resulting values. The arguments have the same
// constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(v joson.Value) (joson.Value, error) {
	var out []joson.Value

	stk := []joson.Value{v}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if r, err := q.Query.eval(next); err == nil {
			out = append(out, r)
		}

		// N.B. Push in reverse order, so we visit in lexical order.
		switch next.Kind() {
		case joson.MapKind:
			m, _ := next.Mapping()
			keys := m.Keys()
			sort.Strings(keys)
			for i := len(keys) - 1; i >= 0; i-- {
				stk = append(stk, *m.Find(keys[i]))
			}
		case joson.SeqKind, joson.FixedKind:
			elts, _ := seqElems(next)
			for i := len(elts) - 1; i >= 0; i-- {
				stk = append(stk, elts[i])
			}
		}
	}

	if len(out) == 0 {
		return joson.Null, errors.New("no matches")
	}
	return seqValue(out), nil
}

// Each applies a query to each element of a sequence and returns a sequence
// of the resulting values. It fails if the input is not a sequence. The
// arguments have the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(v joson.Value) (joson.Value, error) {
	elts, ok := seqElems(v)
	if !ok {
		return joson.Null, fmt.Errorf("got %v, want sequence", v.Kind())
	}
	var out []joson.Value
	for i, elt := range elts {
		w, err := q.Query.eval(elt)
		if err != nil {
			return joson.Null, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, w)
	}
	return seqValue(out), nil
}

// Object constructs a mapping with the given keys bound to the results of
// matching the query values against its input.
type Object map[string]Query

func (o Object) eval(v joson.Value) (joson.Value, error) {
	out := joson.NewMapping()
	for key, q := range o {
		val, err := q.eval(v)
		if err != nil {
			return joson.Null, fmt.Errorf("match %q: %w", key, err)
		}
		out.Upsert(key, val)
	}
	return joson.ToValue(out), nil
}

// Array constructs a sequence with the values produced by matching the given
// queries against its input.
type Array []Query

func (a Array) eval(v joson.Value) (joson.Value, error) {
	out := make([]joson.Value, len(a))
	for i, q := range a {
		val, err := q.eval(v)
		if err != nil {
			return joson.Null, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return seqValue(out), nil
}

// A String query ignores its input and returns the given string.
func String(s string) Query { return Value(joson.String(s)) }

// A Float query ignores its input and returns the given number.
func Float(n float64) Query { return Value(joson.Float64(n)) }

// An Int query ignores its input and returns the given integer.
func Int(z int64) Query { return Value(joson.Int64(z)) }

// A Bool query ignores its input and returns the given bool.
func Bool(b bool) Query { return Value(joson.Bool(b)) }

// A Null query ignores its input and returns a null value.
func Null() Query { return Value(joson.Null) }

// A Value query ignores its input and returns the given value.
func Value(v joson.Value) Query { return constQuery{v} }

type constQuery struct{ v joson.Value }

func (c constQuery) eval(joson.Value) (joson.Value, error) { return c.v, nil }

// A Glob query returns a sequence of all its inputs: the members of a
// mapping in sorted key order, or the elements of a sequence.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(v joson.Value) (joson.Value, error) {
	switch v.Kind() {
	case joson.MapKind:
		m, _ := v.Mapping()
		keys := m.Keys()
		sort.Strings(keys)
		out := make([]joson.Value, len(keys))
		for i, key := range keys {
			out[i] = *m.Find(key)
		}
		return seqValue(out), nil
	case joson.SeqKind, joson.FixedKind:
		return v, nil
	default:
		return joson.Null, errors.New("no matching values")
	}
}

// seqElems flattens a Sequence or FixedSequence value into its elements.
func seqElems(v joson.Value) ([]joson.Value, bool) {
	switch v.Kind() {
	case joson.SeqKind, joson.FixedKind:
		n := v.Size()
		out := make([]joson.Value, n)
		for i := 0; i < n; i++ {
			p, _ := v.At(i)
			out[i] = *p
		}
		return out, true
	}
	return nil, false
}

// seqValue wraps vs in a Sequence value without copying.
func seqValue(vs []joson.Value) joson.Value {
	return joson.ToValue(joson.SequenceOf(vs...))
}
