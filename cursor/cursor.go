// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the structure of a joson.Value.
package cursor

import (
	"fmt"

	"github.com/creachadair/joson"
)

// Path traverses a sequential path into the structure of v where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path(v *joson.Value, path ...any) (*joson.Value, error) {
	c := New(v).Down(path...)
	if err := c.Err(); err != nil {
		return nil, err
	}
	return c.Value(), nil
}

// A Cursor is a pointer that navigates into the structure of a joson.Value.
// The values it reports alias the original tree, so mutating through them
// mutates the tree.
type Cursor struct {
	org *joson.Value
	stk []*joson.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin *joson.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() *joson.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() *joson.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []*joson.Value {
	return append([]*joson.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are either strings (denoting mapping
// keys), integers (denoting offsets into sequences), functions (see below),
// or nil. If the path cannot be completely consumed, traversal stops and an
// error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be a Mapping,
// and the string resolves the member with that key.
//
// If a path element is an integer, the corresponding value must be a
// Sequence or FixedSequence, and the integer resolves to an index in it.
// Negative indices count backward from the end (-1 is last, -2 second last).
// An error is reported if the index is out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(*joson.Value) (*joson.Value, error)
//
// If the function reports an error, traversal stops and the error is
// recorded.
//
// A nil path element does nothing.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			m, err := cur.Mapping()
			if err != nil {
				return c.setErrorf("cannot traverse %v with %q", cur.Kind(), t)
			}
			v := m.Find(t)
			if v == nil {
				return c.setErrorf("key %q not found", t)
			}
			cur = c.push(v)

		case int:
			n := cur.Size()
			switch cur.Kind() {
			case joson.SeqKind, joson.FixedKind:
				i, ok := fixBound(n, t)
				if !ok {
					return c.setErrorf("index %d out of bounds (n=%d)", t, n)
				}
				v, err := cur.At(i)
				if err != nil {
					c.err = err
					return c
				}
				cur = c.push(v)
			default:
				return c.setErrorf("cannot traverse %v with %v", cur.Kind(), elt)
			}

		case func(*joson.Value) (*joson.Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v *joson.Value) *joson.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
