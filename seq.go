// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

// defaultCap is the initial capacity of a Sequence.
const defaultCap = 8

// A Sequence is an ordered, index-addressed, resizable list of values.  It
// manages its backing storage explicitly: the initial capacity is 8 and the
// capacity doubles when an append overflows it.
type Sequence struct {
	vs []Value // len(vs) is the length; cap(vs) is the capacity
}

// NewSequence constructs an empty Sequence with the default capacity.
func NewSequence() *Sequence { return &Sequence{vs: make([]Value, 0, defaultCap)} }

// NewSequenceCap constructs an empty Sequence with capacity n.
func NewSequenceCap(n int) *Sequence { return &Sequence{vs: make([]Value, 0, n)} }

// SequenceOf constructs a Sequence that takes ownership of vs as its backing
// storage; its length and capacity are both len(vs).
func SequenceOf(vs ...Value) *Sequence { return &Sequence{vs: vs[:len(vs):len(vs)]} }

// Len returns the number of elements in s.
func (s *Sequence) Len() int { return len(s.vs) }

// Cap returns the current capacity of s.
func (s *Sequence) Cap() int { return cap(s.vs) }

// Append adds v to the end of s, taking ownership of it. If s is full its
// capacity is doubled first, so appends are amortized O(1).
func (s *Sequence) Append(v Value) {
	if len(s.vs) == cap(s.vs) {
		ncap := 2 * cap(s.vs)
		if ncap == 0 {
			ncap = defaultCap
		}
		grown := make([]Value, len(s.vs), ncap)
		copy(grown, s.vs)
		s.vs = grown
	}
	s.vs = append(s.vs, v)
}

// PopBack removes the last element of s, reporting whether an element was
// removed. The vacated slot is overwritten with Null so the removed payload
// is released. PopBack on an empty sequence reports false without change.
func (s *Sequence) PopBack() bool {
	n := len(s.vs)
	if n == 0 {
		return false
	}
	s.vs[n-1] = Value{}
	s.vs = s.vs[:n-1]
	return true
}

// At returns the element at index i, or ErrIndexOutOfRange.
func (s *Sequence) At(i int) (*Value, error) {
	if i < 0 || i >= len(s.vs) {
		return nil, opError("At", SeqKind, ErrIndexOutOfRange)
	}
	return &s.vs[i], nil
}

// Set replaces the element at index i with v, taking ownership of it.
// It reports false without change when i is out of bounds.
func (s *Sequence) Set(i int, v Value) bool {
	if i < 0 || i >= len(s.vs) {
		return false
	}
	s.vs[i] = v
	return true
}

// SetValues copies vs into the front of s, growing the capacity if needed.
// The length becomes the larger of the current length and len(vs).
func (s *Sequence) SetValues(vs ...Value) {
	if len(vs) > cap(s.vs) {
		ncap := max(len(vs), 2*cap(s.vs))
		grown := make([]Value, len(s.vs), ncap)
		copy(grown, s.vs)
		s.vs = grown
	}
	n := max(len(s.vs), len(vs))
	s.vs = s.vs[:n]
	copy(s.vs, vs)
}

// Resize reallocates the backing storage of s to exactly newCap, truncating
// the length if newCap is smaller.
func (s *Sequence) Resize(newCap int) {
	n := min(len(s.vs), newCap)
	vs := make([]Value, n, newCap)
	copy(vs, s.vs[:n])
	s.vs = vs
}

// ToFixed returns a FixedSequence holding a full copy of the elements of s.
func (s *Sequence) ToFixed() *FixedSequence {
	vs := make([]Value, len(s.vs))
	for i, v := range s.vs {
		vs[i] = v.Clone()
	}
	return &FixedSequence{vs: vs}
}

// Clone returns an independent deep copy of s.
func (s *Sequence) Clone() *Sequence {
	vs := make([]Value, len(s.vs), cap(s.vs))
	for i, v := range s.vs {
		vs[i] = v.Clone()
	}
	return &Sequence{vs: vs}
}

func (s *Sequence) clone() composite { return s.Clone() }

// A FixedSequence is an ordered, index-addressed list of values whose arity
// is fixed at construction. It supports bulk replacement of all elements but
// not incremental growth.
type FixedSequence struct {
	vs []Value
}

// NewFixedSequence constructs a FixedSequence of n Null values.
func NewFixedSequence(n int) *FixedSequence { return &FixedSequence{vs: make([]Value, n)} }

// FixedOf constructs a FixedSequence that takes ownership of vs as its
// backing storage.
func FixedOf(vs ...Value) *FixedSequence { return &FixedSequence{vs: vs} }

// Len returns the number of elements in t.
func (t *FixedSequence) Len() int { return len(t.vs) }

// At returns the element at index i, or ErrIndexOutOfRange.
func (t *FixedSequence) At(i int) (*Value, error) {
	if i < 0 || i >= len(t.vs) {
		return nil, opError("At", FixedKind, ErrIndexOutOfRange)
	}
	return &t.vs[i], nil
}

// SetValues replaces all elements of t with vs, taking ownership of it.
// The arity of t becomes len(vs).
func (t *FixedSequence) SetValues(vs ...Value) { t.vs = vs }

// ToSequence returns a Sequence holding a full copy of the elements of t.
func (t *FixedSequence) ToSequence() *Sequence {
	vs := make([]Value, len(t.vs))
	for i, v := range t.vs {
		vs[i] = v.Clone()
	}
	return SequenceOf(vs...)
}

// Clone returns an independent deep copy of t.
func (t *FixedSequence) Clone() *FixedSequence {
	vs := make([]Value, len(t.vs))
	for i, v := range t.vs {
		vs[i] = v.Clone()
	}
	return &FixedSequence{vs: vs}
}

func (t *FixedSequence) clone() composite { return t.Clone() }
