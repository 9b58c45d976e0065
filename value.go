// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

import (
	"fmt"
	"math"
	"math/big"
)

// Kind is the discriminant identifying which payload a Value holds.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullKind     Kind = iota // no payload; the zero Value
	CharKind                 // single byte character
	Int32Kind                // 32-bit signed integer
	Int64Kind                // 64-bit signed integer
	Float32Kind              // 32-bit floating point
	Float64Kind              // 64-bit floating point
	BigFloatKind             // extended-precision floating point (*big.Float)
	BoolKind                 // Boolean
	StringKind               // string
	FixedKind                // fixed-arity tuple (FixedSequence)
	SeqKind                  // growable array (Sequence)
	MapKind                  // string-keyed collection (Mapping)
)

var kindStr = [...]string{
	NullKind:     "Null",
	CharKind:     "Char",
	Int32Kind:    "Int32",
	Int64Kind:    "Int64",
	Float32Kind:  "Float32",
	Float64Kind:  "Float64",
	BigFloatKind: "BigFloat",
	BoolKind:     "Bool",
	StringKind:   "String",
	FixedKind:    "FixedSequence",
	SeqKind:      "Sequence",
	MapKind:      "Mapping",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// isComposite reports whether k is one of the container kinds.
func (k Kind) isComposite() bool { return k == FixedKind || k == SeqKind || k == MapKind }

// A composite is the owned container payload of a composite Value.
type composite interface {
	Len() int
	clone() composite
}

// A Value is a tagged union over the JSON-compatible payload kinds.  Exactly
// one payload is live, identified by the Kind. The zero Value is Null.
//
// A Value with a composite kind exclusively owns its container. Assignment
// transfers that ownership (the source must not be used afterward); Clone
// produces an independent deep copy.
type Value struct {
	kind Kind
	num  uint64 // char, int, float bits, bool
	str  string
	big  *big.Float
	comp composite
}

// Kind returns the discriminant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds the Null kind.
func (v Value) IsNull() bool { return v.kind == NullKind }

// Char constructs a Value holding a single byte character.
func Char(c byte) Value { return Value{kind: CharKind, num: uint64(c)} }

// Int32 constructs a Value holding a 32-bit integer.
func Int32(z int32) Value { return Value{kind: Int32Kind, num: uint64(int64(z))} }

// Int64 constructs a Value holding a 64-bit integer.
func Int64(z int64) Value { return Value{kind: Int64Kind, num: uint64(z)} }

// Float32 constructs a Value holding a 32-bit floating-point number.
func Float32(f float32) Value { return Value{kind: Float32Kind, num: uint64(math.Float32bits(f))} }

// Float64 constructs a Value holding a 64-bit floating-point number.
func Float64(f float64) Value { return Value{kind: Float64Kind, num: math.Float64bits(f)} }

// BigFloat constructs a Value holding an extended-precision float.
// The Value takes ownership of f.
func BigFloat(f *big.Float) Value {
	if f == nil {
		f = new(big.Float)
	}
	return Value{kind: BigFloatKind, big: f}
}

// Bool constructs a Value holding a Boolean.
func Bool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{kind: BoolKind, num: n}
}

// String constructs a Value holding a string.
func String(s string) Value { return Value{kind: StringKind, str: s} }

// Null is a Value holding the Null kind. The zero Value is equivalent.
var Null = Value{}

// OfKind constructs a Value holding the zero or empty payload of kind k:
// zero for scalars, the empty string, or an empty container.
func OfKind(k Kind) Value {
	switch k {
	case BigFloatKind:
		return BigFloat(new(big.Float))
	case FixedKind:
		return Value{kind: FixedKind, comp: new(FixedSequence)}
	case SeqKind:
		return Value{kind: SeqKind, comp: NewSequence()}
	case MapKind:
		return Value{kind: MapKind, comp: NewMapping()}
	default:
		return Value{kind: k}
	}
}

// ToValue converts a Go value into a Value. It accepts bool, byte, int,
// int32, int64, float32, float64, *big.Float, string, nil, Value, and the
// container types *Sequence, *FixedSequence, and *Mapping. Container
// arguments are owned by the result. ToValue panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null
	case Value:
		return t
	case bool:
		return Bool(t)
	case byte:
		return Char(t)
	case int:
		if t >= math.MinInt32 && t <= math.MaxInt32 {
			return Int32(int32(t))
		}
		return Int64(int64(t))
	case int32:
		return Int32(t)
	case int64:
		return Int64(t)
	case float32:
		return Float32(t)
	case float64:
		return Float64(t)
	case *big.Float:
		return BigFloat(t)
	case string:
		return String(t)
	case *Sequence:
		return Value{kind: SeqKind, comp: t}
	case *FixedSequence:
		return Value{kind: FixedKind, comp: t}
	case *Mapping:
		return Value{kind: MapKind, comp: t}
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}

// List constructs a Sequence value whose elements are the conversions of
// elts by ToValue, in order.
func List(elts ...any) Value {
	s := NewSequenceCap(max(len(elts), defaultCap))
	for _, e := range elts {
		s.Append(ToValue(e))
	}
	return ToValue(s)
}

// Tuple constructs a FixedSequence value whose elements are the conversions
// of elts by ToValue, in order.
func Tuple(elts ...any) Value {
	vs := make([]Value, len(elts))
	for i, e := range elts {
		vs[i] = ToValue(e)
	}
	return ToValue(FixedOf(vs...))
}

// Char returns the character payload of v, or ErrTypeMismatch.
func (v Value) Char() (byte, error) {
	if v.kind != CharKind {
		return 0, opError("Char", v.kind, ErrTypeMismatch)
	}
	return byte(v.num), nil
}

// Int32 returns the 32-bit integer payload of v, or ErrTypeMismatch.
func (v Value) Int32() (int32, error) {
	if v.kind != Int32Kind {
		return 0, opError("Int32", v.kind, ErrTypeMismatch)
	}
	return int32(int64(v.num)), nil
}

// Int64 returns the 64-bit integer payload of v, or ErrTypeMismatch.
func (v Value) Int64() (int64, error) {
	if v.kind != Int64Kind {
		return 0, opError("Int64", v.kind, ErrTypeMismatch)
	}
	return int64(v.num), nil
}

// Float32 returns the 32-bit float payload of v, or ErrTypeMismatch.
func (v Value) Float32() (float32, error) {
	if v.kind != Float32Kind {
		return 0, opError("Float32", v.kind, ErrTypeMismatch)
	}
	return math.Float32frombits(uint32(v.num)), nil
}

// Float64 returns the 64-bit float payload of v, or ErrTypeMismatch.
func (v Value) Float64() (float64, error) {
	if v.kind != Float64Kind {
		return 0, opError("Float64", v.kind, ErrTypeMismatch)
	}
	return math.Float64frombits(v.num), nil
}

// BigFloat returns the extended-precision float payload of v, or
// ErrTypeMismatch. The result is still owned by v.
func (v Value) BigFloat() (*big.Float, error) {
	if v.kind != BigFloatKind {
		return nil, opError("BigFloat", v.kind, ErrTypeMismatch)
	}
	return v.big, nil
}

// Bool returns the Boolean payload of v, or ErrTypeMismatch.
func (v Value) Bool() (bool, error) {
	if v.kind != BoolKind {
		return false, opError("Bool", v.kind, ErrTypeMismatch)
	}
	return v.num != 0, nil
}

// Text returns the string payload of v, or ErrTypeMismatch.
func (v Value) Text() (string, error) {
	if v.kind != StringKind {
		return "", opError("Text", v.kind, ErrTypeMismatch)
	}
	return v.str, nil
}

// Sequence returns the Sequence payload of v, or ErrTypeMismatch.
// The result is still owned by v.
func (v Value) Sequence() (*Sequence, error) {
	if v.kind != SeqKind {
		return nil, opError("Sequence", v.kind, ErrTypeMismatch)
	}
	return v.comp.(*Sequence), nil
}

// FixedSequence returns the FixedSequence payload of v, or ErrTypeMismatch.
// The result is still owned by v.
func (v Value) FixedSequence() (*FixedSequence, error) {
	if v.kind != FixedKind {
		return nil, opError("FixedSequence", v.kind, ErrTypeMismatch)
	}
	return v.comp.(*FixedSequence), nil
}

// Mapping returns the Mapping payload of v, or ErrTypeMismatch.
// The result is still owned by v.
func (v Value) Mapping() (*Mapping, error) {
	if v.kind != MapKind {
		return nil, opError("Mapping", v.kind, ErrTypeMismatch)
	}
	return v.comp.(*Mapping), nil
}

// SetChar replaces the payload of v with a character.
func (v *Value) SetChar(c byte) { *v = Char(c) }

// SetInt32 replaces the payload of v with a 32-bit integer.
func (v *Value) SetInt32(z int32) { *v = Int32(z) }

// SetInt64 replaces the payload of v with a 64-bit integer.
func (v *Value) SetInt64(z int64) { *v = Int64(z) }

// SetFloat32 replaces the payload of v with a 32-bit float.
func (v *Value) SetFloat32(f float32) { *v = Float32(f) }

// SetFloat64 replaces the payload of v with a 64-bit float.
func (v *Value) SetFloat64(f float64) { *v = Float64(f) }

// SetBigFloat replaces the payload of v with an extended-precision float,
// taking ownership of f.
func (v *Value) SetBigFloat(f *big.Float) { *v = BigFloat(f) }

// SetBool replaces the payload of v with a Boolean.
func (v *Value) SetBool(b bool) { *v = Bool(b) }

// SetString replaces the payload of v with a string.
func (v *Value) SetString(s string) { *v = String(s) }

// SetNull replaces the payload of v with Null.
func (v *Value) SetNull() { *v = Value{} }

// SetSequence replaces the payload of v with s, taking ownership of it.
func (v *Value) SetSequence(s *Sequence) { *v = ToValue(s) }

// SetFixedSequence replaces the payload of v with t, taking ownership of it.
func (v *Value) SetFixedSequence(t *FixedSequence) { *v = ToValue(t) }

// SetMapping replaces the payload of v with m, taking ownership of it.
func (v *Value) SetMapping(m *Mapping) { *v = ToValue(m) }

// Size returns the element count of a composite value (0 when empty), 1 for
// any scalar, and 0 for Null. Use Kind to distinguish an empty composite
// from a scalar or Null.
func (v Value) Size() int {
	switch v.kind {
	case NullKind:
		return 0
	case FixedKind, SeqKind, MapKind:
		return v.comp.Len()
	default:
		return 1
	}
}

// Upsert inserts or replaces the value stored under key. It reports
// ErrInvalidOperation unless v holds a Mapping.
func (v *Value) Upsert(key string, w Value) error {
	if v.kind != MapKind {
		return opError("Upsert", v.kind, ErrInvalidOperation)
	}
	v.comp.(*Mapping).Upsert(key, w)
	return nil
}

// EraseKey removes the value stored under key, reporting whether the key was
// present. It reports ErrInvalidOperation unless v holds a Mapping.
func (v *Value) EraseKey(key string) (bool, error) {
	if v.kind != MapKind {
		return false, opError("EraseKey", v.kind, ErrInvalidOperation)
	}
	return v.comp.(*Mapping).Erase(key), nil
}

// Find returns the value stored under key, or nil if the key is absent.
// It reports ErrInvalidOperation unless v holds a Mapping.
func (v Value) Find(key string) (*Value, error) {
	if v.kind != MapKind {
		return nil, opError("Find", v.kind, ErrInvalidOperation)
	}
	return v.comp.(*Mapping).Find(key), nil
}

// Append adds w to the end of the sequence, taking ownership of it.
// It reports ErrInvalidOperation unless v holds a Sequence.
func (v *Value) Append(w Value) error {
	if v.kind != SeqKind {
		return opError("Append", v.kind, ErrInvalidOperation)
	}
	v.comp.(*Sequence).Append(w)
	return nil
}

// PopBack removes the last element of the sequence, reporting whether an
// element was removed. It reports ErrInvalidOperation unless v holds a
// Sequence.
func (v *Value) PopBack() (bool, error) {
	if v.kind != SeqKind {
		return false, opError("PopBack", v.kind, ErrInvalidOperation)
	}
	return v.comp.(*Sequence).PopBack(), nil
}

// At returns the element at index i of a Sequence or FixedSequence. It
// reports ErrIndexOutOfRange when i is out of bounds, and
// ErrInvalidOperation for any other kind.
func (v Value) At(i int) (*Value, error) {
	switch t := v.comp.(type) {
	case *Sequence:
		return t.At(i)
	case *FixedSequence:
		return t.At(i)
	}
	return nil, opError("At", v.kind, ErrInvalidOperation)
}

// Clone returns an independent deep copy of v: composite payloads are copied
// recursively, so mutating the result never affects v.
func (v Value) Clone() Value {
	switch v.kind {
	case BigFloatKind:
		return BigFloat(new(big.Float).Copy(v.big))
	case FixedKind, SeqKind, MapKind:
		w := v
		w.comp = v.comp.clone()
		return w
	default:
		return v
	}
}

// Equal reports whether v and w are structurally equal: same kind at every
// position, equal scalar payloads, equal sequence order, and equal mapping
// key sets. The comparison uses an explicit work stack, so arbitrarily deep
// trees are safe.
func (v Value) Equal(w Value) bool {
	type pair struct{ a, b *Value }
	stk := []pair{{&v, &w}}
	for len(stk) > 0 {
		p := stk[len(stk)-1]
		stk = stk[:len(stk)-1]
		a, b := p.a, p.b
		if a.kind != b.kind {
			return false
		}
		switch a.kind {
		case NullKind:
		case StringKind:
			if a.str != b.str {
				return false
			}
		case BigFloatKind:
			if a.big.Cmp(b.big) != 0 {
				return false
			}
		case FixedKind, SeqKind:
			as, bs := a.elems(), b.elems()
			if len(as) != len(bs) {
				return false
			}
			for i := range as {
				stk = append(stk, pair{&as[i], &bs[i]})
			}
		case MapKind:
			am, bm := a.comp.(*Mapping), b.comp.(*Mapping)
			if am.Len() != bm.Len() {
				return false
			}
			for key, av := range am.m {
				bv, ok := bm.m[key]
				if !ok {
					return false
				}
				stk = append(stk, pair{av, bv})
			}
		default:
			if a.num != b.num {
				return false
			}
		}
	}
	return true
}

// elems returns the backing elements of a Sequence or FixedSequence value.
func (v Value) elems() []Value {
	switch t := v.comp.(type) {
	case *Sequence:
		return t.vs
	case *FixedSequence:
		return t.vs
	}
	return nil
}

// String returns a short descriptive form of v for debugging. Use JSON or
// Visualize for full renderings.
func (v Value) String() string {
	switch v.kind {
	case FixedKind, SeqKind, MapKind:
		return fmt.Sprintf("%v(len=%d)", v.kind, v.comp.Len())
	case NullKind:
		return "Null"
	default:
		return fmt.Sprintf("%v(%s)", v.kind, v.primText(false))
	}
}
