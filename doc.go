// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package joson implements a dynamically-typed JSON document model, a parser
// that builds documents from JSON source text, and printers that render them
// back to text.
//
// # Values
//
// The Value type is a tagged union over the JSON-compatible payload kinds.
// Scalars (characters, integers, floating-point numbers, Booleans, strings)
// are stored inline; the composite kinds hold a single owned container: a
// Sequence (growable array), a FixedSequence (fixed-arity tuple), or a
// Mapping (string-keyed collection). The zero Value is Null.
//
// Assigning a Value hands off ownership of its composite payload; use Clone
// to make an independent deep copy:
//
//	w := v         // w now owns v's payload; stop using v
//	w := v.Clone() // w is an independent copy; v remains valid
//
// Typed accessors (Char, Int64, Text, ...) report ErrTypeMismatch when the
// value holds a different kind. Container operations on the Value facade
// (Upsert, Append, At, ...) report ErrInvalidOperation when the value is not
// a container of the required kind.
//
// # Parsing
//
// A Parser converts a JSON text buffer into a Value tree:
//
//	v, err := joson.Parse(`{"a": 1, "b": [true, null]}`)
//
// The parser maintains an explicit container stack rather than recurring, so
// input depth is bounded by available memory rather than the call stack.
// Malformed input is handled permissively: an unterminated container yields
// the deepest still-open container together with a *ParseError, and an
// unrecognized primitive token degrades to Null. API misuse, by contrast, is
// always a hard error.
//
// # Printing
//
// Two structurally identical stack-based walkers render a tree back to text.
// The JSON method produces canonical JSON; the Visualize method produces a
// human-oriented debugging dialect with "(...)" tuples, underscore-grouped
// integers, scientific-notation floats, and True/False/NullPtr spellings.
// WriteTo streams canonical JSON to an io.Writer with 2-space indentation.
package joson
