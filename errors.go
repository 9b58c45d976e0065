// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the value facade and the parser. Use errors.Is
// to test for them; the concrete wrappers are *OpError and *ParseError.
var (
	// ErrTypeMismatch is reported by a typed accessor or mutator invoked on a
	// value holding a different kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidOperation is reported by a container operation invoked on a
	// value that is not a container of the required kind.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrIndexOutOfRange is reported by an index access at or beyond the size
	// of a container.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyInput is reported by the parser when the input contains no
	// non-whitespace content.
	ErrEmptyInput = errors.New("empty input")

	// ErrMalformed is reported by the parser when the input cannot be fully
	// consumed. The accompanying partial value is still returned.
	ErrMalformed = errors.New("malformed document")
)

// An OpError reports a misuse of the Value API: the named operation was
// invoked on a value of an unsupported kind, or with an out-of-range index.
type OpError struct {
	Op   string // the operation, e.g. "Append"
	Kind Kind   // the kind of the receiving value
	Err  error  // the underlying sentinel error
}

// Error satisfies the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s on %v value: %v", e.Op, e.Kind, e.Err)
}

// Unwrap supports error wrapping.
func (e *OpError) Unwrap() error { return e.Err }

func opError(op string, kind Kind, err error) *OpError {
	return &OpError{Op: op, Kind: kind, Err: err}
}

// A ParseError reports a defect in parsed input. Parsing is permissive: the
// parser still returns a usable value (Null for empty input, the deepest
// still-open container for an unterminated document) alongside the error.
type ParseError struct {
	Offset int   // byte offset in the input where parsing stopped
	Err    error // the underlying sentinel error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at offset %d: %v", e.Offset, e.Err)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.Err }
