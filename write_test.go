// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/joson"
	"github.com/google/go-cmp/cmp"
)

func TestWriteTo(t *testing.T) {
	tests := []struct {
		name string
		val  joson.Value
		want string
	}{
		{"Scalar", joson.Int32(42), "42"},
		{"EmptyMap", joson.ToValue(joson.NewMapping()), "{}"},
		{"Seq", joson.List(1, "two", nil), `[1, "two", null]`},
		{"Tuple", joson.Tuple(1, 2), "[1, 2]"},
		{"Map", makeMap(func(m *joson.Mapping) {
			m.Upsert("a", joson.Int32(1))
			m.Upsert("b", joson.List(true, nil, "x"))
		}), "{\n  \"a\": 1, \n  \"b\": [true, null, \"x\"]\n}"},
		{"MapNested", makeMap(func(m *joson.Mapping) {
			m.Upsert("o", makeMap(func(in *joson.Mapping) {
				in.Upsert("i", joson.Int32(1))
			}))
		}), "{\n  \"o\": {\n    \"i\": 1\n  }\n}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			n, err := tc.val.WriteTo(&sb)
			if err != nil {
				t.Fatalf("WriteTo: unexpected error: %v", err)
			}
			if diff := cmp.Diff(sb.String(), tc.want); diff != "" {
				t.Errorf("WriteTo output (-got, +want):\n%s", diff)
			}
			if n != int64(len(tc.want)) {
				t.Errorf("WriteTo count: got %d, want %d", n, len(tc.want))
			}
		})
	}
}

func TestWriteToDeep(t *testing.T) {
	// Nesting beyond the precomputed indent table must still render a
	// document that reads back equal.
	v := joson.List(1)
	for i := 0; i < 24; i++ {
		v = joson.List(v)
	}
	var sb strings.Builder
	if _, err := v.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo: unexpected error: %v", err)
	}
	back, err := joson.Parse(sb.String())
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if !back.Equal(v) {
		t.Error("deep document did not read back equal")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("synthetic write failure") }

func TestWriteToError(t *testing.T) {
	v := joson.List(1, 2, 3)
	if _, err := v.WriteTo(failWriter{}); err == nil {
		t.Error("WriteTo to failing writer: got nil error")
	}
}
