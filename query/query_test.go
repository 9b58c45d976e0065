// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package query_test

import (
	"testing"

	"github.com/creachadair/joson"
	"github.com/creachadair/joson/query"
	"github.com/creachadair/mds/mtest"
)

const testJSON = `{
  "episodes": [
    {"airDate": "2021-11-30", "number": 3, "keep": true},
    {"airDate": "2021-11-23", "number": 2, "keep": false},
    {"airDate": "2021-11-16", "number": 1, "keep": true}
  ],
  "title": "nothing of note",
  "extra": {"tag": null}
}`

func mustParse(t *testing.T) joson.Value {
	t.Helper()
	v, err := joson.Parse(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return v
}

func TestQuery(t *testing.T) {
	val := mustParse(t)

	t.Run("Seq", func(t *testing.T) {
		v, err := query.Eval(val, query.Seq{
			query.Path("episodes"),
			query.Path(0),
			query.Path("airDate"),
		})
		if err != nil {
			t.Errorf("Eval failed: %v", err)
		} else if s, serr := v.Text(); serr != nil {
			t.Errorf("Result: got %v, want string", v.Kind())
		} else if s != "2021-11-30" {
			t.Errorf("Result: got %q, want %q", s, "2021-11-30")
		}
	})

	t.Run("Path", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", -1, "number"))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.Int32(1)) {
			t.Errorf("Result: got %v, want 1", v)
		}
	})

	t.Run("Each", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Each("airDate")))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		want := joson.List("2021-11-30", "2021-11-23", "2021-11-16")
		if !v.Equal(want) {
			t.Errorf("Result: got %s, want %s", v.JSON(), want.JSON())
		}
	})

	t.Run("Alt", func(t *testing.T) {
		v, err := query.Eval(val, query.Alt{
			query.Path("nonesuch"),
			query.Path("title"),
		})
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.String("nothing of note")) {
			t.Errorf("Result: got %v", v)
		}
	})

	t.Run("AltEmpty", func(t *testing.T) {
		if v, err := query.Eval(val, query.Alt{}); err == nil {
			t.Errorf("Eval: got %v, want error", v)
		}
	})

	t.Run("Recur", func(t *testing.T) {
		v, err := query.Eval(val, query.Recur("airDate"))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		want := joson.List("2021-11-30", "2021-11-23", "2021-11-16")
		if !v.Equal(want) {
			t.Errorf("Result: got %s, want %s", v.JSON(), want.JSON())
		}
	})

	t.Run("Len", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Len()))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.Int32(3)) {
			t.Errorf("Result: got %v, want 3", v)
		}
	})

	t.Run("Slice", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Slice(1, 0), query.Each("number")))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.List(2, 1)) {
			t.Errorf("Result: got %s, want [2, 1]", v.JSON())
		}
	})

	t.Run("Pick", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Pick(2, 0), query.Each("number")))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.List(1, 3)) {
			t.Errorf("Result: got %s, want [1, 3]", v.JSON())
		}
	})

	t.Run("Selection", func(t *testing.T) {
		v, err := query.Eval(val, query.Path(
			"episodes",
			query.Selection(query.Exists("keep")),
			query.Each("keep"),
		))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.List(true, false, true)) {
			t.Errorf("Result: got %s", v.JSON())
		}
	})

	t.Run("Apply", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", query.Apply(func(joson.Value) joson.Value {
			return joson.Int32(1)
		}), query.Len()))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.Int32(3)) {
			t.Errorf("Result: got %v, want 3", v)
		}
	})

	t.Run("Object", func(t *testing.T) {
		v, err := query.Eval(val, query.Object{
			"first": query.Path("episodes", 0, "airDate"),
			"count": query.Path("episodes", query.Len()),
		})
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		m := joson.NewMapping()
		m.Upsert("first", joson.String("2021-11-30"))
		m.Upsert("count", joson.Int32(3))
		if want := joson.ToValue(m); !v.Equal(want) {
			t.Errorf("Result: got %s, want %s", v.JSON(), want.JSON())
		}
	})

	t.Run("Array", func(t *testing.T) {
		v, err := query.Eval(val, query.Array{
			query.Path("title"),
			query.Int(25),
			query.Bool(false),
			query.Null(),
			query.String("lit"),
			query.Float(0.5),
		})
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		want := joson.List("nothing of note", joson.Int64(25), false, nil, "lit", 0.5)
		if !v.Equal(want) {
			t.Errorf("Result: got %s, want %s", v.JSON(), want.JSON())
		}
	})

	t.Run("Glob", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("extra", query.Glob()))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.List(nil)) {
			t.Errorf("Result: got %s, want [null]", v.JSON())
		}
	})

	t.Run("IsKind", func(t *testing.T) {
		v, err := query.Eval(val, query.Path("episodes", 0, query.Glob(),
			query.Selection(query.IsKind(joson.StringKind))))
		if err != nil {
			t.Fatalf("Eval failed: %v", err)
		}
		if !v.Equal(joson.List("2021-11-30")) {
			t.Errorf("Result: got %s", v.JSON())
		}
	})

	t.Run("WrongType", func(t *testing.T) {
		if v, err := query.Eval(val, query.Path("title", 0)); err == nil {
			t.Errorf("Eval: got %v, want error", v)
		}
	})

	t.Run("BadPathElement", func(t *testing.T) {
		mtest.MustPanic(t, func() { query.Path(3.5) })
	})
}
