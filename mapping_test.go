// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson_test

import (
	"sort"
	"testing"

	"github.com/creachadair/joson"
	"github.com/google/go-cmp/cmp"
)

func TestMapping(t *testing.T) {
	m := joson.NewMapping()
	if m.Len() != 0 {
		t.Errorf("empty mapping length: got %d, want 0", m.Len())
	}
	m.Upsert("one", joson.Int32(1))
	m.Upsert("two", joson.Int32(2))
	m.Upsert("one", joson.String("uno")) // replace

	if m.Len() != 2 {
		t.Errorf("length: got %d, want 2", m.Len())
	}
	if v := m.Find("one"); v == nil {
		t.Error("Find(one): got nil")
	} else if s, err := v.Text(); err != nil || s != "uno" {
		t.Errorf("Find(one): got %q, %v; want uno", s, err)
	}
	if v := m.Find("three"); v != nil {
		t.Errorf("Find(three): got %v, want nil", v)
	}

	keys := m.Keys()
	sort.Strings(keys)
	if diff := cmp.Diff(keys, []string{"one", "two"}); diff != "" {
		t.Errorf("Keys (-got, +want):\n%s", diff)
	}

	if m.Erase("three") {
		t.Error("Erase(three): got true, want false")
	}
	if !m.Erase("two") {
		t.Error("Erase(two): got false, want true")
	}
	if m.Len() != 1 {
		t.Errorf("length after erase: got %d, want 1", m.Len())
	}
}

func TestMappingClone(t *testing.T) {
	m := joson.NewMapping()
	m.Upsert("list", joson.List(1, 2))

	c := m.Clone()
	if err := c.Find("list").Append(joson.Int32(3)); err != nil {
		t.Fatalf("Append to clone member: %v", err)
	}
	if got := m.Find("list").Size(); got != 2 {
		t.Errorf("original member size after clone mutation: got %d, want 2", got)
	}
}

func TestMappingThroughValue(t *testing.T) {
	// Mutating the found value writes through to the tree.
	v := joson.ToValue(joson.NewMapping())
	if err := v.Upsert("k", joson.Int32(1)); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	p, err := v.Find("k")
	if err != nil || p == nil {
		t.Fatalf("Find: %v, %v", p, err)
	}
	p.SetString("replaced")
	if got := v.JSON(); got != "{\n\"k\": \"replaced\"\n}" {
		t.Errorf("JSON after write-through: got %q", got)
	}
}
