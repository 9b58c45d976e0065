// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

// A Mapping is an unordered collection of key-value pairs with unique string
// keys. Keys compare by content. Iteration order is unspecified.
type Mapping struct {
	m map[string]*Value
}

// NewMapping constructs an empty Mapping.
func NewMapping() *Mapping { return &Mapping{m: make(map[string]*Value)} }

// Len returns the number of pairs in m.
func (m *Mapping) Len() int { return len(m.m) }

// Upsert stores v under key, replacing any value already present.  The
// mapping takes ownership of v.
func (m *Mapping) Upsert(key string, v Value) {
	if m.m == nil {
		m.m = make(map[string]*Value)
	}
	m.m[key] = &v
}

// Erase removes the pair stored under key, reporting whether it was present.
func (m *Mapping) Erase(key string) bool {
	if _, ok := m.m[key]; !ok {
		return false
	}
	delete(m.m, key)
	return true
}

// Find returns the value stored under key, or nil if the key is absent.
// The result is still owned by m.
func (m *Mapping) Find(key string) *Value { return m.m[key] }

// Keys returns the keys of m in unspecified order.
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, len(m.m))
	for key := range m.m {
		keys = append(keys, key)
	}
	return keys
}

// Clone returns an independent deep copy of m.
func (m *Mapping) Clone() *Mapping {
	out := make(map[string]*Value, len(m.m))
	for key, v := range m.m {
		w := v.Clone()
		out[key] = &w
	}
	return &Mapping{m: out}
}

func (m *Mapping) clone() composite { return m.Clone() }
