// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

import "os"

// FileBanner is the key under which WriteFile wraps a non-Mapping root, so
// that stored files are always JSON objects at the top level.
const FileBanner = "Welcome to JoSon"

// WriteFile renders v to the file at path with WriteTo, creating or
// truncating it. A root that is not a Mapping is wrapped in a single-member
// Mapping under FileBanner before writing.
func WriteFile(path string, v Value) error {
	out := v
	if v.Kind() != MapKind {
		m := NewMapping()
		m.Upsert(FileBanner, v)
		out = ToValue(m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ParseFile parses the contents of the file at path. If the file cannot be
// read, it returns Null and the read error.
func (p *Parser) ParseFile(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	return p.Parse(string(data))
}

// ReadFile parses the contents of the file at path with a default Parser.
func ReadFile(path string) (Value, error) { return new(Parser).ParseFile(path) }
