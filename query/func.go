// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package query

import "github.com/creachadair/joson"

// Exists returns a selection that reports true if its argument satisfies the
// specified query. The arguments have the same constraints as Path.
func Exists(keys ...any) Selection {
	q := Path(keys...)
	return func(v joson.Value) bool {
		_, err := q.eval(v)
		return err == nil
	}
}

// IsKind returns a selection that reports true if its argument has kind k.
func IsKind(k joson.Kind) Selection {
	return func(v joson.Value) bool { return v.Kind() == k }
}

// IsNotKind returns a selection that reports true if its argument does not
// have kind k.
func IsNotKind(k joson.Kind) Selection {
	return func(v joson.Value) bool { return v.Kind() != k }
}
