// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package joson

// A Meter receives progress updates from a traversal. The traversal that
// owns the meter is its only writer: Update is called with a monotonically
// non-decreasing current count and a fixed total after each token consumed.
// Updates are advisory and have no effect on correctness; implementations
// decide how (and how often) to render them.
type Meter interface {
	Update(cur, total int)
}
