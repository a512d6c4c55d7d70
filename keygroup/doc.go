// Package keygroup computes deterministic key-group range assignments.
//
// The key-group universe is a fixed number of key groups over which all keyed
// state is partitioned. Every key hashes to exactly one key group, and every
// subtask owns one contiguous range of key groups. Because both directions of
// the computation (index → range, key group → index) are pure functions of
// the universe size and the parallelism, state redistribution after a
// parallelism change is fully deterministic.
//
// The ranges produced by RangeForIndex partition the universe with no gaps
// and no overlap: range 0 starts at key group 0, range parallelism-1 ends at
// universeSize-1, and IndexForKeyGroup is the exact inverse at every range
// boundary. The range redistribution policy in the mapper package depends on
// this invariant; both sides must use the same universe size.
package keygroup
