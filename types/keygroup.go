package types

// KeyGroupRange is a contiguous, inclusive interval [Start, End] over the
// key-group universe.
//
// Key groups are the atomic unit of keyed-state redistribution: every key
// hashes to exactly one key group, and a subtask owns a contiguous range of
// key groups. A range with End < Start is the empty range.
type KeyGroupRange struct {
	// Start is the first key group of the range (inclusive).
	Start int `json:"start"`

	// End is the last key group of the range (inclusive).
	End int `json:"end"`
}

// Size returns the number of key groups in the range (0 for an empty range).
func (r KeyGroupRange) Size() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start + 1
}

// Empty reports whether the range contains no key groups.
func (r KeyGroupRange) Empty() bool {
	return r.End < r.Start
}

// Contains reports whether the key group falls inside the range.
func (r KeyGroupRange) Contains(keyGroup int) bool {
	return keyGroup >= r.Start && keyGroup <= r.End
}

// KeyGroupAssigner computes deterministic key-group ownership for a fixed
// universe of key groups.
//
// Both directions must agree on the same universe size: for every valid
// index i, IndexForKeyGroup(p, RangeForIndex(p, i).Start) == i. The range
// redistribution policy relies on this invariant when it maps a new
// subtask's range boundaries back onto the old parallelism; mixing assigners
// with different universe sizes breaks boundary alignment silently.
type KeyGroupAssigner interface {
	// RangeForIndex returns the contiguous key-group range owned by the
	// subtask at the given index under the given parallelism. Total for
	// index in [0, parallelism).
	RangeForIndex(parallelism, index int) KeyGroupRange

	// IndexForKeyGroup returns the index of the subtask owning the given
	// key group under the given parallelism.
	IndexForKeyGroup(parallelism, keyGroup int) int

	// UniverseSize returns the fixed total number of key groups this
	// assigner partitions.
	UniverseSize() int
}
