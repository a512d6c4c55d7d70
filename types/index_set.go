package types

import (
	"maps"
	"slices"
)

// IndexSet is an unordered set of subtask indices.
//
// The zero value (nil) is a valid empty set for reads; use NewIndexSet or
// make before calling Add.
type IndexSet map[int]struct{}

// NewIndexSet creates an IndexSet containing the given indices.
//
// Parameters:
//   - indices: Initial members (duplicates are collapsed)
//
// Returns:
//   - IndexSet: Set containing every given index
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, idx := range indices {
		s[idx] = struct{}{}
	}

	return s
}

// Add inserts an index into the set.
func (s IndexSet) Add(index int) {
	s[index] = struct{}{}
}

// Contains reports whether the index is a member of the set.
func (s IndexSet) Contains(index int) bool {
	_, ok := s[index]
	return ok
}

// Sorted returns the members in ascending order.
//
// Returns:
//   - []int: Sorted slice of all members (empty slice for an empty set)
func (s IndexSet) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}

// Equal reports whether both sets contain exactly the same indices.
func (s IndexSet) Equal(other IndexSet) bool {
	return maps.Equal(s, other)
}

// Union returns a new set containing the members of both sets.
//
// Neither receiver nor argument is modified.
func (s IndexSet) Union(other IndexSet) IndexSet {
	out := make(IndexSet, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)

	return out
}
