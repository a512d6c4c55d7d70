package keygroup

import (
	"fmt"

	"github.com/arloliu/rescale/types"
)

// Assigner binds the pure assignment functions to one fixed universe size.
//
// An Assigner is an immutable value; all methods are pure and safe for
// concurrent use.
type Assigner struct {
	universeSize int
}

// Compile-time assertion that Assigner implements KeyGroupAssigner.
var _ types.KeyGroupAssigner = (*Assigner)(nil)

// NewAssigner creates an assigner for the given universe size.
//
// The universe size is validated eagerly: callers holding an Assigner never
// need to re-check it.
//
// Parameters:
//   - universeSize: Fixed total number of key groups, in [1, MaxUniverseSize]
//
// Returns:
//   - *Assigner: Initialized assigner
//   - error: types.ErrInvalidUniverseSize when the size is out of bounds
//
// Example:
//
//	assigner, err := keygroup.NewAssigner(keygroup.DefaultUniverseFor(parallelism))
func NewAssigner(universeSize int) (*Assigner, error) {
	if universeSize < 1 || universeSize > MaxUniverseSize {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", types.ErrInvalidUniverseSize, universeSize, MaxUniverseSize)
	}

	return &Assigner{universeSize: universeSize}, nil
}

// Default returns an assigner over DefaultUniverseSize key groups.
//
// Returns:
//   - *Assigner: Assigner using the default universe size
func Default() *Assigner {
	return &Assigner{universeSize: DefaultUniverseSize}
}

// UniverseSize returns the fixed total number of key groups.
func (a *Assigner) UniverseSize() int {
	return a.universeSize
}

// RangeForIndex returns the contiguous key-group range owned by the subtask
// at the given index under the given parallelism.
func (a *Assigner) RangeForIndex(parallelism, index int) types.KeyGroupRange {
	return RangeForIndex(a.universeSize, parallelism, index)
}

// IndexForKeyGroup returns the index of the subtask owning the given key
// group under the given parallelism.
func (a *Assigner) IndexForKeyGroup(parallelism, keyGroup int) int {
	return IndexForKeyGroup(a.universeSize, parallelism, keyGroup)
}

// ForKey returns the key group the given key hashes onto.
func (a *Assigner) ForKey(key []byte) int {
	return ForKey(key, a.universeSize)
}
