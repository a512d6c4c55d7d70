package keygroup

import (
	"github.com/zeebo/xxh3"

	"github.com/arloliu/rescale/types"
)

const (
	// MinUniverseSize is the smallest universe size chosen by
	// DefaultUniverseFor. Small universes limit how far an operator can ever
	// be scaled up, so sizing never goes below this bound.
	MinUniverseSize = 1 << 7

	// MaxUniverseSize is the largest supported universe size. Universe sizes
	// above this bound are rejected by NewAssigner.
	MaxUniverseSize = 1 << 15

	// DefaultUniverseSize is the universe size used when none is configured.
	//
	// When two computations only need to agree on *relative* range positions
	// (as the range redistribution policy does), the actual value cancels
	// out, so the upper bound is a safe default for any parallelism.
	DefaultUniverseSize = MaxUniverseSize
)

// RangeForIndex computes the contiguous range of key groups owned by the
// subtask at the given index under the given parallelism.
//
// The ranges for all indices of one parallelism partition [0, universeSize)
// without gaps or overlap. Total for index in [0, parallelism); parallelism
// must be at least 1 and at most universeSize for every range to be
// non-empty.
//
// Parameters:
//   - universeSize: Fixed total number of key groups
//   - parallelism: Number of subtasks sharing the universe
//   - index: Subtask index, in [0, parallelism)
//
// Returns:
//   - types.KeyGroupRange: Inclusive range owned by the index
func RangeForIndex(universeSize, parallelism, index int) types.KeyGroupRange {
	start := (index*universeSize + parallelism - 1) / parallelism
	end := ((index+1)*universeSize - 1) / parallelism

	return types.KeyGroupRange{Start: start, End: end}
}

// IndexForKeyGroup computes the index of the subtask owning the given key
// group under the given parallelism.
//
// Exact inverse of RangeForIndex at range boundaries:
// IndexForKeyGroup(u, p, RangeForIndex(u, p, i).Start) == i for every valid i.
//
// Parameters:
//   - universeSize: Fixed total number of key groups
//   - parallelism: Number of subtasks sharing the universe
//   - keyGroup: Key group, in [0, universeSize)
//
// Returns:
//   - int: Owning subtask index, in [0, parallelism)
func IndexForKeyGroup(universeSize, parallelism, keyGroup int) int {
	return keyGroup * parallelism / universeSize
}

// ForKey hashes an arbitrary key onto its key group.
//
// The assignment is deterministic across processes and releases, which is
// what makes checkpointed keyed state portable across parallelism changes.
//
// Parameters:
//   - key: Serialized key bytes
//   - universeSize: Fixed total number of key groups
//
// Returns:
//   - int: Key group, in [0, universeSize)
func ForKey(key []byte, universeSize int) int {
	return int(xxh3.Hash(key) % uint64(universeSize)) //nolint:gosec // universeSize <= 1<<15
}

// DefaultUniverseFor derives a universe size for an operator that never
// configured one explicitly: 1.5x the current parallelism rounded up to the
// next power of two, clamped to [MinUniverseSize, MaxUniverseSize].
//
// The 1.5x headroom keeps ranges rebalanceable for moderate upscales without
// fragmenting state into needlessly many key groups.
//
// Parameters:
//   - parallelism: Current operator parallelism (at least 1)
//
// Returns:
//   - int: Universe size, always a power of two within the supported bounds
func DefaultUniverseFor(parallelism int) int {
	target := parallelism + parallelism/2

	size := MinUniverseSize
	for size < target && size < MaxUniverseSize {
		size <<= 1
	}

	return size
}
