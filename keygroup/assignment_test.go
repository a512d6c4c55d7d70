package keygroup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rescale/types"
)

func TestRangeForIndex_PartitionsUniverse(t *testing.T) {
	for _, universeSize := range []int{MinUniverseSize, 4096, DefaultUniverseSize} {
		for parallelism := 1; parallelism <= 17; parallelism++ {
			nextStart := 0
			for index := range parallelism {
				r := RangeForIndex(universeSize, parallelism, index)

				require.Equal(t, nextStart, r.Start,
					"universe=%d parallelism=%d index=%d: ranges must be gap-free", universeSize, parallelism, index)
				require.False(t, r.Empty())
				nextStart = r.End + 1
			}
			require.Equal(t, universeSize, nextStart, "last range must end at universeSize-1")
		}
	}
}

func TestRangeForIndex_BalancedSizes(t *testing.T) {
	const universeSize = DefaultUniverseSize

	for parallelism := 1; parallelism <= 100; parallelism++ {
		minSize := universeSize / parallelism
		for index := range parallelism {
			size := RangeForIndex(universeSize, parallelism, index).Size()

			require.GreaterOrEqual(t, size, minSize)
			require.LessOrEqual(t, size, minSize+1)
		}
	}
}

func TestIndexForKeyGroup_InverseOfRangeForIndex(t *testing.T) {
	for _, universeSize := range []int{MinUniverseSize, DefaultUniverseSize} {
		for parallelism := 1; parallelism <= 17; parallelism++ {
			for index := range parallelism {
				r := RangeForIndex(universeSize, parallelism, index)

				require.Equal(t, index, IndexForKeyGroup(universeSize, parallelism, r.Start))
				require.Equal(t, index, IndexForKeyGroup(universeSize, parallelism, r.End))
			}
		}
	}
}

func TestIndexForKeyGroup_EveryKeyGroupOwnedByItsRange(t *testing.T) {
	const universeSize = MinUniverseSize

	for parallelism := 1; parallelism <= 9; parallelism++ {
		ranges := make([]types.KeyGroupRange, parallelism)
		for index := range parallelism {
			ranges[index] = RangeForIndex(universeSize, parallelism, index)
		}

		for keyGroup := range universeSize {
			owner := IndexForKeyGroup(universeSize, parallelism, keyGroup)

			require.True(t, ranges[owner].Contains(keyGroup),
				"parallelism=%d key group %d resolved to index %d owning %+v",
				parallelism, keyGroup, owner, ranges[owner])
		}
	}
}

func TestForKey(t *testing.T) {
	t.Run("deterministic and in range", func(t *testing.T) {
		keys := [][]byte{[]byte("user-1"), []byte("user-2"), []byte(""), []byte("a much longer composite key")}

		for _, key := range keys {
			kg := ForKey(key, DefaultUniverseSize)

			require.GreaterOrEqual(t, kg, 0)
			require.Less(t, kg, DefaultUniverseSize)
			require.Equal(t, kg, ForKey(key, DefaultUniverseSize), "same key must hash to the same key group")
		}
	})

	t.Run("spreads keys across the universe", func(t *testing.T) {
		seen := make(map[int]struct{})
		for i := range 1000 {
			kg := ForKey([]byte{byte(i), byte(i >> 8), 'k'}, DefaultUniverseSize)
			seen[kg] = struct{}{}
		}

		require.Greater(t, len(seen), 900, "1000 distinct keys should rarely collide in 32768 key groups")
	})
}

func TestDefaultUniverseFor(t *testing.T) {
	cases := []struct {
		parallelism int
		want        int
	}{
		{1, MinUniverseSize},
		{64, MinUniverseSize},
		{85, 128},
		{86, 256},
		{512, 1024},
		{30000, MaxUniverseSize},
		{100000, MaxUniverseSize},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, DefaultUniverseFor(tc.parallelism), "parallelism=%d", tc.parallelism)
	}
}
