package keygroup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rescale/types"
)

func TestNewAssigner(t *testing.T) {
	t.Run("accepts sizes within bounds", func(t *testing.T) {
		for _, size := range []int{1, MinUniverseSize, 4096, MaxUniverseSize} {
			assigner, err := NewAssigner(size)

			require.NoError(t, err)
			require.Equal(t, size, assigner.UniverseSize())
		}
	})

	t.Run("rejects invalid sizes at construction", func(t *testing.T) {
		for _, size := range []int{0, -1, MaxUniverseSize + 1} {
			_, err := NewAssigner(size)

			require.Error(t, err)
			require.True(t, errors.Is(err, types.ErrInvalidUniverseSize))
		}
	})
}

func TestDefault(t *testing.T) {
	assigner := Default()

	require.Equal(t, DefaultUniverseSize, assigner.UniverseSize())
}

func TestAssigner_MatchesPackageFunctions(t *testing.T) {
	assigner, err := NewAssigner(4096)
	require.NoError(t, err)

	for parallelism := 1; parallelism <= 9; parallelism++ {
		for index := range parallelism {
			require.Equal(t,
				RangeForIndex(4096, parallelism, index),
				assigner.RangeForIndex(parallelism, index))
		}
	}

	require.Equal(t, IndexForKeyGroup(4096, 3, 2048), assigner.IndexForKeyGroup(3, 2048))
	require.Equal(t, ForKey([]byte("key"), 4096), assigner.ForKey([]byte("key")))
}

func TestAssigner_BoundaryConsistency(t *testing.T) {
	assigner, err := NewAssigner(MinUniverseSize)
	require.NoError(t, err)

	for parallelism := 1; parallelism <= 16; parallelism++ {
		for index := range parallelism {
			r := assigner.RangeForIndex(parallelism, index)

			require.Equal(t, index, assigner.IndexForKeyGroup(parallelism, r.Start))
			require.Equal(t, index, assigner.IndexForKeyGroup(parallelism, r.End))
		}
	}
}
