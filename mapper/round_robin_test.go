package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rescale/types"
)

func TestRoundRobin_OldSubtasks(t *testing.T) {
	t.Run("downscale wraps assignments around", func(t *testing.T) {
		m := NewRoundRobin()

		want := map[int]types.IndexSet{
			0: types.NewIndexSet(0, 4, 8),
			1: types.NewIndexSet(1, 5, 9),
			2: types.NewIndexSet(2, 6),
			3: types.NewIndexSet(3, 7),
		}

		for newIndex, expected := range want {
			subtasks, err := m.OldSubtasks(newIndex, 10, 4)

			require.NoError(t, err)
			require.True(t, expected.Equal(subtasks),
				"new index %d: expected %v, got %v", newIndex, expected.Sorted(), subtasks.Sorted())
		}
	})

	t.Run("upscale leaves extra subtasks empty", func(t *testing.T) {
		m := NewRoundRobin()

		for newIndex := range 6 {
			subtasks, err := m.OldSubtasks(newIndex, 6, 10)

			require.NoError(t, err)
			require.True(t, types.NewIndexSet(newIndex).Equal(subtasks))
		}
		for newIndex := 6; newIndex < 10; newIndex++ {
			subtasks, err := m.OldSubtasks(newIndex, 6, 10)

			require.NoError(t, err)
			require.Empty(t, subtasks, "new index %d should start with no restored state", newIndex)
		}
	})

	t.Run("identity rescale maps each index to itself", func(t *testing.T) {
		m := NewRoundRobin()

		for parallelism := 1; parallelism <= 16; parallelism++ {
			for newIndex := range parallelism {
				subtasks, err := m.OldSubtasks(newIndex, parallelism, parallelism)

				require.NoError(t, err)
				require.True(t, types.NewIndexSet(newIndex).Equal(subtasks))
			}
		}
	})

	t.Run("set size never exceeds ceil(old/new)", func(t *testing.T) {
		m := NewRoundRobin()

		for oldParallelism := 1; oldParallelism <= 20; oldParallelism++ {
			for newParallelism := 1; newParallelism <= 20; newParallelism++ {
				bound := (oldParallelism + newParallelism - 1) / newParallelism
				for newIndex := range newParallelism {
					subtasks, err := m.OldSubtasks(newIndex, oldParallelism, newParallelism)

					require.NoError(t, err)
					require.LessOrEqual(t, len(subtasks), bound,
						"old=%d new=%d index=%d", oldParallelism, newParallelism, newIndex)
				}
			}
		}
	})
}

func TestRoundRobin_Unique(t *testing.T) {
	m := NewRoundRobin()

	require.True(t, m.Unique(10, 4))
	require.True(t, m.Unique(4, 10))
	require.True(t, m.Unique(1, 1))
}
