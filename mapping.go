package rescale

import (
	"fmt"
	"time"

	"github.com/arloliu/rescale/types"
)

// BuildMapping builds the total mapping from every new subtask index to the
// old subtask indices whose state it must read, using the given
// redistribution policy.
//
// The table always has exactly newParallelism entries (empty sets included)
// and is never partial: either the whole table is produced or an error is
// returned before any output. The union of all entries covers every old
// subtask for every supported policy.
//
// Entries are independent of each other, so callers may consume them in any
// order or concurrently.
//
// Parameters:
//   - oldParallelism: Number of subtasks before the rescale (at least 1)
//   - newParallelism: Number of subtasks after the rescale (at least 1)
//   - m: Redistribution policy (see the mapper package)
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - types.MappingTable: Total new-to-old mapping, indexed by new subtask
//   - error: types.ErrInvalidParallelism or types.ErrMapperRequired for bad
//     arguments; types.ErrNotRescalable when the policy rejects rescaling
//
// Example:
//
//	table, err := rescale.BuildMapping(10, 4, mapper.NewRoundRobin())
//	if err != nil {
//	    return err
//	}
//	oldSubtasks := table.OldSubtasks(2) // {2, 6}
func BuildMapping(oldParallelism, newParallelism int, m types.SubtaskMapper, opts ...Option) (types.MappingTable, error) {
	o := newBuildOptions(opts)

	if m == nil {
		return nil, types.ErrMapperRequired
	}
	if oldParallelism < 1 {
		return nil, fmt.Errorf("%w: old parallelism %d", types.ErrInvalidParallelism, oldParallelism)
	}
	if newParallelism < 1 {
		return nil, fmt.Errorf("%w: new parallelism %d", types.ErrInvalidParallelism, newParallelism)
	}

	start := time.Now()

	table := make(types.MappingTable, newParallelism)
	for newIndex := range newParallelism {
		subtasks, err := m.OldSubtasks(newIndex, oldParallelism, newParallelism)
		if err != nil {
			o.metrics.RecordMappingFailure(m.Name())
			return nil, fmt.Errorf("%s mapper rejected new subtask %d: %w", m.Name(), newIndex, err)
		}
		table[newIndex] = subtasks
	}

	overlapping := table.OverlappingOldSubtasks()
	o.metrics.RecordMappingBuild(m.Name(), oldParallelism, newParallelism, time.Since(start).Seconds())
	o.metrics.RecordOverlappingSubtasks(m.Name(), len(overlapping))

	o.logger.Debug("built subtask mapping",
		"policy", m.Name(),
		"old_parallelism", oldParallelism,
		"new_parallelism", newParallelism,
		"unique", len(overlapping) == 0,
		"overlapping_old_subtasks", len(overlapping),
	)

	return table, nil
}
