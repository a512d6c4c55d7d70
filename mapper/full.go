package mapper

import "github.com/arloliu/rescale/types"

// Full replicates all old subtask state to every new subtask.
type Full struct{}

var _ types.SubtaskMapper = (*Full)(nil)

// NewFull creates a new full-replication mapper.
//
// Every new subtask reads every old subtask. This causes the maximum restore
// overhead and relies entirely on downstream content filtering; use it only
// when no structural correlation between old and new partitions exists.
//
// Returns:
//   - *Full: Initialized full-replication mapper
func NewFull() *Full {
	return &Full{}
}

// Name returns the policy identifier "full".
func (f *Full) Name() string {
	return "full"
}

// OldSubtasks returns [0, oldParallelism) for every new index.
func (f *Full) OldSubtasks(_ /* newIndex */, oldParallelism, _ /* newParallelism */ int) (types.IndexSet, error) {
	subtasks := make(types.IndexSet, oldParallelism)
	for subtask := range oldParallelism {
		subtasks.Add(subtask)
	}

	return subtasks, nil
}

// Unique reports true only for newParallelism == 1: with more than one new
// subtask, every old subtask is replicated to all of them.
func (f *Full) Unique(_ /* oldParallelism */, newParallelism int) bool {
	return newParallelism == 1
}
