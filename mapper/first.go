package mapper

import "github.com/arloliu/rescale/types"

// First funnels all old subtask state to the first new subtask.
type First struct{}

var _ types.SubtaskMapper = (*First)(nil)

// NewFirst creates a new first-only mapper.
//
// New subtask 0 reads every old subtask; every other new subtask starts with
// no restored state. Used when all extra state can be handed to a single
// successor.
//
// Returns:
//   - *First: Initialized first-only mapper
func NewFirst() *First {
	return &First{}
}

// Name returns the policy identifier "first".
func (f *First) Name() string {
	return "first"
}

// OldSubtasks returns [0, oldParallelism) for new index 0 and the empty set
// for every other new index.
func (f *First) OldSubtasks(newIndex, oldParallelism, _ /* newParallelism */ int) (types.IndexSet, error) {
	if newIndex != 0 {
		return types.IndexSet{}, nil
	}

	subtasks := make(types.IndexSet, oldParallelism)
	for subtask := range oldParallelism {
		subtasks.Add(subtask)
	}

	return subtasks, nil
}

// Unique always reports true: only new subtask 0 receives a non-empty set,
// so the sets are trivially disjoint.
func (f *First) Unique(_ /* oldParallelism */, _ /* newParallelism */ int) bool {
	return true
}
