package types

// SubtaskMapper narrows down the old subtasks whose checkpointed state must be
// read to restore one new subtask after a parallelism change.
//
// Mappings of old subtasks to new subtasks may be unique or non-unique. A
// unique assignment means a particular old subtask feeds exactly one new
// subtask. Non-unique assignments require filtering downstream: the receiving
// side has to cross-verify for each restored record whether it truly belongs
// to the new subtask. Most mappers produce unique assignments and are thus
// optimal; the range mapper produces a mixture where only the subtasks at
// split boundaries need downstream filtering.
//
// Mapper implementations must:
//   - Be deterministic (same input → same output)
//   - Be stateless (no side effects, no shared mutable state)
//   - Run quickly (called once per new subtask during restore planning)
type SubtaskMapper interface {
	// Name returns the stable policy identifier used in logs and metrics.
	Name() string

	// OldSubtasks returns all old subtask indices that need to be read to
	// restore the state of the given new subtask index.
	//
	// Inputs are trusted: newIndex must be in [0, newParallelism) and both
	// parallelisms must be at least 1. Behavior outside those ranges is
	// unspecified.
	//
	// Parameters:
	//   - newIndex: Index of the new subtask, in [0, newParallelism)
	//   - oldParallelism: Number of subtasks before the rescale
	//   - newParallelism: Number of subtasks after the rescale
	//
	// Returns:
	//   - IndexSet: Old subtask indices, each in [0, oldParallelism)
	//   - error: ErrNotRescalable when the partitioning topology cannot be
	//     rescaled at all; nil for every supported policy
	OldSubtasks(newIndex, oldParallelism, newParallelism int) (IndexSet, error)

	// Unique reports whether the full mapping table produced by this policy
	// for the given parallelism change assigns each old subtask to exactly
	// one new subtask. When false, downstream consumers must filter restored
	// records by content.
	Unique(oldParallelism, newParallelism int) bool
}
