package types

// MappingTable is the total mapping from every new subtask index to the set
// of old subtask indices that must be read to restore it.
//
// The slice index is the new subtask index; the table always has exactly
// newParallelism entries, including entries holding an empty set when a
// policy assigns nothing to a new subtask. A table is computed once per
// rescale event, consumed to drive state-restore reads, and discarded.
type MappingTable []IndexSet

// OldSubtasks returns the assignment set for one new subtask index.
//
// Parameters:
//   - newIndex: New subtask index, in [0, len(table))
//
// Returns:
//   - IndexSet: Old subtask indices feeding that new subtask
func (m MappingTable) OldSubtasks(newIndex int) IndexSet {
	return m[newIndex]
}

// Complete reports whether the union of all assignment sets covers every old
// subtask index in [0, oldParallelism) exactly.
//
// A complete table guarantees no checkpointed partition is silently dropped
// during the rescale.
func (m MappingTable) Complete(oldParallelism int) bool {
	covered := make(IndexSet, oldParallelism)
	for _, subtasks := range m {
		for idx := range subtasks {
			if idx < 0 || idx >= oldParallelism {
				return false
			}
			covered.Add(idx)
		}
	}

	return len(covered) == oldParallelism
}

// Unique reports whether each old subtask index appears in at most one
// assignment set across the whole table.
//
// A non-unique table means more than one new subtask reads the same old
// partition, and downstream consumers must filter restored records by
// content.
func (m MappingTable) Unique() bool {
	seen := make(IndexSet)
	for _, subtasks := range m {
		for idx := range subtasks {
			if seen.Contains(idx) {
				return false
			}
			seen.Add(idx)
		}
	}

	return true
}

// OverlappingOldSubtasks returns every old subtask index assigned to more
// than one new subtask.
//
// Returns:
//   - IndexSet: Old indices requiring downstream content filtering
//     (empty for a unique table)
func (m MappingTable) OverlappingOldSubtasks() IndexSet {
	seen := make(IndexSet)
	overlapping := make(IndexSet)
	for _, subtasks := range m {
		for idx := range subtasks {
			if seen.Contains(idx) {
				overlapping.Add(idx)
				continue
			}
			seen.Add(idx)
		}
	}

	return overlapping
}
