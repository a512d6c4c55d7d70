package mapper

import "github.com/arloliu/rescale/types"

// RoundRobin redistributes old subtask state in a round-robin fashion.
type RoundRobin struct{}

var _ types.SubtaskMapper = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin mapper.
//
// The policy assigns old subtask indices to the new subtask sharing their
// residue class modulo newParallelism. Every old subtask lands on exactly one
// new subtask, so no downstream filtering is ever needed, and no new subtask
// reads more than ceil(oldParallelism/newParallelism) old subtasks.
//
// Returns:
//   - *RoundRobin: Initialized round-robin mapper
//
// Example:
//
//	table, err := rescale.BuildMapping(10, 4, mapper.NewRoundRobin())
//	// table: 0→{0,4,8} 1→{1,5,9} 2→{2,6} 3→{3,7}
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Name returns the policy identifier "round_robin".
func (rr *RoundRobin) Name() string {
	return "round_robin"
}

// OldSubtasks collects every old index reachable from newIndex by repeatedly
// adding newParallelism: { newIndex + k*newParallelism : k ≥ 0 } intersected
// with [0, oldParallelism).
//
// When upscaling, new indices at or above oldParallelism receive the empty
// set: those subtasks start with no restored state.
func (rr *RoundRobin) OldSubtasks(newIndex, oldParallelism, newParallelism int) (types.IndexSet, error) {
	subtasks := make(types.IndexSet, oldParallelism/newParallelism+1)
	for subtask := newIndex; subtask < oldParallelism; subtask += newParallelism {
		subtasks.Add(subtask)
	}

	return subtasks, nil
}

// Unique always reports true: residue classes modulo newParallelism are
// disjoint, so each old subtask feeds exactly one new subtask.
func (rr *RoundRobin) Unique(_ /* oldParallelism */, _ /* newParallelism */ int) bool {
	return true
}
