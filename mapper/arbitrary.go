package mapper

import "github.com/arloliu/rescale/types"

// Arbitrary redistributes extra state without any specific placement
// guarantee beyond completeness.
type Arbitrary struct {
	delegate RoundRobin
}

var _ types.SubtaskMapper = (*Arbitrary)(nil)

// NewArbitrary creates a new arbitrary mapper.
//
// The policy promises only that some valid, complete assignment is produced.
// It currently delegates to round-robin, but keeps its own identity so the
// delegation can change without affecting callers that picked it for its
// weaker contract.
//
// Returns:
//   - *Arbitrary: Initialized arbitrary mapper
func NewArbitrary() *Arbitrary {
	return &Arbitrary{}
}

// Name returns the policy identifier "arbitrary".
func (a *Arbitrary) Name() string {
	return "arbitrary"
}

// OldSubtasks delegates to the round-robin assignment.
func (a *Arbitrary) OldSubtasks(newIndex, oldParallelism, newParallelism int) (types.IndexSet, error) {
	return a.delegate.OldSubtasks(newIndex, oldParallelism, newParallelism)
}

// Unique reports the uniqueness of the delegated assignment.
func (a *Arbitrary) Unique(oldParallelism, newParallelism int) bool {
	return a.delegate.Unique(oldParallelism, newParallelism)
}
