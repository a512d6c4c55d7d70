package mapper

import (
	"github.com/arloliu/rescale/keygroup"
	"github.com/arloliu/rescale/types"
)

// Range remaps old key-group ranges onto new key-group ranges.
type Range struct {
	assigner types.KeyGroupAssigner
}

var _ types.SubtaskMapper = (*Range)(nil)

// RangeOption configures a Range mapper.
type RangeOption func(*Range)

// NewRange creates a new range-preserving mapper.
//
// The policy computes the key-group range a new subtask owns, then maps that
// range's boundary key groups back to the old subtasks that owned them, and
// returns the whole inclusive span of old indices in between. For moderate
// rescaling (between 0.5x and 2x) most new subtasks read exactly two old
// subtasks, and only the subtasks at range split points receive state they
// must filter downstream.
//
// Both directions of the boundary computation run against the same key-group
// assigner, so they always agree on the universe size. The universe size
// itself cancels out of the result as long as it is consistent, which is why
// the default assigner is safe for any parallelism pair.
//
// Parameters:
//   - opts: Optional configuration (WithAssigner)
//
// Returns:
//   - *Range: Initialized range mapper
//
// Example:
//
//	m := mapper.NewRange()
//	table, err := rescale.BuildMapping(oldParallelism, newParallelism, m)
func NewRange(opts ...RangeOption) *Range {
	r := &Range{
		assigner: keygroup.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithAssigner sets a custom key-group assigner.
//
// The assigner must be the same one (or one with the same universe size) used
// by the keyed exchange whose state is being restored; a mismatched universe
// size silently misaligns range boundaries.
//
// Parameters:
//   - assigner: Key-group assigner to consult for both mapping directions
//
// Returns:
//   - RangeOption: Configuration option
func WithAssigner(assigner types.KeyGroupAssigner) RangeOption {
	return func(r *Range) {
		r.assigner = assigner
	}
}

// Name returns the policy identifier "range".
func (r *Range) Name() string {
	return "range"
}

// OldSubtasks computes the key-group range owned by newIndex at
// newParallelism, maps its start and end key groups back to the old subtasks
// owning them, and returns the inclusive span between those two old indices.
func (r *Range) OldSubtasks(newIndex, oldParallelism, newParallelism int) (types.IndexSet, error) {
	if r.assigner == nil {
		return nil, types.ErrAssignerRequired
	}

	newRange := r.assigner.RangeForIndex(newParallelism, newIndex)
	start := r.assigner.IndexForKeyGroup(oldParallelism, newRange.Start)
	end := r.assigner.IndexForKeyGroup(oldParallelism, newRange.End)

	subtasks := make(types.IndexSet, end-start+1)
	for subtask := start; subtask <= end; subtask++ {
		subtasks.Add(subtask)
	}

	return subtasks, nil
}

// Unique reports true only when newParallelism divides oldParallelism: every
// new range boundary then coincides with an old range boundary and no old
// subtask is split. Any other scale change splits at least one old range
// across two new subtasks.
func (r *Range) Unique(oldParallelism, newParallelism int) bool {
	return oldParallelism%newParallelism == 0
}
