package mapper

import "github.com/arloliu/rescale/types"

// Unsupported marks a partitioning topology that cannot be rescaled.
type Unsupported struct{}

var _ types.SubtaskMapper = (*Unsupported)(nil)

// NewUnsupported creates a mapper that rejects every query.
//
// It stands in for strictly point-to-point exchanges whose state cannot be
// redistributed. A restore that reaches this policy after a parallelism
// change has a configuration defect; the topology must be changed (e.g., by
// adding an explicit shuffle) rather than retried.
//
// Returns:
//   - *Unsupported: Initialized always-failing mapper
func NewUnsupported() *Unsupported {
	return &Unsupported{}
}

// Name returns the policy identifier "unsupported".
func (u *Unsupported) Name() string {
	return "unsupported"
}

// OldSubtasks always fails with types.ErrNotRescalable and never returns a
// set.
func (u *Unsupported) OldSubtasks(_ /* newIndex */, _ /* oldParallelism */, _ /* newParallelism */ int) (types.IndexSet, error) {
	return nil, types.ErrNotRescalable
}

// Unique reports false; no assignment exists to classify.
func (u *Unsupported) Unique(_ /* oldParallelism */, _ /* newParallelism */ int) bool {
	return false
}
