// Package mapper provides built-in subtask redistribution policies.
//
// A subtask mapper decides which old subtasks must be read to restore one new
// subtask when an operator's parallelism changes across a checkpoint restore.
// The package includes six built-in policies:
//
//   - RoundRobin: Residue-class redistribution (the general-purpose default)
//   - Range: Key-group-range-preserving redistribution for keyed exchanges
//   - First: Funnels all old state to new subtask 0
//   - Full: Replicates all old state to every new subtask
//   - Arbitrary: Free-form redistribution, currently identical to RoundRobin
//   - Unsupported: Always fails; marks non-rescalable topologies
//
// # Policy Selection Guide
//
// RoundRobin:
//   - Use when old and new partitions have no structural correlation
//   - Always unique: no downstream filtering needed
//   - Minimal per-subtask read set (at most ceil(old/new) old subtasks)
//
// Range:
//   - Use for keyed exchanges partitioned by key-group range
//   - Keeps assignments aligned with key-group ownership, so most restored
//     state lands on the subtask that will own it
//   - Non-unique at range split points: those subtasks filter downstream
//
// First:
//   - Use when all leftover state can be funneled to a single successor
//   - New subtask 0 reads everything; all others start empty
//
// Full:
//   - Maximum overhead: every new subtask reads every old subtask and relies
//     entirely on downstream filtering
//   - Last resort when no structural correlation exists and record ownership
//     can only be decided by content
//
// Arbitrary:
//   - Declares that any complete assignment is acceptable
//   - Currently delegates to RoundRobin; the delegation may change, so
//     callers that need round-robin semantics should ask for RoundRobin
//
// Unsupported:
//   - Returned set is never produced; every call fails with
//     types.ErrNotRescalable
//   - Reaching it means a strictly point-to-point topology survived a
//     parallelism change, which is a configuration defect
//
// Custom policies can be implemented by satisfying the types.SubtaskMapper
// interface.
package mapper
