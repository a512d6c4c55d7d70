// Package rescale computes which old subtasks must be read to restore the
// state of each new subtask when a stream-processing operator changes its
// parallelism across a checkpoint restore.
//
// Rescale is a pure library: there is no I/O, no shared mutable state, and no
// goroutine anywhere in it. A restore orchestrator picks one redistribution
// policy per rescale event, builds the complete new-to-old mapping table in
// one pass, uses it to decide which persisted state blobs each new subtask
// reads, and discards it.
//
// # Quick Start
//
// Build the mapping for a downscale from 10 to 4 subtasks:
//
//	import (
//	    "github.com/arloliu/rescale"
//	    "github.com/arloliu/rescale/mapper"
//	)
//
//	table, err := rescale.BuildMapping(10, 4, mapper.NewRoundRobin())
//	if err != nil {
//	    return err
//	}
//	for newIndex, oldSubtasks := range table {
//	    read(newIndex, oldSubtasks.Sorted()) // 0:{0 4 8} 1:{1 5 9} 2:{2 6} 3:{3 7}
//	}
//
// # Guarantees
//
//   - Completeness: for every supported policy, the union of all assignment
//     sets is exactly [0, oldParallelism) — no checkpointed partition is
//     silently dropped.
//   - Totality: the table always has exactly newParallelism entries, empty
//     sets included; it is never partial.
//   - Determinism: every policy is a pure function of its three integer
//     inputs.
//
// Assignments may be unique (each old subtask feeds exactly one new subtask)
// or non-unique (several new subtasks read the same old subtask and filter
// records by content downstream). MappingTable.Unique and
// MappingTable.OverlappingOldSubtasks report which case a built table is in;
// SubtaskMapper.Unique predicts it without building.
//
// # Policies
//
// The mapper package provides the built-in policies: RoundRobin (default),
// Range (key-group aligned, for keyed exchanges), First, Full, Arbitrary, and
// Unsupported. See the mapper package documentation for a selection guide.
//
// # Observability
//
// Logging and metrics are off by default and opt-in per build. The logging
// package adapts log/slog; any MetricsCollector implementation can be
// plugged in:
//
//	table, err := rescale.BuildMapping(oldP, newP, m,
//	    rescale.WithLogger(logging.NewSlog(slog.Default())),
//	    rescale.WithMetrics(myCollector),
//	)
package rescale
