package types

// MetricsCollector defines methods for recording rescale mapping metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called from caller goroutines and must be thread-safe.
type MetricsCollector interface {
	// RecordMappingBuild records one completed mapping-table build.
	//
	// Parameters:
	//   - policy: Mapper name (e.g., "round_robin", "range")
	//   - oldParallelism: Parallelism before the rescale
	//   - newParallelism: Parallelism after the rescale
	//   - seconds: Build duration in seconds
	RecordMappingBuild(policy string, oldParallelism, newParallelism int, seconds float64)

	// RecordMappingFailure records a mapping build rejected by the policy
	// (e.g., a non-rescalable topology).
	//
	// Parameters:
	//   - policy: Mapper name
	RecordMappingFailure(policy string)

	// RecordOverlappingSubtasks records how many old subtasks ended up
	// assigned to more than one new subtask, i.e., the amount of state that
	// downstream consumers must filter by content.
	//
	// Parameters:
	//   - policy: Mapper name
	//   - count: Number of old subtasks with more than one assignee
	RecordOverlappingSubtasks(policy string, count int)
}
