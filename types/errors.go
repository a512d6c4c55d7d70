package types

import "errors"

// Sentinel errors for the Rescale library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Mapping errors - Public API errors returned when building a mapping table.
var (
	// ErrNotRescalable is returned by the unsupported policy: the partitioning
	// topology in use cannot be redistributed across a parallelism change.
	// Reaching it indicates a configuration defect, not a transient fault;
	// change the partitioner to a rescalable one or add an explicit shuffle.
	ErrNotRescalable = errors.New("cannot rescale the given pointwise partitioner; change the partitioner to forward or rescale, or add an explicit shuffle")

	// ErrInvalidParallelism is returned when a parallelism is less than 1.
	ErrInvalidParallelism = errors.New("parallelism must be at least 1")

	// ErrMapperRequired is returned when the subtask mapper is nil.
	ErrMapperRequired = errors.New("subtask mapper is required")
)

// Key-group errors - Errors from the key-group assignment leaf.
var (
	// ErrInvalidUniverseSize is returned when constructing an assigner with a
	// non-positive universe size or one above the supported maximum.
	ErrInvalidUniverseSize = errors.New("invalid key-group universe size")

	// ErrAssignerRequired is returned when the range policy has no key-group
	// assigner to consult.
	ErrAssignerRequired = errors.New("key-group assigner is required")
)
