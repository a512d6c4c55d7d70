// Package types provides core type definitions and interfaces for the Rescale library.
//
// This package contains shared types that are used across multiple packages in the
// Rescale library. By keeping these types in a separate package, we avoid import
// cycles between the main rescale package and its internal implementations.
//
// Key types:
//   - SubtaskMapper: Redistribution policy interface
//   - IndexSet: Set of old subtask indices
//   - MappingTable: Total new-to-old subtask mapping
//   - KeyGroupRange: Contiguous interval of key groups
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
