// Package metrics provides metrics collector implementations for the Rescale library.
package metrics

import "github.com/arloliu/rescale/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordMappingBuild discards the mapping build metric.
func (n *NopMetrics) RecordMappingBuild(_ /* policy */ string, _ /* oldParallelism */, _ /* newParallelism */ int, _ /* seconds */ float64) {
	// No-op
}

// RecordMappingFailure discards the mapping failure metric.
func (n *NopMetrics) RecordMappingFailure(_ /* policy */ string) {
	// No-op
}

// RecordOverlappingSubtasks discards the overlap metric.
func (n *NopMetrics) RecordOverlappingSubtasks(_ /* policy */ string, _ /* count */ int) {
	// No-op
}
