package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	collector := NewPrometheus(nil, "")

	require.NotNil(t, collector)
	require.Equal(t, "rescale", collector.namespace)
}

func TestPrometheusCollector_RecordMappingBuild(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "rescale")

	collector.RecordMappingBuild("round_robin", 10, 4, 0.00001)
	collector.RecordMappingBuild("round_robin", 10, 4, 0.00002)
	collector.RecordMappingBuild("range", 4, 8, 0.00001)

	require.Equal(t, float64(2),
		testutil.ToFloat64(collector.builds.WithLabelValues("round_robin")))
	require.Equal(t, float64(1),
		testutil.ToFloat64(collector.builds.WithLabelValues("range")))
}

func TestPrometheusCollector_RecordMappingFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "rescale")

	collector.RecordMappingFailure("unsupported")

	require.Equal(t, float64(1),
		testutil.ToFloat64(collector.failures.WithLabelValues("unsupported")))
}

func TestPrometheusCollector_RecordOverlappingSubtasks(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "rescale")

	collector.RecordOverlappingSubtasks("full", 5)
	collector.RecordOverlappingSubtasks("full", 3)

	require.Equal(t, float64(3),
		testutil.ToFloat64(collector.overlapping.WithLabelValues("full")), "gauge keeps the last value")
}

func TestPrometheusCollector_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewPrometheus(reg, "rescale")
	second := NewPrometheus(reg, "rescale")

	first.RecordMappingBuild("first", 2, 1, 0.00001)

	// Re-registration on the same registry reuses the existing families.
	require.NotPanics(t, func() {
		second.RecordMappingBuild("first", 2, 1, 0.00001)
	})
	require.Equal(t, float64(2),
		testutil.ToFloat64(second.builds.WithLabelValues("first")))
}
