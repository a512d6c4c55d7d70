package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/rescale/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Registration is lazy: collectors are created and registered on first use so
// that constructing the collector never fails and unused metric families are
// never exported.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	builds      *prometheus.CounterVec
	buildSecs   *prometheus.HistogramVec
	failures    *prometheus.CounterVec
	overlapping *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "rescale" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "rescale"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.builds = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "mapping",
			Name:      "builds_total",
			Help:      "Total mapping tables built by policy.",
		}, []string{"policy"})

		p.buildSecs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "mapping",
			Name:      "build_seconds",
			Help:      "Mapping table build duration in seconds by policy.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1us .. ~0.26s
		}, []string{"policy"})

		p.failures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "mapping",
			Name:      "failures_total",
			Help:      "Total mapping builds rejected by the policy.",
		}, []string{"policy"})

		p.overlapping = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "mapping",
			Name:      "overlapping_old_subtasks",
			Help:      "Old subtasks assigned to more than one new subtask in the last build (requires downstream filtering).",
		}, []string{"policy"})

		for _, c := range []prometheus.Collector{p.builds, p.buildSecs, p.failures, p.overlapping} {
			if err := p.reg.Register(c); err != nil {
				// Already-registered collectors are reused; other
				// registration failures leave the family silently unexported.
				if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
					switch existing := are.ExistingCollector.(type) {
					case *prometheus.CounterVec:
						switch c {
						case p.builds:
							p.builds = existing
						case p.failures:
							p.failures = existing
						}
					case *prometheus.HistogramVec:
						p.buildSecs = existing
					case *prometheus.GaugeVec:
						p.overlapping = existing
					}
				}
			}
		}
	})
}

// RecordMappingBuild records one completed mapping-table build.
func (p *PrometheusCollector) RecordMappingBuild(policy string, _ /* oldParallelism */, _ /* newParallelism */ int, seconds float64) {
	p.ensureRegistered()
	p.builds.WithLabelValues(policy).Inc()
	p.buildSecs.WithLabelValues(policy).Observe(seconds)
}

// RecordMappingFailure records a mapping build rejected by the policy.
func (p *PrometheusCollector) RecordMappingFailure(policy string) {
	p.ensureRegistered()
	p.failures.WithLabelValues(policy).Inc()
}

// RecordOverlappingSubtasks records the overlap size of the last build.
func (p *PrometheusCollector) RecordOverlappingSubtasks(policy string, count int) {
	p.ensureRegistered()
	p.overlapping.WithLabelValues(policy).Set(float64(count))
}
