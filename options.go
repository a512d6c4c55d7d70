package rescale

import (
	"github.com/arloliu/rescale/internal/logger"
	"github.com/arloliu/rescale/internal/metrics"
	"github.com/arloliu/rescale/types"
)

// Option configures a mapping build with optional dependencies.
type Option func(*buildOptions)

// buildOptions holds optional BuildMapping configuration.
type buildOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// newBuildOptions applies options over silent defaults.
func newBuildOptions(opts []Option) buildOptions {
	o := buildOptions{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets a logger for mapping builds.
//
// Parameters:
//   - logger: Logger implementation (slog-compatible)
//
// Returns:
//   - Option: Functional option for BuildMapping
//
// Example:
//
//	log := logging.NewSlog(slog.Default())
//	table, err := rescale.BuildMapping(old, new, m, rescale.WithLogger(log))
func WithLogger(logger types.Logger) Option {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a metrics collector for mapping builds.
//
// Parameters:
//   - collector: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for BuildMapping
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "")
//	table, err := rescale.BuildMapping(old, new, m, rescale.WithMetrics(collector))
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *buildOptions) {
		if collector != nil {
			o.metrics = collector
		}
	}
}
