package cbir

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	workers          int
}

// Option configures a Ranker.
type Option func(*options)

// WithWorkers sets the number of goroutines used to resolve and score
// candidates. Values below 2 select the sequential scan.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring.
// If nil is passed, metrics are disabled.
//
// Example:
//
//	metrics := &cbir.BasicMetricsCollector{}
//	r := cbir.NewRanker(dist, cbir.WithMetricsCollector(metrics))
//	// ... rank ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RankCount, stats.RankAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for ranking runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cbir.NewJSONLogger(os.Stderr, slog.LevelInfo)
//	r := cbir.NewRanker(dist, cbir.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		workers:          1,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
