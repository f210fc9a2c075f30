package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	StatsComputations  prometheus.Counter
	ComputeDuration    prometheus.Histogram
	RecordsSkipped     prometheus.Counter
	DigestsSent        prometheus.Counter
	DigestsFailed      prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
