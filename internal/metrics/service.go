package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Metrics = (*Service)(nil)

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		StatsComputations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingpong_stats_computations_total",
			Help: "The total number of full statistics computations run.",
		}),
		ComputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pingpong_stats_compute_duration_seconds",
			Help:    "The duration of individual statistics computations.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RecordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingpong_ledger_records_skipped_total",
			Help: "The total number of malformed ledger records skipped during normalization.",
		}),
		DigestsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingpong_digests_sent_total",
			Help: "The total number of Slack digests successfully sent.",
		}),
		DigestsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pingpong_digests_failed_total",
			Help: "The total number of Slack digests that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pingpong_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.StatsComputations,
		s.ComputeDuration,
		s.RecordsSkipped,
		s.DigestsSent,
		s.DigestsFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncStatsComputations() {
	s.StatsComputations.Inc()
}

func (s *Service) ObserveComputeDuration(seconds float64) {
	s.ComputeDuration.Observe(seconds)
}

func (s *Service) IncRecordsSkipped() {
	s.RecordsSkipped.Inc()
}

func (s *Service) IncDigestSent() {
	s.DigestsSent.Inc()
}

func (s *Service) IncDigestFailed() {
	s.DigestsFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
