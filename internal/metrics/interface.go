package metrics

// Metrics defines the instrumentation hooks the rest of the application
// records against. Keeping an interface here keeps Prometheus out of the
// engines and makes tests trivial.
type Metrics interface {
	IncStatsComputations()
	ObserveComputeDuration(seconds float64)
	IncRecordsSkipped()
	IncDigestSent()
	IncDigestFailed()
	SetStartupTime(seconds float64)
}
