package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a no-op Metrics implementation that records call counts for
// assertions in tests. It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	StatsComputationsCalls int
	ComputeDurations       []float64
	RecordsSkippedCalls    int
	DigestSentCalls        int
	DigestFailedCalls      int
	StartupTimes           []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncStatsComputations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatsComputationsCalls++
}

func (m *Mock) ObserveComputeDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ComputeDurations = append(m.ComputeDurations, seconds)
}

func (m *Mock) IncRecordsSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordsSkippedCalls++
}

func (m *Mock) IncDigestSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestSentCalls++
}

func (m *Mock) IncDigestFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DigestFailedCalls++
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, seconds)
}
