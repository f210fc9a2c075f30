package notifier

import (
	"github.com/mauv0809/pingpong-ledger/internal/report"
)

var _ Notifier = (*MockNotifier)(nil)

// MockNotifier is a mock implementation of the Notifier interface for testing.
type MockNotifier struct {
	SendDigestFunc      func(rep *report.Report, dryRun bool) error
	SendLeaderboardFunc func(rep *report.Report, dryRun bool) error

	SendDigestCalls      []*report.Report
	SendLeaderboardCalls []*report.Report
}

func (m *MockNotifier) SendDigest(rep *report.Report, dryRun bool) error {
	m.SendDigestCalls = append(m.SendDigestCalls, rep)
	if m.SendDigestFunc != nil {
		return m.SendDigestFunc(rep, dryRun)
	}
	return nil
}

func (m *MockNotifier) SendLeaderboard(rep *report.Report, dryRun bool) error {
	m.SendLeaderboardCalls = append(m.SendLeaderboardCalls, rep)
	if m.SendLeaderboardFunc != nil {
		return m.SendLeaderboardFunc(rep, dryRun)
	}
	return nil
}
