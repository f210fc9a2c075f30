package notifier

import (
	"github.com/mauv0809/pingpong-ledger/internal/report"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendDigest posts the full digest: leaderboard, upsets and activity.
	SendDigest(rep *report.Report, dryRun bool) error
	// SendLeaderboard posts only the current ratings leaderboard.
	SendLeaderboard(rep *report.Report, dryRun bool) error
}
