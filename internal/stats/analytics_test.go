package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

func TestMatchAnalytics(t *testing.T) {
	events := []pingpong.MatchEvent{
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 7), // Monday
		singlesEvent("2025-06-02", "Bob", "Alice", 11, 9),
		doublesEvent("2025-06-07", // Saturday
			pingpong.TeamRef{Lead: "Alice", Partner: "Carol"},
			pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},
			11, 5),
		singlesWinLoss("2025-06-07", "Alice", "Bob", pingpong.Side1),
	}

	a := MatchAnalytics(events)
	assert.Equal(t, 4, a.TotalMatches)
	assert.Equal(t, 3, a.SinglesMatches)
	assert.Equal(t, 1, a.DoublesMatches)

	// Margins: 4, 2, 6 → 4.0. The winloss match carries no margin.
	assert.Equal(t, 4.0, a.AvgScoreDifference)

	assert.Equal(t, 1, a.DayFrequency["Monday"])
	assert.Equal(t, 1, a.DayFrequency["Saturday"])

	require.NotEmpty(t, a.CommonMatchups)
	assert.Equal(t, "Alice>Bob", a.CommonMatchups[0].Matchup)
	assert.Equal(t, 3, a.CommonMatchups[0].Count)

	// Doubles matchup key pairs team identities in sorted order.
	assert.Equal(t, "Alice>Carol vs Bob>Dave", a.CommonMatchups[1].Matchup)
}

func TestMatchAnalyticsIgnoresZeroScoreMargins(t *testing.T) {
	events := []pingpong.MatchEvent{
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 0),
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 8),
	}

	a := MatchAnalytics(events)
	// The 11-0 margin is excluded: a zero score marks an incompletely
	// recorded game.
	assert.Equal(t, 3.0, a.AvgScoreDifference)
}

func TestTotalPoints(t *testing.T) {
	events := []pingpong.MatchEvent{
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 7),
		singlesWinLoss("2025-06-02", "Alice", "Bob", pingpong.Side1),
		doublesEvent("2025-06-02",
			pingpong.TeamRef{Lead: "Alice", Partner: "Carol"},
			pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},
			11, 9),
	}

	assert.Equal(t, 38, TotalPoints(events))
}
