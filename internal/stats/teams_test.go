package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

func TestTeamDynamics(t *testing.T) {
	ac := pingpong.TeamRef{Lead: "Alice", Partner: "Carol"}
	bd := pingpong.TeamRef{Lead: "Bob", Partner: "Dave"}
	// Same pair with members swapped must land on the same partnership.
	ca := pingpong.TeamRef{Lead: "Carol", Partner: "Alice"}

	events := []pingpong.MatchEvent{
		doublesEvent("2025-06-02", ac, bd, 11, 5),
		doublesEvent("2025-06-02", ca, bd, 9, 11),
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 7), // ignored
	}

	dynamics := TeamDynamics(events)
	require.Len(t, dynamics, 2)

	pair := dynamics["Alice>Carol"]
	require.NotNil(t, pair)
	assert.Equal(t, "Alice", pair.Player1)
	assert.Equal(t, "Carol", pair.Player2)
	assert.Equal(t, 2, pair.Played)
	assert.Equal(t, 1, pair.Won)
	assert.Equal(t, 50.0, pair.WinRate)
	assert.Equal(t, 2, pair.ScoreMatches)
	assert.Equal(t, 20, pair.PointsScored)
	assert.Equal(t, 16, pair.PointsConceded)
	assert.Equal(t, 4, pair.PointDiff)
	assert.Equal(t, 2.0, pair.PointDiffPerGame)
}

func TestHeadToHeadTable(t *testing.T) {
	events := []pingpong.MatchEvent{
		singlesEvent("2025-06-02", "Bob", "Alice", 11, 7),
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 9),
		singlesEvent("2025-06-09", "Alice", "Bob", 11, 4),
		doublesEvent("2025-06-09",
			pingpong.TeamRef{Lead: "Alice", Partner: "Carol"},
			pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},
			11, 5), // doubles never feed head-to-head
	}

	records := HeadToHeadTable(events)
	require.Len(t, records, 1)

	rec := records["Alice>Bob"]
	require.NotNil(t, rec)
	assert.Equal(t, "Alice", rec.P1)
	assert.Equal(t, "Bob", rec.P2)
	assert.Equal(t, 3, rec.Matches)
	assert.Equal(t, 2, rec.WinsP1)
	assert.Equal(t, 1, rec.WinsP2)
	assert.Equal(t, 66.7, rec.WinRateP1)
	assert.Equal(t, 33.3, rec.WinRateP2)
}

func TestHeadToHeadTieCountsMatchOnly(t *testing.T) {
	events := []pingpong.MatchEvent{
		singlesEvent("2025-06-02", "Alice", "Bob", 10, 10),
	}

	records := HeadToHeadTable(events)
	rec := records["Alice>Bob"]
	require.NotNil(t, rec)
	assert.Equal(t, 1, rec.Matches)
	assert.Equal(t, 0, rec.WinsP1)
	assert.Equal(t, 0, rec.WinsP2)
}
