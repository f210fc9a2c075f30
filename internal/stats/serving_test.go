package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

func TestServingRotationsDirectedPairs(t *testing.T) {
	events := []pingpong.MatchEvent{
		doublesEvent("2025-06-02",
			pingpong.TeamRef{Lead: "Alice", Partner: "Carol"}, // Alice serves
			pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},    // Bob receives
			11, 5),
	}

	s := ServingRotations(events)

	// Rotation cycle: Alice → Bob → Carol → Dave → Alice. Wins follow the
	// "from" player's team.
	require.Contains(t, s.PlayerPairs, "Alice")
	assert.Equal(t, 1, s.PlayerPairs["Alice"]["Bob"].Matches)
	assert.Equal(t, 1, s.PlayerPairs["Alice"]["Bob"].Wins)
	assert.Equal(t, 0, s.PlayerPairs["Bob"]["Carol"].Wins)
	assert.Equal(t, 1, s.PlayerPairs["Carol"]["Dave"].Wins)
	assert.Equal(t, 0, s.PlayerPairs["Dave"]["Alice"].Wins)
	assert.Equal(t, 100.0, s.PlayerPairs["Alice"]["Bob"].WinRate)
}

func TestServingRotationsConfigurations(t *testing.T) {
	events := []pingpong.MatchEvent{
		// Alice&Carol vs Bob&Dave, first configuration wins.
		doublesEvent("2025-06-02",
			pingpong.TeamRef{Lead: "Alice", Partner: "Carol"},
			pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},
			11, 5),
		// Same four players, sides flipped: still the same configuration,
		// and the win flips back to the Alice&Carol side.
		doublesEvent("2025-06-09",
			pingpong.TeamRef{Lead: "Dave", Partner: "Bob"},
			pingpong.TeamRef{Lead: "Carol", Partner: "Alice"},
			7, 11),
	}

	s := ServingRotations(events)

	group, ok := s.MatchGroups["Alice,Bob,Carol,Dave"]
	require.True(t, ok)
	assert.Equal(t, 2, group.Matches)
	require.Len(t, group.Configurations, 1)

	config, ok := group.Configurations["Alice,Carol,Bob,Dave"]
	require.True(t, ok, "config key is left-normalized")
	assert.Equal(t, 2, config.Matches)
	assert.Equal(t, 2, config.Wins)
	assert.Equal(t, 100.0, config.WinRate)
}

func TestServingRotationsSkipsNonQualifyingMatches(t *testing.T) {
	events := []pingpong.MatchEvent{
		singlesEvent("2025-06-02", "Alice", "Bob", 11, 7),
		{
			Date:     "2025-06-02",
			Kind:     pingpong.KindDoubles,
			Team1:    pingpong.TeamRef{Lead: "Alice", Partner: "Carol"},
			Team2:    pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},
			Encoding: pingpong.EncodingWinLoss,
			Winner:   pingpong.Side1,
		},
		doublesEvent("2025-06-02",
			pingpong.TeamRef{Lead: "Alice", Partner: "Carol"},
			pingpong.TeamRef{Lead: "Bob", Partner: "Dave"},
			10, 10), // tie
	}

	s := ServingRotations(events)
	assert.Empty(t, s.PlayerPairs)
	assert.Empty(t, s.MatchGroups)
}
