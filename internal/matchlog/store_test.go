package matchlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/pingpong-ledger/internal/database"
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

func setupTestStore(t *testing.T) LedgerStore {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(teardown)
	return New(db)
}

func singlesRaw(id, p1, p2 string, s1, s2 int) pingpong.RawMatch {
	return pingpong.RawMatch{
		ID:      id,
		Type:    "singles",
		Player1: p1,
		Player2: p2,
		Score:   &pingpong.RawScore{Player1: s1, Player2: s2},
	}
}

func TestUpsertDayRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	entry := pingpong.DayEntry{
		Date: "2025-06-02",
		Matches: []pingpong.RawMatch{
			singlesRaw("m1", "Alice", "Bob", 11, 7),
			{
				ID:   "m2",
				Type: "doubles",
				Team1: &pingpong.RawTeam{Server: "Alice", Partner: "Carol"},
				Team2: &pingpong.RawTeam{Receiver: "Bob", Partner: "Dave"},
				Score: &pingpong.RawScore{Team1: 9, Team2: 11},
			},
		},
	}
	require.NoError(t, s.UpsertDay(entry))

	entries, err := s.GetDayEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-06-02", entries[0].Date)
	require.Len(t, entries[0].Matches, 2)
	assert.Equal(t, "m1", entries[0].Matches[0].ID)
	assert.Equal(t, "m2", entries[0].Matches[1].ID)
	require.NotNil(t, entries[0].Matches[1].Team1)
	assert.Equal(t, "Carol", entries[0].Matches[1].Team1.Partner)
	assert.Equal(t, 11, entries[0].Matches[0].Score.Player1)
}

func TestUpsertDayReplacesExistingDate(t *testing.T) {
	s := setupTestStore(t)

	first := pingpong.DayEntry{
		Date:    "2025-06-02",
		Matches: []pingpong.RawMatch{singlesRaw("m1", "Alice", "Bob", 11, 7)},
	}
	require.NoError(t, s.UpsertDay(first))

	second := pingpong.DayEntry{
		Date: "2025-06-02",
		Matches: []pingpong.RawMatch{
			singlesRaw("m2", "Carol", "Dave", 11, 9),
			singlesRaw("m3", "Alice", "Carol", 8, 11),
		},
	}
	require.NoError(t, s.UpsertDay(second))

	entries, err := s.GetDayEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Matches, 2)
	assert.Equal(t, "m2", entries[0].Matches[0].ID)
	assert.Equal(t, "m3", entries[0].Matches[1].ID)
}

func TestGetDayEntriesOrdersByDateAndPosition(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.UpsertDays([]pingpong.DayEntry{
		{
			Date:    "2025-06-09",
			Matches: []pingpong.RawMatch{singlesRaw("m3", "Alice", "Bob", 11, 5)},
		},
		{
			Date: "2025-06-02",
			Matches: []pingpong.RawMatch{
				singlesRaw("m1", "Alice", "Bob", 11, 7),
				singlesRaw("m2", "Bob", "Alice", 11, 9),
			},
		},
	}))

	entries, err := s.GetDayEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-06-02", entries[0].Date)
	assert.Equal(t, "2025-06-09", entries[1].Date)
	assert.Equal(t, "m1", entries[0].Matches[0].ID)
	assert.Equal(t, "m2", entries[0].Matches[1].ID)
}

func TestAddPlayerIsIdempotent(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.AddPlayer("Alice"))
	require.NoError(t, s.AddPlayer("Alice"))
	require.NoError(t, s.AddPlayer("Bob"))

	players, err := s.GetRegisteredPlayers()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, players)
}

func TestClear(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.UpsertDay(pingpong.DayEntry{
		Date:    "2025-06-02",
		Matches: []pingpong.RawMatch{singlesRaw("m1", "Alice", "Bob", 11, 7)},
	}))
	require.NoError(t, s.AddPlayer("Alice"))

	s.Clear()

	entries, err := s.GetDayEntries()
	require.NoError(t, err)
	assert.Empty(t, entries)
	players, err := s.GetRegisteredPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestEnsureIDs(t *testing.T) {
	entries := []pingpong.DayEntry{
		{
			Date: "2025-06-02",
			Matches: []pingpong.RawMatch{
				singlesRaw("m1", "Alice", "Bob", 11, 7),
				singlesRaw("", "Carol", "Dave", 11, 9),
				singlesRaw("", "Alice", "Carol", 8, 11),
			},
		},
	}

	assigned := EnsureIDs(entries)
	assert.Equal(t, 2, assigned)
	assert.Equal(t, "m1", entries[0].Matches[0].ID)
	assert.NotEmpty(t, entries[0].Matches[1].ID)
	assert.NotEmpty(t, entries[0].Matches[2].ID)
	assert.NotEqual(t, entries[0].Matches[1].ID, entries[0].Matches[2].ID)

	// Second pass finds nothing left to assign.
	assert.Equal(t, 0, EnsureIDs(entries))
}
