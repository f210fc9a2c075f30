package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/pingpong-ledger/internal/elo"
	"github.com/mauv0809/pingpong-ledger/internal/matchlog"
	"github.com/mauv0809/pingpong-ledger/internal/metrics"
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

func ledgerFixture() []pingpong.DayEntry {
	singles := func(id, p1, p2 string, s1, s2 int) pingpong.RawMatch {
		return pingpong.RawMatch{
			ID:      id,
			Type:    "singles",
			Player1: p1,
			Player2: p2,
			Score:   &pingpong.RawScore{Player1: s1, Player2: s2},
		}
	}
	return []pingpong.DayEntry{
		{
			Date: "2025-06-02",
			Matches: []pingpong.RawMatch{
				singles("m1", "Alice", "Bob", 11, 7),
				singles("m2", "Alice", "Bob", 11, 9),
			},
		},
		{
			Date: "2025-06-09",
			Matches: []pingpong.RawMatch{
				singles("m3", "Bob", "Alice", 5, 11),
				singles("m4", "Alice", "Bob", 11, 6),
				// Missing opponent, must be skipped without aborting the run.
				{ID: "bad", Type: "singles", Player1: "Alice"},
			},
		},
	}
}

func newTestGenerator(days []pingpong.DayEntry) (*Generator, *metrics.Mock) {
	store := &matchlog.MockStore{
		GetDayEntriesFunc: func() ([]pingpong.DayEntry, error) {
			return days, nil
		},
	}
	m := metrics.NewMock()
	return NewGenerator(store, m, 0), m
}

func TestGenerate(t *testing.T) {
	g, m := newTestGenerator(ledgerFixture())

	rep, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, 4, rep.MatchCount)
	assert.Equal(t, 1, rep.SkippedRecords)
	assert.Equal(t, 1, m.RecordsSkippedCalls)
	assert.Equal(t, 1, m.StatsComputationsCalls)
	require.Len(t, m.ComputeDurations, 1)

	require.Contains(t, rep.Players, "Alice")
	assert.Equal(t, 4, rep.Players["Alice"].SinglesPlayed)
	assert.Equal(t, 4, rep.Players["Alice"].SinglesWon)
	assert.Equal(t, 71, rep.TotalPoints)
	assert.Equal(t, 4, rep.Analytics.SinglesMatches)
	assert.Len(t, rep.Expected, 4)
}

func TestGenerateSplicesHybridCurrentIntoHistory(t *testing.T) {
	g, _ := newTestGenerator(ledgerFixture())

	rep, err := g.Generate()
	require.NoError(t, err)

	overall := rep.Ratings[elo.ContextOverall]
	require.Contains(t, overall.Current, "Alice")
	require.NotEmpty(t, overall.History["Alice"])

	series := overall.History["Alice"]
	last := series[len(series)-1]
	assert.Equal(t, "2025-06-09", last.Date)
	assert.Equal(t, overall.Current["Alice"], last.Rating)

	// The margin-aware pass uses a larger K, so the spliced final point sits
	// above where the fixed-K trend alone would have ended.
	baseline := elo.NewEngine(elo.Baseline(), 0)
	events, _ := pingpong.NormalizeDays(ledgerFixture())
	baseOnly := baseline.Compute(pingpong.SortEvents(events))
	baseSeries := baseOnly[elo.ContextOverall].History["Alice"]
	require.NotEmpty(t, baseSeries)
	assert.Greater(t, last.Rating, baseSeries[len(baseSeries)-1].Rating)
}

func TestGenerateEmptyLedger(t *testing.T) {
	g, m := newTestGenerator(nil)

	rep, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, 0, rep.MatchCount)
	assert.Equal(t, 0, rep.SkippedRecords)
	assert.Empty(t, rep.Players)
	assert.Empty(t, rep.Ratings[elo.ContextOverall].Current)
	assert.Equal(t, 0, rep.TotalPoints)
	assert.Equal(t, 1, m.StatsComputationsCalls)
}
