package stats

import (
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// TemporalAnalysis builds the per-date activity series. Events without a
// parseable date are omitted from every date-keyed output.
func TemporalAnalysis(events []pingpong.MatchEvent) Temporal {
	t := Temporal{
		MatchesByDate: make(map[string]int),
		PointsByDate:  make(map[string]int),
	}

	for _, e := range events {
		if _, ok := pingpong.ParseDate(e.Date); !ok {
			continue
		}
		t.MatchesByDate[e.Date]++
		points := 0
		if e.Encoding == pingpong.EncodingScore {
			points = e.Score1 + e.Score2
		}
		t.PointsByDate[e.Date] += points
	}

	t.Dates = pingpong.DateAxis(events)
	t.MatchCounts = make([]int, len(t.Dates))
	t.PointCounts = make([]int, len(t.Dates))
	for i, date := range t.Dates {
		t.MatchCounts[i] = t.MatchesByDate[date]
		t.PointCounts[i] = t.PointsByDate[date]
	}

	best := -1
	for _, date := range t.Dates {
		if t.MatchesByDate[date] > best {
			best = t.MatchesByDate[date]
			t.MostActiveDate = date
		}
	}
	return t
}
