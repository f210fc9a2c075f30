package stats

import (
	"sort"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// MatchAnalytics summarizes the whole log: totals per kind, average score
// margin over score-encoded matches, the five most common matchups, and
// how play distributes over weekdays.
func MatchAnalytics(events []pingpong.MatchEvent) Analytics {
	a := Analytics{
		DayFrequency: make(map[string]int),
	}

	matchups := make(map[string]int)
	var margins []int

	for _, e := range events {
		a.TotalMatches++
		var key string
		if e.Kind == pingpong.KindSingles {
			a.SinglesMatches++
			key = pingpong.PairKey(e.Player1, e.Player2)
		} else {
			a.DoublesMatches++
			k1, k2 := e.Team1.Key(), e.Team2.Key()
			if k1 > k2 {
				k1, k2 = k2, k1
			}
			key = k1 + " vs " + k2
		}
		matchups[key]++

		if e.Encoding == pingpong.EncodingScore && e.Score1 > 0 && e.Score2 > 0 {
			margins = append(margins, e.Margin())
		}
	}

	for _, date := range pingpong.DateAxis(events) {
		t, _ := pingpong.ParseDate(date)
		a.DayFrequency[t.Weekday().String()]++
	}

	if len(margins) > 0 {
		total := 0
		for _, m := range margins {
			total += m
		}
		a.AvgScoreDifference = round1(float64(total) / float64(len(margins)))
	}

	a.CommonMatchups = topMatchups(matchups, 5)
	return a
}

func topMatchups(matchups map[string]int, n int) []MatchupCount {
	counts := make([]MatchupCount, 0, len(matchups))
	for key, count := range matchups {
		counts = append(counts, MatchupCount{Matchup: key, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Matchup < counts[j].Matchup
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// TotalPoints sums every point scored across score-encoded matches.
func TotalPoints(events []pingpong.MatchEvent) int {
	total := 0
	for _, e := range events {
		if e.Encoding == pingpong.EncodingScore {
			total += e.Score1 + e.Score2
		}
	}
	return total
}
