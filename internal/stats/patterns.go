package stats

import (
	"sort"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// ScorePatternAnalysis studies score-encoded matches: point distribution,
// median margin, and the closest / most one-sided games. The closest and
// decisive lists only cover singles for now.
func ScorePatternAnalysis(events []pingpong.MatchEvent) ScorePatterns {
	p := ScorePatterns{
		ScoreDistribution: make(map[int]int),
	}

	var allScores []int
	var margins []int

	for _, e := range events {
		if e.Encoding != pingpong.EncodingScore {
			continue
		}
		allScores = append(allScores, e.Score1, e.Score2)
		margins = append(margins, e.Margin())
		p.ScoreDistribution[e.Score1]++
		p.ScoreDistribution[e.Score2]++

		if e.Kind != pingpong.KindSingles {
			continue
		}
		info := MatchInfo{
			Date:       e.Date,
			Player1:    e.Player1,
			Player2:    e.Player2,
			Score:      e.ScoreLabel(),
			Difference: e.Margin(),
		}
		if info.Difference <= 2 {
			p.ClosestMatches = append(p.ClosestMatches, info)
		} else if info.Difference >= 10 {
			p.DecisiveVictories = append(p.DecisiveVictories, info)
		}
	}

	sort.SliceStable(p.ClosestMatches, func(i, j int) bool {
		return p.ClosestMatches[i].Difference < p.ClosestMatches[j].Difference
	})
	sort.SliceStable(p.DecisiveVictories, func(i, j int) bool {
		return p.DecisiveVictories[i].Difference > p.DecisiveVictories[j].Difference
	})
	if len(p.ClosestMatches) > 5 {
		p.ClosestMatches = p.ClosestMatches[:5]
	}
	if len(p.DecisiveVictories) > 5 {
		p.DecisiveVictories = p.DecisiveVictories[:5]
	}

	if len(allScores) > 0 {
		total := 0
		for _, s := range allScores {
			total += s
		}
		p.AvgPointsPerPlayer = round1(float64(total) / float64(len(allScores)))
	}
	p.MedianScoreDifference = median(margins)
	return p
}

// median returns the middle margin, averaging the two central values for an
// even count, 0 for an empty slice.
func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
