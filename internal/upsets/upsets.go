// Package upsets ranks the matches whose winner was least expected to win,
// based on the pre-match win probabilities of the rating engine.
package upsets

import (
	"math"
	"sort"

	"github.com/mauv0809/pingpong-ledger/internal/elo"
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// Upset is one surprising result. Magnitude is how far below even odds the
// winner's pre-match probability was.
type Upset struct {
	MatchID        string  `json:"match_id"`
	Date           string  `json:"date"`
	Winner         string  `json:"winner"`
	Loser          string  `json:"loser"`
	Score          string  `json:"score"`
	WinProbability float64 `json:"win_probability"`
	Magnitude      float64 `json:"magnitude"`
}

// Upsets holds the ranked upset lists, one per match kind.
type Upsets struct {
	Singles []Upset `json:"singles"`
	Doubles []Upset `json:"doubles"`
}

const topN = 10

// Detect scans the events for matches the favorite lost and returns the ten
// largest upsets per kind, sorted by descending magnitude. Matches without a
// winner or without a recorded expectation are ignored.
func Detect(events []pingpong.MatchEvent, expected map[string]elo.Expected) Upsets {
	var singles, doubles []Upset
	for _, e := range events {
		if e.Winner == pingpong.SideNone {
			continue
		}
		exp, ok := expected[e.ID]
		if !ok {
			continue
		}
		winnerProb := exp.Side1
		winnerSide, loserSide := pingpong.Side1, pingpong.Side2
		if e.Winner == pingpong.Side2 {
			winnerProb = exp.Side2
			winnerSide, loserSide = pingpong.Side2, pingpong.Side1
		}
		if winnerProb >= 0.5 {
			continue
		}
		u := Upset{
			MatchID:        e.ID,
			Date:           e.Date,
			Winner:         e.SideLabel(winnerSide),
			Loser:          e.SideLabel(loserSide),
			Score:          e.ScoreLabel(),
			WinProbability: round1(winnerProb * 100),
			Magnitude:      0.5 - winnerProb,
		}
		if e.Kind == pingpong.KindSingles {
			singles = append(singles, u)
		} else {
			doubles = append(doubles, u)
		}
	}

	return Upsets{
		Singles: top(singles),
		Doubles: top(doubles),
	}
}

func top(list []Upset) []Upset {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Magnitude > list[j].Magnitude
	})
	if len(list) > topN {
		list = list[:topN]
	}
	return list
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
