package stats

import (
	"math"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// PlayerTable computes the per-player statistics table. Events must be in
// chronological order: streaks are order-sensitive. Registered players with
// no matches still get a zeroed row so they appear on the board.
func PlayerTable(events []pingpong.MatchEvent, registered []string) map[string]*PlayerStats {
	table := make(map[string]*PlayerStats)
	row := func(name string) *PlayerStats {
		if name == "" {
			return nil
		}
		if _, ok := table[name]; !ok {
			table[name] = &PlayerStats{}
		}
		return table[name]
	}

	for _, name := range registered {
		row(name)
	}

	for _, e := range events {
		side1 := e.Side1Players()
		side2 := e.Side2Players()
		for _, p := range append(append([]string{}, side1...), side2...) {
			s := row(p)
			if e.Kind == pingpong.KindSingles {
				s.SinglesPlayed++
			} else {
				s.DoublesPlayed++
			}
			s.TotalPlayed++
		}

		if e.Encoding == pingpong.EncodingScore {
			for _, p := range side1 {
				row(p).PointsScored += e.Score1
				row(p).PointsConceded += e.Score2
			}
			for _, p := range side2 {
				row(p).PointsScored += e.Score2
				row(p).PointsConceded += e.Score1
			}
		}

		// Ties reach this point as SideNone: the match counts as played but
		// nobody wins and no streak moves.
		if e.Winner == pingpong.SideNone {
			continue
		}
		winners, losers := side1, side2
		if e.Winner == pingpong.Side2 {
			winners, losers = side2, side1
		}
		for _, p := range winners {
			s := row(p)
			if e.Kind == pingpong.KindSingles {
				s.SinglesWon++
			} else {
				s.DoublesWon++
			}
			s.TotalWon++
			updateStreak(s, true)
		}
		for _, p := range losers {
			updateStreak(row(p), false)
		}
	}

	for _, s := range table {
		s.WinPercentage = percentage(s.TotalWon, s.TotalPlayed)
		s.SinglesWinPercentage = percentage(s.SinglesWon, s.SinglesPlayed)
		s.DoublesWinPercentage = percentage(s.DoublesWon, s.DoublesPlayed)
	}
	return table
}

// updateStreak advances the signed streak counter: consecutive wins grow a
// positive run, consecutive losses a negative one, and a direction change
// resets to ±1.
func updateStreak(s *PlayerStats, won bool) {
	if won {
		s.CurrentStreak = max(1, s.CurrentStreak+1)
		s.BestStreak = max(s.BestStreak, s.CurrentStreak)
	} else {
		s.CurrentStreak = min(-1, s.CurrentStreak-1)
	}
}

// percentage returns won/played as a percent rounded to one decimal, 0 when
// nothing was played.
func percentage(won, played int) float64 {
	if played == 0 {
		return 0
	}
	return round1(float64(won) / float64(played) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
