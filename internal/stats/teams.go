package stats

import (
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// TeamDynamics computes per-partnership records over the doubles matches,
// keyed by the pair's canonical identity. Win rates cover all matches;
// point differentials only the score-encoded ones.
func TeamDynamics(events []pingpong.MatchEvent) map[string]*Partnership {
	partnerships := make(map[string]*Partnership)
	get := func(team pingpong.TeamRef) *Partnership {
		key := team.Key()
		if _, ok := partnerships[key]; !ok {
			a, b := team.Lead, team.Partner
			if a > b {
				a, b = b, a
			}
			partnerships[key] = &Partnership{Player1: a, Player2: b}
		}
		return partnerships[key]
	}

	for _, e := range events {
		if e.Kind != pingpong.KindDoubles {
			continue
		}
		t1, t2 := get(e.Team1), get(e.Team2)
		t1.Played++
		t2.Played++
		if e.Encoding == pingpong.EncodingScore {
			t1.ScoreMatches++
			t1.PointsScored += e.Score1
			t1.PointsConceded += e.Score2
			t2.ScoreMatches++
			t2.PointsScored += e.Score2
			t2.PointsConceded += e.Score1
		}
		switch e.Winner {
		case pingpong.Side1:
			t1.Won++
		case pingpong.Side2:
			t2.Won++
		}
	}

	for _, p := range partnerships {
		p.WinRate = percentage(p.Won, p.Played)
		p.PointDiff = p.PointsScored - p.PointsConceded
		if p.ScoreMatches > 0 {
			p.PointDiffPerGame = round2(float64(p.PointDiff) / float64(p.ScoreMatches))
		}
	}
	return partnerships
}

// HeadToHeadTable computes singles head-to-head records keyed by the
// canonical pair key, with wins assigned to the alphabetically ordered
// sides. A tied score still counts the match for the pair.
func HeadToHeadTable(events []pingpong.MatchEvent) map[string]*HeadToHead {
	records := make(map[string]*HeadToHead)
	for _, e := range events {
		if e.Kind != pingpong.KindSingles {
			continue
		}
		key := pingpong.PairKey(e.Player1, e.Player2)
		rec, ok := records[key]
		if !ok {
			a, b := e.Player1, e.Player2
			if a > b {
				a, b = b, a
			}
			rec = &HeadToHead{P1: a, P2: b}
			records[key] = rec
		}
		rec.Matches++
		if e.Winner == pingpong.SideNone {
			continue
		}
		winner := e.Player1
		if e.Winner == pingpong.Side2 {
			winner = e.Player2
		}
		if winner == rec.P1 {
			rec.WinsP1++
		} else {
			rec.WinsP2++
		}
	}

	for _, rec := range records {
		rec.WinRateP1 = percentage(rec.WinsP1, rec.Matches)
		rec.WinRateP2 = percentage(rec.WinsP2, rec.Matches)
	}
	return records
}
