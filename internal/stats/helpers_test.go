package stats

import (
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

func singlesEvent(date, p1, p2 string, s1, s2 int) pingpong.MatchEvent {
	winner := pingpong.Side1
	if s2 > s1 {
		winner = pingpong.Side2
	} else if s1 == s2 {
		winner = pingpong.SideNone
	}
	return pingpong.MatchEvent{
		Date:     date,
		Kind:     pingpong.KindSingles,
		Player1:  p1,
		Player2:  p2,
		Encoding: pingpong.EncodingScore,
		Score1:   s1,
		Score2:   s2,
		Winner:   winner,
	}
}

func singlesWinLoss(date, p1, p2 string, winner pingpong.Side) pingpong.MatchEvent {
	return pingpong.MatchEvent{
		Date:     date,
		Kind:     pingpong.KindSingles,
		Player1:  p1,
		Player2:  p2,
		Encoding: pingpong.EncodingWinLoss,
		Winner:   winner,
	}
}

func doublesEvent(date string, t1, t2 pingpong.TeamRef, s1, s2 int) pingpong.MatchEvent {
	winner := pingpong.Side1
	if s2 > s1 {
		winner = pingpong.Side2
	} else if s1 == s2 {
		winner = pingpong.SideNone
	}
	return pingpong.MatchEvent{
		Date:     date,
		Kind:     pingpong.KindDoubles,
		Team1:    t1,
		Team2:    t2,
		Encoding: pingpong.EncodingScore,
		Score1:   s1,
		Score2:   s2,
		Winner:   winner,
	}
}
