package pingpong

import (
	"errors"
	"fmt"
	"strings"
)

// Normalization failure reasons. Callers skip and count rejected records,
// they never abort the run over them.
var (
	ErrUnknownKind        = errors.New("unknown match type")
	ErrMissingParticipant = errors.New("missing participant")
	ErrUnknownResult      = errors.New("unrecognized result indicator")
)

// Normalize converts one raw ledger record into a canonical MatchEvent. The
// date is taken from the surrounding day entry. It is a pure transform: a
// malformed record yields an error and no event.
func Normalize(date string, raw RawMatch) (MatchEvent, error) {
	switch Kind(raw.Type) {
	case KindSingles:
		return normalizeSingles(date, raw)
	case KindDoubles:
		return normalizeDoubles(date, raw)
	default:
		return MatchEvent{}, fmt.Errorf("%w: %q", ErrUnknownKind, raw.Type)
	}
}

func normalizeSingles(date string, raw RawMatch) (MatchEvent, error) {
	if raw.Player1 == "" || raw.Player2 == "" {
		return MatchEvent{}, fmt.Errorf("%w: singles needs both player names", ErrMissingParticipant)
	}

	event := MatchEvent{
		ID:      raw.ID,
		Date:    date,
		Kind:    KindSingles,
		Player1: raw.Player1,
		Player2: raw.Player2,
	}

	if isWinLoss(raw) {
		event.Encoding = EncodingWinLoss
		winner, err := singlesIndicator(raw.ResultValue)
		if err != nil {
			return MatchEvent{}, err
		}
		event.Winner = winner
		return event, nil
	}

	event.Encoding = EncodingScore
	if raw.Score != nil {
		event.Score1 = raw.Score.Player1
		event.Score2 = raw.Score.Player2
	}
	event.Winner = scoreWinner(event.Score1, event.Score2)
	return event, nil
}

func normalizeDoubles(date string, raw RawMatch) (MatchEvent, error) {
	if raw.Team1 == nil || raw.Team2 == nil {
		return MatchEvent{}, fmt.Errorf("%w: doubles needs both teams", ErrMissingParticipant)
	}
	team1 := TeamRef{Lead: raw.Team1.Server, Partner: raw.Team1.Partner}
	team2 := TeamRef{Lead: raw.Team2.Receiver, Partner: raw.Team2.Partner}
	if team1.Lead == "" || team1.Partner == "" || team2.Lead == "" || team2.Partner == "" {
		return MatchEvent{}, fmt.Errorf("%w: doubles needs four player names", ErrMissingParticipant)
	}

	event := MatchEvent{
		ID:    raw.ID,
		Date:  date,
		Kind:  KindDoubles,
		Team1: team1,
		Team2: team2,
	}

	if isWinLoss(raw) {
		event.Encoding = EncodingWinLoss
		winner, err := doublesIndicator(raw.ResultValue)
		if err != nil {
			return MatchEvent{}, err
		}
		event.Winner = winner
		return event, nil
	}

	event.Encoding = EncodingScore
	if raw.Score != nil {
		event.Score1 = raw.Score.Team1
		event.Score2 = raw.Score.Team2
	}
	event.Winner = scoreWinner(event.Score1, event.Score2)
	return event, nil
}

// isWinLoss resolves the record's result encoding. Records predating the
// result_type field carry a plain score, so score is the default.
func isWinLoss(raw RawMatch) bool {
	return raw.ResultType == string(EncodingWinLoss)
}

// singlesIndicator maps a coarse result token onto the winning side. The
// generic W/L spelling and the older P1/P2 spelling are equivalent.
func singlesIndicator(value string) (Side, error) {
	switch strings.ToUpper(value) {
	case "W", "P1":
		return Side1, nil
	case "L", "P2":
		return Side2, nil
	default:
		return SideNone, fmt.Errorf("%w: %q", ErrUnknownResult, value)
	}
}

// doublesIndicator is the doubles analog: W/L or T1/T2.
func doublesIndicator(value string) (Side, error) {
	switch strings.ToUpper(value) {
	case "W", "T1":
		return Side1, nil
	case "L", "T2":
		return Side2, nil
	default:
		return SideNone, fmt.Errorf("%w: %q", ErrUnknownResult, value)
	}
}

// scoreWinner derives the winning side from a score pair. A tied score is
// not supposed to reach the ledger, but when it does the event carries
// SideNone and consumers treat it as a played match with no winner.
func scoreWinner(score1, score2 int) Side {
	switch {
	case score1 > score2:
		return Side1
	case score2 > score1:
		return Side2
	default:
		return SideNone
	}
}

// NormalizeDays flattens day entries into events in log order, skipping
// rejected records. It returns the events and the number of skipped records.
func NormalizeDays(days []DayEntry) ([]MatchEvent, int) {
	var events []MatchEvent
	skipped := 0
	for _, day := range days {
		for _, raw := range day.Matches {
			event, err := Normalize(day.Date, raw)
			if err != nil {
				skipped++
				continue
			}
			events = append(events, event)
		}
	}
	return events, skipped
}
