package pingpong

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Kind distinguishes the two match shapes in the ledger.
type Kind string

const (
	KindSingles Kind = "singles"
	KindDoubles Kind = "doubles"
)

// ResultEncoding says how a match result was recorded: a full score pair or
// just a coarse win/loss indicator with no margin information.
type ResultEncoding string

const (
	EncodingScore   ResultEncoding = "score"
	EncodingWinLoss ResultEncoding = "winloss"
)

// Side identifies one side of a match (player1/team1 vs player2/team2).
type Side int

const (
	SideNone Side = 0
	Side1    Side = 1
	Side2    Side = 2
)

// RawTeam is one side of a raw doubles record. Side 1 names its server, side
// 2 its receiver; both carry a partner.
type RawTeam struct {
	Server   string `json:"server,omitempty"`
	Receiver string `json:"receiver,omitempty"`
	Partner  string `json:"partner"`
}

// RawScore carries the score pair of a raw record. Singles records use the
// player1/player2 keys, doubles records use team1/team2.
type RawScore struct {
	Player1 int `json:"player1,omitempty"`
	Player2 int `json:"player2,omitempty"`
	Team1   int `json:"team1,omitempty"`
	Team2   int `json:"team2,omitempty"`
}

// RawMatch is a match record exactly as the ledger hands it back.
type RawMatch struct {
	ID          string    `json:"id,omitempty"`
	Type        string    `json:"type"`
	Player1     string    `json:"player1,omitempty"`
	Player2     string    `json:"player2,omitempty"`
	Team1       *RawTeam  `json:"team1,omitempty"`
	Team2       *RawTeam  `json:"team2,omitempty"`
	Score       *RawScore `json:"score,omitempty"`
	ResultType  string    `json:"result_type,omitempty"`
	ResultValue string    `json:"result_value,omitempty"`
}

// DayEntry groups the matches recorded on one calendar date, in log order.
type DayEntry struct {
	Date    string     `json:"date"`
	Matches []RawMatch `json:"matches"`
}

// TeamRef is one side of a normalized doubles event. The lead is the server
// (side 1) or receiver (side 2); the roles matter for display only, rating
// treats both members the same.
type TeamRef struct {
	Lead    string `json:"lead"`
	Partner string `json:"partner"`
}

// Players returns both members of the team.
func (t TeamRef) Players() []string {
	return []string{t.Lead, t.Partner}
}

// Key returns the order-independent identity of the team.
func (t TeamRef) Key() string {
	return PairKey(t.Lead, t.Partner)
}

// Label returns a human-readable team name.
func (t TeamRef) Label() string {
	return t.Lead + " & " + t.Partner
}

// MatchEvent is a normalized, immutable match. Exactly one of the
// singles/doubles participant sets is populated, according to Kind.
type MatchEvent struct {
	ID       string         `json:"id"`
	Date     string         `json:"date"`
	Kind     Kind           `json:"kind"`
	Player1  string         `json:"player1,omitempty"`
	Player2  string         `json:"player2,omitempty"`
	Team1    TeamRef        `json:"team1,omitzero"`
	Team2    TeamRef        `json:"team2,omitzero"`
	Encoding ResultEncoding `json:"result_encoding"`
	Score1   int            `json:"score1"`
	Score2   int            `json:"score2"`
	Winner   Side           `json:"winner"`
}

// Side1Players returns the players on side 1.
func (e MatchEvent) Side1Players() []string {
	if e.Kind == KindSingles {
		return []string{e.Player1}
	}
	return e.Team1.Players()
}

// Side2Players returns the players on side 2.
func (e MatchEvent) Side2Players() []string {
	if e.Kind == KindSingles {
		return []string{e.Player2}
	}
	return e.Team2.Players()
}

// SideLabel returns the display name for one side of the match.
func (e MatchEvent) SideLabel(side Side) string {
	if e.Kind == KindSingles {
		if side == Side1 {
			return e.Player1
		}
		return e.Player2
	}
	if side == Side1 {
		return e.Team1.Label()
	}
	return e.Team2.Label()
}

// Margin returns the absolute score margin. It is only meaningful for
// score-encoded events.
func (e MatchEvent) Margin() int {
	if e.Score1 > e.Score2 {
		return e.Score1 - e.Score2
	}
	return e.Score2 - e.Score1
}

// ScoreLabel renders the score for display, falling back to the coarse
// indicator for winloss-encoded events.
func (e MatchEvent) ScoreLabel() string {
	if e.Encoding == EncodingScore {
		return fmt.Sprintf("%d-%d", e.Score1, e.Score2)
	}
	return "win/loss"
}

// PairKey builds the canonical identity of an unordered player pair: names
// sorted ascending and joined with ">". Head-to-head tables, partnerships and
// team identities all use this key.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + ">" + b
}

// GroupKey builds the canonical identity of a set of players, sorted
// ascending and comma-joined.
func GroupKey(players ...string) string {
	sorted := make([]string, len(players))
	copy(sorted, players)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// ParseDate parses a ledger date string. The bool reports whether the date
// was usable for chronological ordering.
func ParseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SortEvents orders events chronologically by date, keeping log order for
// events on the same date. Events with unparseable dates sort to the end, in
// log order, so they still fold but never join the date axis.
func SortEvents(events []MatchEvent) []MatchEvent {
	sorted := make([]MatchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := ParseDate(sorted[i].Date)
		tj, okj := ParseDate(sorted[j].Date)
		if oki && okj {
			return ti.Before(tj)
		}
		return oki && !okj
	})
	return sorted
}

// DateAxis returns the sorted distinct parseable dates across the events.
func DateAxis(events []MatchEvent) []string {
	seen := make(map[string]bool)
	var axis []string
	for _, e := range events {
		if _, ok := ParseDate(e.Date); !ok {
			continue
		}
		if !seen[e.Date] {
			seen[e.Date] = true
			axis = append(axis, e.Date)
		}
	}
	sort.Strings(axis)
	return axis
}
