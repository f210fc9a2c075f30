package elo

import "github.com/mauv0809/pingpong-ledger/internal/pingpong"

// Context is one of the three independent rating pools. Singles matches feed
// overall+singles, doubles matches feed overall+doubles; the pools never mix,
// so a singles specialist cannot distort doubles predictions.
type Context string

const (
	ContextOverall Context = "overall"
	ContextSingles Context = "singles"
	ContextDoubles Context = "doubles"
)

// Contexts lists all rating pools in reporting order.
var Contexts = []Context{ContextOverall, ContextSingles, ContextDoubles}

const (
	// InitialRating is assigned lazily on an entity's first match.
	InitialRating = 1500.0
	// EligibilityThreshold is the minimum matches played in a context before
	// an entity's rating is surfaced. Below it the rating is tracked but
	// kept out of leaderboards and history.
	EligibilityThreshold = 3
)

// HistoryPoint is one end-of-date rating snapshot.
type HistoryPoint struct {
	Date   string  `json:"date"`
	Rating float64 `json:"rating"`
}

// ContextRatings is the reportable output for one rating pool.
type ContextRatings struct {
	Current map[string]float64        `json:"current_ratings"`
	History map[string][]HistoryPoint `json:"history"`
}

// Ratings maps each context to its reportable ratings.
type Ratings map[Context]ContextRatings

// Expected holds the pre-match win probabilities for both sides of a match,
// read from the relevant context pool before the match updates it.
type Expected struct {
	Kind  pingpong.Kind `json:"kind"`
	Side1 float64       `json:"side1"`
	Side2 float64       `json:"side2"`
}
