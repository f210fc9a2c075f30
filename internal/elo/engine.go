package elo

import (
	"math"

	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// Engine folds a chronological match log into per-context ratings. It holds
// no state between runs: every computation starts from scratch, the log is
// the single source of truth.
type Engine struct {
	policy Policy
	window int
}

// NewEngine creates an engine for the given policy. A window size above zero
// restricts the current-ratings fold to the most recent N matches; history
// and snapshots always cover the full log.
func NewEngine(policy Policy, window int) *Engine {
	return &Engine{policy: policy, window: window}
}

// Policy returns the engine's rating policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Compute runs the chronological fold and returns current ratings and
// history for every context. Only entities at or past the eligibility
// threshold appear in the output.
func (e *Engine) Compute(events []pingpong.MatchEvent) Ratings {
	sorted := pingpong.SortEvents(events)
	axis := pingpong.DateAxis(sorted)

	f := newFold(e.policy)
	f.run(sorted, nil)

	ratings := make(Ratings, len(Contexts))
	for _, ctx := range Contexts {
		ratings[ctx] = ContextRatings{
			Current: f.currentRatings(ctx),
			History: f.densifiedHistory(ctx, axis),
		}
	}

	if e.window > 0 && len(sorted) > e.window {
		// True sliding window: current ratings come from folding only the
		// trailing window, with fresh pools. Eligibility still applies
		// within the window.
		wf := newFold(e.policy)
		wf.run(sorted[len(sorted)-e.window:], nil)
		for _, ctx := range Contexts {
			r := ratings[ctx]
			r.Current = wf.currentRatings(ctx)
			ratings[ctx] = r
		}
	}

	return ratings
}

// ExpectedProbabilities computes the pre-match win probability of each side
// for every match with an id, using the fixed-K baseline fold. The
// expectation is read before the match's own update, so it reflects the
// state of the pools at that point in the log.
func ExpectedProbabilities(events []pingpong.MatchEvent) map[string]Expected {
	expected := make(map[string]Expected)
	f := newFold(Baseline())
	f.run(pingpong.SortEvents(events), expected)
	return expected
}

// expect is the standard logistic Elo expectation for a side rated rSelf
// against a side rated rOpp.
func expect(rSelf, rOpp float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rOpp-rSelf)/400.0))
}

// fold carries the mutable per-context state of one chronological pass.
type fold struct {
	policy  Policy
	ratings map[Context]map[string]float64
	played  map[Context]map[string]int
	history map[Context]map[string][]HistoryPoint
}

func newFold(policy Policy) *fold {
	f := &fold{
		policy:  policy,
		ratings: make(map[Context]map[string]float64),
		played:  make(map[Context]map[string]int),
		history: make(map[Context]map[string][]HistoryPoint),
	}
	for _, ctx := range Contexts {
		f.ratings[ctx] = make(map[string]float64)
		f.played[ctx] = make(map[string]int)
		f.history[ctx] = make(map[string][]HistoryPoint)
	}
	return f
}

// run processes the already-sorted events in order, snapshotting history at
// the end of every parseable date. When expected is non-nil, each event with
// an id gets its pre-update expectation recorded there.
func (f *fold) run(sorted []pingpong.MatchEvent, expected map[string]Expected) {
	currentDate := ""
	datedSoFar := false
	for _, event := range sorted {
		_, dated := pingpong.ParseDate(event.Date)
		if datedSoFar && (!dated || event.Date != currentDate) {
			f.snapshot(currentDate)
		}
		currentDate = event.Date
		datedSoFar = dated
		f.apply(event, expected)
	}
	if datedSoFar {
		f.snapshot(currentDate)
	}
}

func (f *fold) apply(event pingpong.MatchEvent, expected map[string]Expected) {
	// The expectation pass skips id-less matches outright: they carry no
	// expectation entry and must not shift the pools for later matches.
	if expected != nil && event.ID == "" {
		return
	}

	contexts := []Context{ContextOverall, ContextSingles}
	if event.Kind == pingpong.KindDoubles {
		contexts = []Context{ContextOverall, ContextDoubles}
	}

	for i, ctx := range contexts {
		exp1 := f.sideExpectation(ctx, event)
		if expected != nil && i == 0 && event.ID != "" {
			expected[event.ID] = Expected{Kind: event.Kind, Side1: exp1, Side2: 1.0 - exp1}
		}

		// A tied score carries no winner; the match is recorded upstream but
		// moves no rating and counts toward no eligibility.
		if event.Winner == pingpong.SideNone {
			continue
		}

		actual1 := 0.0
		if event.Winner == pingpong.Side1 {
			actual1 = 1.0
		}
		delta := f.policy.K(event) * (actual1 - exp1)

		for _, p := range event.Side1Players() {
			f.ratings[ctx][p] = f.rating(ctx, p) + delta
			f.played[ctx][p]++
		}
		for _, p := range event.Side2Players() {
			f.ratings[ctx][p] = f.rating(ctx, p) - delta
			f.played[ctx][p]++
		}
	}
}

// sideExpectation returns side 1's pre-update win probability in the given
// context. A doubles side is rated by the arithmetic mean of its members'
// context-specific ratings.
func (f *fold) sideExpectation(ctx Context, event pingpong.MatchEvent) float64 {
	return expect(f.sideRating(ctx, event.Side1Players()), f.sideRating(ctx, event.Side2Players()))
}

func (f *fold) sideRating(ctx Context, players []string) float64 {
	total := 0.0
	for _, p := range players {
		total += f.rating(ctx, p)
	}
	return total / float64(len(players))
}

func (f *fold) rating(ctx Context, player string) float64 {
	if r, ok := f.ratings[ctx][player]; ok {
		return r
	}
	return InitialRating
}

// snapshot appends an end-of-date history point for every eligible entity in
// every context, after all of that date's matches have folded.
func (f *fold) snapshot(date string) {
	for _, ctx := range Contexts {
		for player, rating := range f.ratings[ctx] {
			if f.played[ctx][player] < EligibilityThreshold {
				continue
			}
			f.history[ctx][player] = append(f.history[ctx][player], HistoryPoint{
				Date:   date,
				Rating: round1(rating),
			})
		}
	}
}

// currentRatings returns the eligible entities' ratings, rounded for
// reporting.
func (f *fold) currentRatings(ctx Context) map[string]float64 {
	current := make(map[string]float64)
	for player, count := range f.played[ctx] {
		if count >= EligibilityThreshold {
			current[player] = round1(f.ratings[ctx][player])
		}
	}
	return current
}

// densifiedHistory fills each eligible entity's series along the global date
// axis, carrying the last known rating forward so charts have no gaps. The
// series starts at the entity's first snapshot, never before eligibility.
func (f *fold) densifiedHistory(ctx Context, axis []string) map[string][]HistoryPoint {
	filled := make(map[string][]HistoryPoint)
	for player, points := range f.history[ctx] {
		byDate := make(map[string]float64, len(points))
		for _, p := range points {
			byDate[p.Date] = p.Rating
		}
		var out []HistoryPoint
		started := false
		last := 0.0
		for _, date := range axis {
			if r, ok := byDate[date]; ok {
				last = r
				started = true
			}
			if started {
				out = append(out, HistoryPoint{Date: date, Rating: last})
			}
		}
		if len(out) > 0 {
			filled[player] = out
		}
	}
	return filled
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
