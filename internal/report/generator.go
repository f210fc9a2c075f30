package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/pingpong-ledger/internal/elo"
	"github.com/mauv0809/pingpong-ledger/internal/matchlog"
	"github.com/mauv0809/pingpong-ledger/internal/metrics"
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
	"github.com/mauv0809/pingpong-ledger/internal/stats"
	"github.com/mauv0809/pingpong-ledger/internal/upsets"
)

// Generator recomputes the full report from the ledger. It holds no derived
// state; the match log is the single source of truth.
type Generator struct {
	store    matchlog.LedgerStore
	metrics  metrics.Metrics
	baseline *elo.Engine
	hybrid   *elo.Engine
}

// NewGenerator creates a Generator. A window above zero restricts current
// ratings to the most recent N matches; history always covers the full log.
func NewGenerator(store matchlog.LedgerStore, metrics metrics.Metrics, window int) *Generator {
	return &Generator{
		store:    store,
		metrics:  metrics,
		baseline: elo.NewEngine(elo.Baseline(), window),
		hybrid:   elo.NewEngine(elo.Hybrid(), window),
	}
}

// Generate loads the ledger and computes the aggregate report. Malformed
// records are skipped and counted, never fatal.
func (g *Generator) Generate() (*Report, error) {
	start := time.Now()

	days, err := g.store.GetDayEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	registered, err := g.store.GetRegisteredPlayers()
	if err != nil {
		return nil, fmt.Errorf("failed to load registered players: %w", err)
	}

	events, skipped := pingpong.NormalizeDays(days)
	for i := 0; i < skipped; i++ {
		g.metrics.IncRecordsSkipped()
	}
	if skipped > 0 {
		log.Warn("Skipped malformed ledger records", "count", skipped)
	}
	events = pingpong.SortEvents(events)

	baseRatings := g.baseline.Compute(events)
	hybridRatings := g.hybrid.Compute(events)
	expected := elo.ExpectedProbabilities(events)

	axis := pingpong.DateAxis(events)
	lastDate := ""
	if len(axis) > 0 {
		lastDate = axis[len(axis)-1]
	}

	rep := &Report{
		Players:        stats.PlayerTable(events, registered),
		Analytics:      stats.MatchAnalytics(events),
		TeamDynamics:   stats.TeamDynamics(events),
		ScorePatterns:  stats.ScorePatternAnalysis(events),
		Serving:        stats.ServingRotations(events),
		HeadToHead:     stats.HeadToHeadTable(events),
		Temporal:       stats.TemporalAnalysis(events),
		TotalPoints:    stats.TotalPoints(events),
		Ratings:        spliceRatings(baseRatings, hybridRatings, lastDate),
		Expected:       expected,
		Upsets:         upsets.Detect(events, expected),
		MatchCount:     len(events),
		SkippedRecords: skipped,
		GeneratedAt:    time.Now().UTC(),
	}

	g.metrics.ObserveComputeDuration(time.Since(start).Seconds())
	g.metrics.IncStatsComputations()
	log.Info("Report generated", "matches", rep.MatchCount, "skipped", skipped, "players", len(rep.Players))
	return rep, nil
}

// spliceRatings merges the two rating passes: current ratings come from the
// margin-aware pass, trend series from the fixed-K pass, and each series gets
// the current value as its final point so charts land on the leaderboard
// number. The merge is deliberately confined to this one spot.
func spliceRatings(base, hybrid elo.Ratings, lastDate string) elo.Ratings {
	out := make(elo.Ratings, len(elo.Contexts))
	for _, ctx := range elo.Contexts {
		current := hybrid[ctx].Current
		history := make(map[string][]elo.HistoryPoint, len(base[ctx].History))
		for player, points := range base[ctx].History {
			series := make([]elo.HistoryPoint, len(points))
			copy(series, points)
			if r, ok := current[player]; ok && lastDate != "" && len(series) > 0 {
				if series[len(series)-1].Date == lastDate {
					series[len(series)-1].Rating = r
				} else {
					series = append(series, elo.HistoryPoint{Date: lastDate, Rating: r})
				}
			}
			history[player] = series
		}
		out[ctx] = elo.ContextRatings{Current: current, History: history}
	}
	return out
}
