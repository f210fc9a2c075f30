package report

import (
	"time"

	"github.com/mauv0809/pingpong-ledger/internal/elo"
	"github.com/mauv0809/pingpong-ledger/internal/stats"
	"github.com/mauv0809/pingpong-ledger/internal/upsets"
)

// Report is the aggregate statistics output consumed by the presentation
// layer. Every collection uses stable keys (player name, "A>B" pair key or
// sorted group key) so consumers never reinterpret business logic.
type Report struct {
	Players       map[string]*stats.PlayerStats `json:"player_stats"`
	Analytics     stats.Analytics               `json:"match_analytics"`
	TeamDynamics  map[string]*stats.Partnership `json:"team_dynamics"`
	ScorePatterns stats.ScorePatterns           `json:"score_patterns"`
	Serving       stats.ServingStats            `json:"serving_stats"`
	HeadToHead    map[string]*stats.HeadToHead  `json:"head_to_head"`
	Temporal      stats.Temporal                `json:"temporal"`
	TotalPoints   int                           `json:"total_points"`

	// Ratings carries the margin-aware current ratings and the fixed-K
	// trend series, spliced so each series ends on the leaderboard value.
	Ratings  elo.Ratings             `json:"elo_ratings"`
	Expected map[string]elo.Expected `json:"expected_probabilities"`
	Upsets   upsets.Upsets           `json:"upsets"`

	MatchCount     int       `json:"match_count"`
	SkippedRecords int       `json:"skipped_records"`
	GeneratedAt    time.Time `json:"generated_at"`
}
