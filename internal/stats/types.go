package stats

// PlayerStats is one row of the player statistics table. Point totals only
// accumulate from score-encoded matches; winloss matches still count toward
// played/won.
type PlayerStats struct {
	SinglesPlayed        int     `json:"singles_played"`
	SinglesWon           int     `json:"singles_won"`
	DoublesPlayed        int     `json:"doubles_played"`
	DoublesWon           int     `json:"doubles_won"`
	TotalPlayed          int     `json:"total_played"`
	TotalWon             int     `json:"total_won"`
	PointsScored         int     `json:"points_scored"`
	PointsConceded       int     `json:"points_conceded"`
	CurrentStreak        int     `json:"current_streak"`
	BestStreak           int     `json:"best_streak"`
	WinPercentage        float64 `json:"win_percentage"`
	SinglesWinPercentage float64 `json:"singles_win_percentage"`
	DoublesWinPercentage float64 `json:"doubles_win_percentage"`
}

// MatchupCount is one entry of the most-common-matchups list.
type MatchupCount struct {
	Matchup string `json:"matchup"`
	Count   int    `json:"count"`
}

// Analytics summarizes the match log as a whole.
type Analytics struct {
	TotalMatches       int            `json:"total_matches"`
	SinglesMatches     int            `json:"singles_matches"`
	DoublesMatches     int            `json:"doubles_matches"`
	AvgScoreDifference float64        `json:"avg_score_difference"`
	CommonMatchups     []MatchupCount `json:"common_matchups"`
	DayFrequency       map[string]int `json:"day_frequency"`
}

// Partnership tracks one unordered doubles pair. Point figures come from
// score-encoded matches only.
type Partnership struct {
	Player1          string  `json:"p1"`
	Player2          string  `json:"p2"`
	Played           int     `json:"played"`
	Won              int     `json:"won"`
	ScoreMatches     int     `json:"score_matches"`
	PointsScored     int     `json:"points_scored"`
	PointsConceded   int     `json:"points_conceded"`
	WinRate          float64 `json:"win_rate"`
	PointDiff        int     `json:"point_diff"`
	PointDiffPerGame float64 `json:"point_diff_per_game"`
}

// MatchInfo describes a match in the closest/decisive lists.
type MatchInfo struct {
	Date       string `json:"date"`
	Player1    string `json:"player1"`
	Player2    string `json:"player2"`
	Score      string `json:"score"`
	Difference int    `json:"difference"`
}

// ScorePatterns analyzes score distributions across score-encoded matches.
type ScorePatterns struct {
	AvgPointsPerPlayer    float64     `json:"avg_points_per_player"`
	MedianScoreDifference float64     `json:"median_score_difference"`
	ClosestMatches        []MatchInfo `json:"closest_matches"`
	DecisiveVictories     []MatchInfo `json:"decisive_victories"`
	ScoreDistribution     map[int]int `json:"score_distribution"`
}

// PairRecord tracks the win rate of one directed player pairing across the
// serving rotation.
type PairRecord struct {
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// Configuration tracks one normalized team configuration within a match
// group. Wins count for the left (lexicographically first) pair.
type Configuration struct {
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// MatchGroup groups doubles matches played by the same four players.
type MatchGroup struct {
	Matches        int                       `json:"matches"`
	Configurations map[string]*Configuration `json:"configurations"`
}

// ServingStats holds the serving-rotation win rates.
type ServingStats struct {
	PlayerPairs map[string]map[string]*PairRecord `json:"player_pairs"`
	MatchGroups map[string]*MatchGroup            `json:"match_groups"`
}

// HeadToHead is the singles record of one unordered player pair. P1 is the
// alphabetically first name. Tied matches count toward Matches but tally no
// win.
type HeadToHead struct {
	P1        string  `json:"p1"`
	P2        string  `json:"p2"`
	Matches   int     `json:"matches"`
	WinsP1    int     `json:"wins_p1"`
	WinsP2    int     `json:"wins_p2"`
	WinRateP1 float64 `json:"win_rate_p1"`
	WinRateP2 float64 `json:"win_rate_p2"`
}

// Temporal holds the per-date activity series, sorted by date.
type Temporal struct {
	Dates          []string       `json:"dates"`
	MatchCounts    []int          `json:"match_counts"`
	PointCounts    []int          `json:"point_counts"`
	MatchesByDate  map[string]int `json:"matches_by_date"`
	PointsByDate   map[string]int `json:"points_by_date"`
	MostActiveDate string         `json:"most_active_date"`
}
