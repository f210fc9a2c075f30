package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mauv0809/pingpong-ledger/internal/database"
	"github.com/mauv0809/pingpong-ledger/internal/matchlog"
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"DB_NAME"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	if dir, ok := os.LookupEnv("MIGRATIONS_DIR"); ok {
		config["MIGRATIONS_DIR"] = dir
	} else {
		config["MIGRATIONS_DIR"] = "./migrations"
	}
	return config
}

var players = []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank"}

const (
	numDays        = 30
	matchesPerDay  = 5
	doublesPortion = 0.3
	winLossPortion = 0.1
)

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], "", "", cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	store := matchlog.New(db)
	for _, name := range players {
		if err := store.AddPlayer(name); err != nil {
			log.Fatalf("Failed to register player %s: %s", name, err)
		}
	}
	log.Info("Ensured dummy players exist.")

	startTime := time.Now()
	entries := make([]pingpong.DayEntry, 0, numDays)
	day := time.Now().AddDate(0, 0, -numDays)
	total := 0
	for i := 0; i < numDays; i++ {
		date := day.AddDate(0, 0, i).Format("2006-01-02")
		count := 1 + rand.Intn(matchesPerDay)
		matches := make([]pingpong.RawMatch, 0, count)
		for j := 0; j < count; j++ {
			matches = append(matches, randomMatch())
		}
		total += count
		entries = append(entries, pingpong.DayEntry{Date: date, Matches: matches})
	}

	if err := store.UpsertDays(entries); err != nil {
		log.Fatalf("Failed to seed matches: %s", err)
	}

	log.Info("Seeding complete", "days", numDays, "matches", total, "duration", time.Since(startTime))
	fmt.Printf("Seeded %d matches across %d days\n", total, numDays)
}

func randomMatch() pingpong.RawMatch {
	picks := rand.Perm(len(players))

	if rand.Float64() < doublesPortion {
		s1, s2 := randomScore()
		return pingpong.RawMatch{
			ID:    uuid.NewString(),
			Type:  "doubles",
			Team1: &pingpong.RawTeam{Server: players[picks[0]], Partner: players[picks[1]]},
			Team2: &pingpong.RawTeam{Receiver: players[picks[2]], Partner: players[picks[3]]},
			Score: &pingpong.RawScore{Team1: s1, Team2: s2},
		}
	}

	m := pingpong.RawMatch{
		ID:      uuid.NewString(),
		Type:    "singles",
		Player1: players[picks[0]],
		Player2: players[picks[1]],
	}
	if rand.Float64() < winLossPortion {
		m.ResultType = string(pingpong.EncodingWinLoss)
		if rand.Intn(2) == 0 {
			m.ResultValue = "W"
		} else {
			m.ResultValue = "L"
		}
		return m
	}
	s1, s2 := randomScore()
	m.Score = &pingpong.RawScore{Player1: s1, Player2: s2}
	return m
}

// randomScore produces a plausible table tennis game score: the winner lands
// on 11, or past it for deuce games.
func randomScore() (int, int) {
	loser := rand.Intn(12)
	winner := 11
	if loser >= 10 {
		winner = loser + 2
	}
	if rand.Intn(2) == 0 {
		return winner, loser
	}
	return loser, winner
}
