package main

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/pingpong-ledger/internal/config"
	"github.com/mauv0809/pingpong-ledger/internal/database"
	"github.com/mauv0809/pingpong-ledger/internal/matchlog"
	"github.com/mauv0809/pingpong-ledger/internal/metrics"
	"github.com/mauv0809/pingpong-ledger/internal/notifier/slack"
	"github.com/mauv0809/pingpong-ledger/internal/pubsub"
	"github.com/mauv0809/pingpong-ledger/internal/report"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	store := matchlog.New(db)
	metricsSvc := metrics.NewService()
	metricsSvc.SetStartupTime(time.Since(startTime).Seconds())

	if cfg.LedgerPath != "" {
		entries, err := matchlog.LoadFile(cfg.LedgerPath)
		if err != nil {
			log.Fatalf("Failed to load ledger file: %s", err)
		}
		if assigned := matchlog.EnsureIDs(entries); assigned > 0 {
			log.Info("Assigned ids to matches without one", "count", assigned)
		}
		if err := store.UpsertDays(entries); err != nil {
			log.Fatalf("Failed to import ledger file: %s", err)
		}
		log.Info("Imported ledger file", "path", cfg.LedgerPath, "days", len(entries))
	}

	generator := report.NewGenerator(store, metricsSvc, 0)
	rep, err := generator.Generate()
	if err != nil {
		log.Fatalf("Failed to generate report: %s", err)
	}

	var pubsubClient pubsub.PubSubClient
	if cfg.ProjectID != "" {
		pubsubClient = pubsub.New(cfg.ProjectID)
		players := make([]string, 0, len(rep.Players))
		for name := range rep.Players {
			players = append(players, name)
		}
		event := pubsub.StatsComputedEvent{
			Matches:        rep.MatchCount,
			Skipped:        rep.SkippedRecords,
			Players:        players,
			GeneratedAtSec: rep.GeneratedAt.Unix(),
		}
		if err := pubsubClient.SendMessage(pubsub.EventStatsComputed, event); err != nil {
			log.Error("Failed to publish stats event", "error", err)
		}
	}

	if cfg.Slack.Token != "" && cfg.Slack.ChannelID != "" {
		notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		if err := notifier.SendDigest(rep, false); err != nil {
			log.Error("Failed to send digest", "error", err)
		} else if pubsubClient != nil {
			if err := pubsubClient.SendMessage(pubsub.EventDigestSent, rep.GeneratedAt.Unix()); err != nil {
				log.Error("Failed to publish digest event", "error", err)
			}
		}
	}

	log.Info("Run complete", "duration_ms", time.Since(startTime).Milliseconds(), "matches", rep.MatchCount, "skipped", rep.SkippedRecords)
}
