package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mauv0809/pingpong-ledger/internal/config"
	"github.com/mauv0809/pingpong-ledger/internal/database"
	"github.com/mauv0809/pingpong-ledger/internal/elo"
	"github.com/mauv0809/pingpong-ledger/internal/matchlog"
	"github.com/mauv0809/pingpong-ledger/internal/metrics"
	"github.com/mauv0809/pingpong-ledger/internal/notifier/slack"
	"github.com/mauv0809/pingpong-ledger/internal/pingpong"
	"github.com/mauv0809/pingpong-ledger/internal/report"
)

var (
	window int
	policy string
	dryRun bool
)

func init() {
	ratingsCmd.Flags().IntVar(&window, "window", 0, "Restrict current ratings to the most recent N matches (0 = full log)")
	ratingsCmd.Flags().StringVar(&policy, "policy", "hybrid", "Rating policy for current ratings (baseline or hybrid)")
	digestCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the digest instead of posting it to Slack")

	playersCmd.AddCommand(playersAddCmd)
	playersCmd.AddCommand(playersListCmd)

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(ratingsCmd)
	rootCmd.AddCommand(upsetsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(digestCmd)
}

// openStore loads configuration and opens the ledger database. The returned
// teardown must be deferred by the caller.
func openStore() (matchlog.LedgerStore, func(), error) {
	cfg := config.Load()
	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return matchlog.New(db), teardown, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a ledger JSON file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		entries, err := matchlog.LoadFile(args[0])
		if err != nil {
			return err
		}
		if assigned := matchlog.EnsureIDs(entries); assigned > 0 {
			log.Info("Assigned ids to matches without one", "count", assigned)
		}
		if err := store.UpsertDays(entries); err != nil {
			return fmt.Errorf("failed to import ledger: %w", err)
		}

		matches := 0
		for _, e := range entries {
			matches += len(e.Matches)
		}
		fmt.Printf("Imported %d matches across %d days\n", matches, len(entries))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute and print the full statistics report",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		rep, err := report.NewGenerator(store, metrics.NewService(), 0).Generate()
		if err != nil {
			return err
		}
		return printJSON(rep)
	},
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings",
	Short: "Print current ratings and history per context",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		var p elo.Policy
		switch policy {
		case "baseline":
			p = elo.Baseline()
		case "hybrid":
			p = elo.Hybrid()
		default:
			return fmt.Errorf("unknown policy %q (want baseline or hybrid)", policy)
		}

		days, err := store.GetDayEntries()
		if err != nil {
			return err
		}
		events, skipped := pingpong.NormalizeDays(days)
		if skipped > 0 {
			log.Warn("Skipped malformed ledger records", "count", skipped)
		}

		ratings := elo.NewEngine(p, window).Compute(pingpong.SortEvents(events))
		return printJSON(ratings)
	},
}

var upsetsCmd = &cobra.Command{
	Use:   "upsets",
	Short: "Print the biggest upsets on record",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		rep, err := report.NewGenerator(store, metrics.NewService(), 0).Generate()
		if err != nil {
			return err
		}
		return printJSON(rep.Upsets)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Manage registered players",
}

var playersAddCmd = &cobra.Command{
	Use:   "add <name>...",
	Short: "Register one or more players",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		for _, name := range args {
			if err := store.AddPlayer(name); err != nil {
				return err
			}
		}
		return nil
	},
}

var playersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		players, err := store.GetRegisteredPlayers()
		if err != nil {
			return err
		}
		for _, name := range players {
			fmt.Println(name)
		}
		return nil
	},
}

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Post the statistics digest to Slack",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer teardown()

		metricsSvc := metrics.NewService()
		store := matchlog.New(db)
		rep, err := report.NewGenerator(store, metricsSvc, 0).Generate()
		if err != nil {
			return err
		}

		n := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		return n.SendDigest(rep, dryRun)
	},
}
