package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/mauv0809/pingpong-ledger/internal/elo"
	"github.com/mauv0809/pingpong-ledger/internal/metrics"
	"github.com/mauv0809/pingpong-ledger/internal/notifier"
	"github.com/mauv0809/pingpong-ledger/internal/report"
	"github.com/mauv0809/pingpong-ledger/internal/upsets"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

const leaderboardSize = 10

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) error {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncDigestFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncDigestSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return nil
}

// SendDigest posts the full digest message.
func (s *Notifier) SendDigest(rep *report.Report, dryRun bool) error {
	msg := s.formatDigest(rep)
	return s.sendMessage(msg, dryRun)
}

// SendLeaderboard posts only the leaderboard blocks.
func (s *Notifier) SendLeaderboard(rep *report.Report, dryRun bool) error {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "🏆 Rating Leaderboard 🏆", true, false)),
	}
	blocks = append(blocks, s.leaderboardBlocks(rep)...)
	return s.sendMessage(slack.NewBlockMessage(blocks...), dryRun)
}

// formatDigest creates the Slack digest message using Block Kit.
func (s *Notifier) formatDigest(rep *report.Report) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏓 Ping Pong Digest 🏓", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Leaderboard:", true, false), nil, nil))
	blocks = append(blocks, s.leaderboardBlocks(rep)...)

	if upsetBlocks := s.upsetBlocks(rep.Upsets); len(upsetBlocks) > 0 {
		blocks = append(blocks, slack.NewDividerBlock())
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Biggest upsets:", true, false), nil, nil))
		blocks = append(blocks, upsetBlocks...)
	}

	activityText := fmt.Sprintf("%d matches | %d points scored", rep.MatchCount, rep.TotalPoints)
	if rep.Temporal.MostActiveDate != "" {
		activityText += fmt.Sprintf(" | busiest day %s", rep.Temporal.MostActiveDate)
	}
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", activityText, true, false)))

	return slack.NewBlockMessage(blocks...)
}

// leaderboardBlocks renders the top players by current overall rating.
func (s *Notifier) leaderboardBlocks(rep *report.Report) []slack.Block {
	current := rep.Ratings[elo.ContextOverall].Current
	if len(current) == 0 {
		return []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No rated players yet. Go play some matches!", true, false), nil, nil),
		}
	}

	type entry struct {
		name   string
		rating float64
	}
	entries := make([]entry, 0, len(current))
	for name, rating := range current {
		entries = append(entries, entry{name, rating})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rating != entries[j].rating {
			return entries[i].rating > entries[j].rating
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}

	blocks := make([]slack.Block, 0, len(entries))
	for i, e := range entries {
		rank := i + 1
		var medal string
		switch rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		line := fmt.Sprintf("%d. %s %s - %.1f", rank, medal, e.name, e.rating)
		if stat, ok := rep.Players[e.name]; ok {
			line += fmt.Sprintf("\n> Win %%: %.1f%% (%d/%d) | Streak: %+d", stat.WinPercentage, stat.TotalWon, stat.TotalPlayed, stat.CurrentStreak)
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))
	}
	return blocks
}

// upsetBlocks renders the top upsets, singles first.
func (s *Notifier) upsetBlocks(u upsets.Upsets) []slack.Block {
	list := make([]upsets.Upset, 0, 6)
	list = append(list, u.Singles...)
	list = append(list, u.Doubles...)
	if len(list) > 3 {
		list = list[:3]
	}

	blocks := make([]slack.Block, 0, len(list))
	for _, upset := range list {
		text := fmt.Sprintf("⚡ %s beat %s (%s) on %s - only %.1f%% to win",
			upset.Winner, upset.Loser, upset.Score, upset.Date, upset.WinProbability)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", text, true, false), nil, nil))
	}
	return blocks
}
