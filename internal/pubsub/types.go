package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventStatsComputed EventType = "stats-computed"
	EventDigestSent    EventType = "digest-sent"
)

// StatsComputedEvent is published after a successful report run so other
// systems can react without recomputing anything.
type StatsComputedEvent struct {
	Matches        int      `msgpack:"matches"`
	Skipped        int      `msgpack:"skipped"`
	Players        []string `msgpack:"players"`
	GeneratedAtSec int64    `msgpack:"generated_at_sec"`
}
