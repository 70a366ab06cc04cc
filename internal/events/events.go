package events

import "context"

// Pub/sub streams and event types for the live audit-trail feed.
const (
	StreamAudit = "events:audit"

	EventLogRecorded = "event_log_recorded"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
