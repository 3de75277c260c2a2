package events

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogPublisher writes events to the log instead of a broker.
// It is used when no NATS URL is configured.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	log.Debug().
		Str("event_id", event.ID.String()).
		Str("event_type", event.Type).
		Str("aggregate_id", event.AggregateID.String()).
		RawJSON("payload", event.Payload).
		Msg("Publishing event")
	return nil
}
