package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Emitter stamps and publishes domain events on behalf of the app layers.
// Delivery is best-effort: the write that produced the event has already
// committed, so a publish failure is logged and never returned.
type Emitter struct {
	publisher Publisher
	clock     clockwork.Clock
}

func NewEmitter(publisher Publisher, clock clockwork.Clock) *Emitter {
	return &Emitter{
		publisher: publisher,
		clock:     clock,
	}
}

// Emit builds an event around payload and hands it to the publisher
func (e *Emitter) Emit(ctx context.Context, eventType string, aggregateID uuid.UUID, payload any) {
	if e == nil || e.publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("Failed to marshal event payload")
		return
	}

	event := Event{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateID: aggregateID,
		Payload:     data,
		CreatedAt:   e.clock.Now().UTC(),
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("event_id", event.ID.String()).
			Str("event_type", eventType).
			Str("aggregate_id", aggregateID.String()).
			Msg("Failed to publish event")
	}
}
