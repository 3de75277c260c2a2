package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeTeamCreated               = "team.created"
	TypeTournamentResultsAppended = "tournament.results_appended"
	TypePlayerPgaIDUpdated        = "player.pga_id_updated"
)

// Event is a domain event announced after a successful write
type Event struct {
	ID          uuid.UUID       `json:"event_id"`
	Type        string          `json:"event_type"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"timestamp"`
}

// Publisher delivers events to a broker
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type ResultsAppendedPayload struct {
	TournamentID uuid.UUID   `json:"tournament_id"`
	ResultIDs    []uuid.UUID `json:"result_ids"`
}

type PgaIDUpdatedPayload struct {
	PlayerID uuid.UUID `json:"player_id"`
	PgaID    int       `json:"pga_id"`
}
