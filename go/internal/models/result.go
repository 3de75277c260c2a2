package models

import (
	"time"

	"github.com/google/uuid"
)

// Result is a single player's finish in a tournament
type Result struct {
	ID           uuid.UUID `json:"id"`
	TournamentID uuid.UUID `json:"tournament_id"`
	PlayerID     uuid.UUID `json:"player_id"`
	Position     string    `json:"position"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"created_at"`

	Player *Player `json:"player"`
}
