package models

import (
	"time"

	"github.com/google/uuid"
)

// FantasyTeam is an owner's ordered roster of players.
// PlayerIDs is the stored reference list; Owner and Players are filled in at read time.
type FantasyTeam struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name,omitempty"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	PlayerIDs []uuid.UUID `json:"player_ids"`
	CreatedAt time.Time   `json:"created_at"`

	Owner   *Owner    `json:"owner"`
	Players []*Player `json:"players,omitempty"`
}
