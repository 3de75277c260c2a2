package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a professional golfer that can be rostered on fantasy teams.
// PgaID is 0 until the player is reconciled against the PGA Tour listing.
type Player struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PgaID     int       `json:"pga_id"`
	Salary    int       `json:"salary"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Results is computed from the results table and never stored on the player row.
	Results []Result `json:"results,omitempty"`
}
