package models

import (
	"time"

	"github.com/google/uuid"
)

// Owner represents a person who owns one or more fantasy teams
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
