package models

import (
	"time"

	"github.com/google/uuid"
)

type TournamentStatus string

const (
	TournamentStatusUpcoming   TournamentStatus = "UPCOMING"
	TournamentStatusInProgress TournamentStatus = "IN-PROGRESS"
	TournamentStatusCompleted  TournamentStatus = "COMPLETED"
)

// IsValid reports whether s is one of the known tournament statuses
func (s TournamentStatus) IsValid() bool {
	switch s {
	case TournamentStatusUpcoming, TournamentStatusInProgress, TournamentStatusCompleted:
		return true
	}
	return false
}

// Tournament holds an append-only, ordered list of result references.
type Tournament struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      TournamentStatus `json:"status"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	ResultIDs   []uuid.UUID      `json:"result_ids"`
	CreatedAt   time.Time        `json:"created_at"`

	Results []*Result `json:"results,omitempty"`
}
