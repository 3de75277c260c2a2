package tournaments

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

// CreateTournamentRequest contains all data needed to create a tournament
type CreateTournamentRequest struct {
	Name        string                  `json:"name" validate:"required,min=3"`
	Description string                  `json:"description"`
	Status      models.TournamentStatus `json:"status" validate:"required,oneof=UPCOMING IN-PROGRESS COMPLETED"`
	StartDate   time.Time               `json:"start_date" validate:"required"`
	EndDate     time.Time               `json:"end_date" validate:"required,gtefield=StartDate"`
}

// ResultInput is one finish to record. The player must already exist;
// Points defaults to 0 when nil.
type ResultInput struct {
	PlayerID uuid.UUID `json:"player_id"`
	Position string    `json:"position" validate:"required"`
	Points   *int      `json:"points"`
}
