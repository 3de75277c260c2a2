package tournaments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTournament(ctx context.Context, arg db.CreateTournamentParams) (db.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (db.Tournament, error)
	ListTournaments(ctx context.Context) ([]db.Tournament, error)
}

// TxBeginner is satisfied by *pgxpool.Pool
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository handles tournament persistence. Plain reads and writes go
// through sqlc; appending results runs on a pgx transaction.
type Repository struct {
	queries Querier
	pool    TxBeginner
}

// NewRepository creates a new tournaments repository
func NewRepository(querier Querier, pool TxBeginner) *Repository {
	return &Repository{
		queries: querier,
		pool:    pool,
	}
}

// CreateTournament inserts a tournament with an empty result list
func (r *Repository) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error) {
	tournament, err := r.queries.CreateTournament(ctx, db.CreateTournamentParams{
		Name:        req.Name,
		Description: req.Description,
		Status:      string(req.Status),
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return dbTournamentToModel(tournament), nil
}

// GetTournament retrieves a tournament by ID
func (r *Repository) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	tournament, err := r.queries.GetTournament(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tournament", id)
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return dbTournamentToModel(tournament), nil
}

// GetTournaments lists all tournaments
func (r *Repository) GetTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := r.queries.ListTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	result := make([]models.Tournament, len(tournaments))
	for i, tournament := range tournaments {
		result[i] = *dbTournamentToModel(tournament)
	}
	return result, nil
}

func dbTournamentToModel(t db.Tournament) *models.Tournament {
	resultIDs := t.ResultIds
	if resultIDs == nil {
		resultIDs = []uuid.UUID{}
	}
	return &models.Tournament{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Status:      models.TournamentStatus(t.Status),
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		ResultIDs:   resultIDs,
		CreatedAt:   t.CreatedAt,
	}
}
