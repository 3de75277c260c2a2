package results

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/results/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	ListResults(ctx context.Context) ([]db.Result, error)
	GetResultsByIDs(ctx context.Context, ids []uuid.UUID) ([]db.Result, error)
	GetResultsByPlayerIDs(ctx context.Context, playerIds []uuid.UUID) ([]db.Result, error)
}

// Repository reads result rows. Results are written only by the tournament
// aggregator, which appends them together with the tournament's reference list.
type Repository struct {
	queries Querier
}

func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

func (r *Repository) GetResults(ctx context.Context) ([]models.Result, error) {
	results, err := r.queries.ListResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return DBResultsToModels(results), nil
}

func (r *Repository) GetResultsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Result, error) {
	if len(ids) == 0 {
		return []models.Result{}, nil
	}

	results, err := r.queries.GetResultsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get results by ids: %w", err)
	}
	return DBResultsToModels(results), nil
}

func (r *Repository) GetResultsByPlayerIDs(ctx context.Context, playerIDs []uuid.UUID) ([]models.Result, error) {
	if len(playerIDs) == 0 {
		return []models.Result{}, nil
	}

	results, err := r.queries.GetResultsByPlayerIDs(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get results by players: %w", err)
	}
	return DBResultsToModels(results), nil
}

// DBResultsToModels converts sqlc rows to domain results
func DBResultsToModels(results []db.Result) []models.Result {
	out := make([]models.Result, len(results))
	for i, result := range results {
		out[i] = models.Result{
			ID:           result.ID,
			TournamentID: result.TournamentID,
			PlayerID:     result.PlayerID,
			Position:     result.Position,
			Points:       int(result.Points),
			CreatedAt:    result.CreatedAt,
		}
	}
	return out
}
