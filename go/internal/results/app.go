package results

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/populate"
)

// ResultsRepository defines what the app layer needs from the repository
type ResultsRepository interface {
	GetResults(ctx context.Context) ([]models.Result, error)
	GetResultsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Result, error)
}

// PlayersRepository resolves the player each result references
type PlayersRepository interface {
	GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error)
}

type App struct {
	repo    ResultsRepository
	players PlayersRepository
}

func NewApp(repo ResultsRepository, players PlayersRepository) *App {
	return &App{
		repo:    repo,
		players: players,
	}
}

// GetAllResults lists every result with its player populated
func (a *App) GetAllResults(ctx context.Context) ([]models.Result, error) {
	results, err := a.repo.GetResults(ctx)
	if err != nil {
		return nil, err
	}
	if err := PopulatePlayers(ctx, a.players, results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetResultsByIDs returns results in the order of ids with players populated.
// Ids with no stored result come back as nil entries.
func (a *App) GetResultsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Result, error) {
	results, err := a.repo.GetResultsByIDs(ctx, populate.Unique(ids))
	if err != nil {
		return nil, err
	}
	if err := PopulatePlayers(ctx, a.players, results); err != nil {
		return nil, err
	}
	return populate.Resolve(ids, populate.Index(results, resultID)), nil
}

// PopulatePlayers sets Player on each result in place. A result whose
// player no longer exists keeps a nil Player.
func PopulatePlayers(ctx context.Context, players PlayersRepository, results []models.Result) error {
	if len(results) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(results))
	for i := range results {
		ids[i] = results[i].PlayerID
	}

	found, err := players.GetPlayersByIDs(ctx, populate.Unique(ids))
	if err != nil {
		return fmt.Errorf("failed to load result players: %w", err)
	}

	index := populate.Index(found, playerID)
	for i := range results {
		results[i].Player = index[results[i].PlayerID]
	}
	return nil
}

func resultID(r *models.Result) uuid.UUID { return r.ID }

func playerID(p *models.Player) uuid.UUID { return p.ID }
