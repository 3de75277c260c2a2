package fantasyteam

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam/db"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/sqlutil"
)

type Querier interface {
	CreateFantasyTeam(ctx context.Context, arg db.CreateFantasyTeamParams) (db.FantasyTeam, error)
	DeleteFantasyTeam(ctx context.Context, id uuid.UUID) (int64, error)
	GetFantasyTeam(ctx context.Context, id uuid.UUID) (db.FantasyTeam, error)
	GetFantasyTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]db.FantasyTeam, error)
	ListFantasyTeams(ctx context.Context) ([]db.FantasyTeam, error)
}

type Repository struct {
	queries Querier
}

func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

func (r *Repository) CreateFantasyTeam(ctx context.Context, req CreateFantasyTeamParams) (*models.FantasyTeam, error) {
	playerIDs := req.PlayerIDs
	if playerIDs == nil {
		playerIDs = []uuid.UUID{}
	}

	team, err := r.queries.CreateFantasyTeam(ctx, db.CreateFantasyTeamParams{
		Name:      sqlutil.ToNullString(req.Name),
		OwnerID:   req.OwnerID,
		PlayerIds: playerIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fantasy team: %w", err)
	}

	return r.dbFantasyTeamToModel(team), nil
}

func (r *Repository) GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	team, err := r.queries.GetFantasyTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team", id)
		}
		return nil, fmt.Errorf("failed to get fantasy team: %w", err)
	}

	return r.dbFantasyTeamToModel(team), nil
}

func (r *Repository) GetFantasyTeams(ctx context.Context) ([]models.FantasyTeam, error) {
	teams, err := r.queries.ListFantasyTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy teams: %w", err)
	}
	return r.dbFantasyTeamsToModels(teams), nil
}

func (r *Repository) GetFantasyTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	teams, err := r.queries.GetFantasyTeamsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fantasy teams by owner: %w", err)
	}
	return r.dbFantasyTeamsToModels(teams), nil
}

// DeleteFantasyTeam removes the team row only; owner and players are untouched
func (r *Repository) DeleteFantasyTeam(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.queries.DeleteFantasyTeam(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete fantasy team: %w", err)
	}
	if deleted == 0 {
		return apperrors.NewNotFoundError("team", id)
	}
	return nil
}

func (r *Repository) dbFantasyTeamsToModels(teams []db.FantasyTeam) []models.FantasyTeam {
	result := make([]models.FantasyTeam, len(teams))
	for i, team := range teams {
		result[i] = *r.dbFantasyTeamToModel(team)
	}
	return result
}

func (r *Repository) dbFantasyTeamToModel(team db.FantasyTeam) *models.FantasyTeam {
	playerIDs := team.PlayerIds
	if playerIDs == nil {
		playerIDs = []uuid.UUID{}
	}
	return &models.FantasyTeam{
		ID:        team.ID,
		Name:      sqlutil.FromNullString(team.Name),
		OwnerID:   team.OwnerID,
		PlayerIDs: playerIDs,
		CreatedAt: team.CreatedAt,
	}
}
