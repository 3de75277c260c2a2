package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/player/db"
	"github.com/mcdev12/fantasygolf/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreatePlayer(ctx context.Context, arg db.CreatePlayerParams) (db.Player, error)
	UpsertPlayerByName(ctx context.Context, name string) (db.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
	GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]db.Player, error)
	ListPlayers(ctx context.Context) ([]db.Player, error)
	UpdatePlayerPgaID(ctx context.Context, arg db.UpdatePlayerPgaIDParams) (db.Player, error)
}

// Repository handles all player-related database operations
type Repository struct {
	db      sqlutil.TxBeginner
	queries Querier
}

// NewRepository creates a new player repository
func NewRepository(queries Querier, database sqlutil.TxBeginner) *Repository {
	return &Repository{
		queries: queries,
		db:      database,
	}
}

// CreatePlayer inserts a single player; a taken name is a ConflictError
func (r *Repository) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	player, err := r.queries.CreatePlayer(ctx, createParams(req))
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("player", "name "+req.Name)
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return dbPlayerToModel(player), nil
}

// CreatePlayers inserts all players in one transaction. Any failure rolls
// back the whole batch.
func (r *Repository) CreatePlayers(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, error) {
	created := make([]models.Player, 0, len(reqs))
	err := sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *db.Queries { return db.New(tx) }, func(q *db.Queries) error {
		for _, req := range reqs {
			player, err := q.CreatePlayer(ctx, createParams(req))
			if err != nil {
				if sqlutil.IsUniqueViolation(err) {
					return apperrors.NewConflictError("player", "name "+req.Name)
				}
				return fmt.Errorf("failed to create player %q: %w", req.Name, err)
			}
			created = append(created, *dbPlayerToModel(player))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpsertPlayerByName returns the player with the given name, inserting it
// with zero salary and no PGA id if absent.
func (r *Repository) UpsertPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	player, err := r.queries.UpsertPlayerByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player: %w", err)
	}
	return dbPlayerToModel(player), nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("player", id)
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return dbPlayerToModel(player), nil
}

// GetPlayersByIDs returns the players that exist among ids
func (r *Repository) GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error) {
	if len(ids) == 0 {
		return []models.Player{}, nil
	}

	players, err := r.queries.GetPlayersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get players by ids: %w", err)
	}
	return dbPlayersToModels(players), nil
}

// GetPlayers lists all players
func (r *Repository) GetPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return dbPlayersToModels(players), nil
}

// UpdatePlayerPgaID sets the PGA Tour id of a player
func (r *Repository) UpdatePlayerPgaID(ctx context.Context, id uuid.UUID, pgaID int) (*models.Player, error) {
	player, err := r.queries.UpdatePlayerPgaID(ctx, db.UpdatePlayerPgaIDParams{
		ID:    id,
		PgaID: int32(pgaID),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("player", id)
		}
		return nil, fmt.Errorf("failed to update player pga id: %w", err)
	}
	return dbPlayerToModel(player), nil
}

func createParams(req CreatePlayerRequest) db.CreatePlayerParams {
	return db.CreatePlayerParams{
		Name:      req.Name,
		PgaID:     int32(req.PgaID),
		Salary:    int32(req.Salary),
		AvatarUrl: sqlutil.ToNullString(req.AvatarURL),
	}
}

func dbPlayersToModels(players []db.Player) []models.Player {
	result := make([]models.Player, len(players))
	for i, player := range players {
		result[i] = *dbPlayerToModel(player)
	}
	return result
}

func dbPlayerToModel(player db.Player) *models.Player {
	return &models.Player{
		ID:        player.ID,
		Name:      player.Name,
		PgaID:     int(player.PgaID),
		Salary:    int(player.Salary),
		AvatarURL: sqlutil.FromNullString(player.AvatarUrl),
		CreatedAt: player.CreatedAt,
	}
}
