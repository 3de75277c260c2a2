package player

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/events"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/validation"
	"github.com/rs/zerolog/log"
)

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	CreatePlayers(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, error)
	UpsertPlayerByName(ctx context.Context, name string) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error)
	GetPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayerPgaID(ctx context.Context, id uuid.UUID, pgaID int) (*models.Player, error)
}

// ResultsRepository supplies the results a player appears in
type ResultsRepository interface {
	GetResultsByPlayerIDs(ctx context.Context, playerIDs []uuid.UUID) ([]models.Result, error)
}

// App handles player business logic
type App struct {
	repo    PlayerRepository
	results ResultsRepository
	emitter *events.Emitter
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, results ResultsRepository, emitter *events.Emitter) *App {
	return &App{
		repo:    repo,
		results: results,
		emitter: emitter,
	}
}

// CreatePlayer creates a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	player, err := a.repo.CreatePlayer(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("player_id", player.ID.String()).Str("name", player.Name).Msg("Created player")
	return player, nil
}

// CreatePlayersBulk validates every request up front and then creates all
// players atomically. Nothing is written if any request is rejected.
func (a *App) CreatePlayersBulk(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, error) {
	for i, req := range reqs {
		if err := validation.Struct(req); err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
	}

	players, err := a.repo.CreatePlayers(ctx, reqs)
	if err != nil {
		return nil, err
	}

	log.Info().Int("count", len(players)).Msg("Created players")
	return players, nil
}

// FindOrCreatePlayer resolves a player by name, creating it with zero salary
// and no PGA id when absent.
func (a *App) FindOrCreatePlayer(ctx context.Context, name string) (*models.Player, error) {
	if err := validation.Var("name", name, "required,min=3"); err != nil {
		return nil, err
	}

	player, err := a.repo.UpsertPlayerByName(ctx, name)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("player_id", player.ID.String()).Str("name", player.Name).Msg("Resolved player")
	return player, nil
}

// UpdatePlayerPgaID sets a player's PGA Tour id. Setting the same id twice
// leaves the player unchanged.
func (a *App) UpdatePlayerPgaID(ctx context.Context, id uuid.UUID, pgaID int) (*models.Player, error) {
	if err := validation.Var("pga_id", pgaID, "gte=0"); err != nil {
		return nil, err
	}

	player, err := a.repo.UpdatePlayerPgaID(ctx, id, pgaID)
	if err != nil {
		return nil, err
	}

	log.Info().Str("player_id", player.ID.String()).Int("pga_id", pgaID).Msg("Updated player PGA id")
	a.emitter.Emit(ctx, events.TypePlayerPgaIDUpdated, player.ID, events.PgaIDUpdatedPayload{
		PlayerID: player.ID,
		PgaID:    pgaID,
	})
	return player, nil
}

// GetPlayer retrieves a player by ID along with the results they appear in
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	player, err := a.repo.GetPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	players := []models.Player{*player}
	if err := a.attachResults(ctx, players); err != nil {
		return nil, err
	}
	return &players[0], nil
}

// GetAllPlayers lists every player with their results
func (a *App) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := a.repo.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.attachResults(ctx, players); err != nil {
		return nil, err
	}
	return players, nil
}

// GetPlayersByIDs returns the players that exist among ids, without results
func (a *App) GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error) {
	return a.repo.GetPlayersByIDs(ctx, ids)
}

// attachResults fills the computed results back-reference in place
func (a *App) attachResults(ctx context.Context, players []models.Player) error {
	if len(players) == 0 || a.results == nil {
		return nil
	}

	ids := make([]uuid.UUID, len(players))
	for i := range players {
		ids[i] = players[i].ID
	}

	results, err := a.results.GetResultsByPlayerIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load player results: %w", err)
	}

	byPlayer := make(map[uuid.UUID][]models.Result, len(players))
	for _, result := range results {
		byPlayer[result.PlayerID] = append(byPlayer[result.PlayerID], result)
	}
	for i := range players {
		players[i].Results = byPlayer[players[i].ID]
	}
	return nil
}
