package tournaments

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/events"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/populate"
	"github.com/mcdev12/fantasygolf/go/internal/validation"
	"github.com/rs/zerolog/log"
)

// TournamentRepository defines what the app layer needs from the repository
type TournamentRepository interface {
	CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	GetTournaments(ctx context.Context) ([]models.Tournament, error)
	AppendResults(ctx context.Context, tournamentID uuid.UUID, results []models.Result) (*models.Tournament, error)
}

// PlayersRepository checks that result players exist
type PlayersRepository interface {
	GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error)
}

// ResultsApp resolves result references with their players populated
type ResultsApp interface {
	GetResultsByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Result, error)
}

// App handles tournament business logic
type App struct {
	repo    TournamentRepository
	players PlayersRepository
	results ResultsApp
	emitter *events.Emitter
	clock   clockwork.Clock
}

// NewApp creates a new tournaments App
func NewApp(repo TournamentRepository, players PlayersRepository, results ResultsApp, emitter *events.Emitter, clock clockwork.Clock) *App {
	return &App{
		repo:    repo,
		players: players,
		results: results,
		emitter: emitter,
		clock:   clock,
	}
}

// CreateTournament creates a tournament with no results
func (a *App) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	tournament, err := a.repo.CreateTournament(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("tournament_id", tournament.ID.String()).Str("name", tournament.Name).Msg("Created tournament")
	return tournament, nil
}

// GetTournament retrieves a tournament with results and their players populated
func (a *App) GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error) {
	tournament, err := a.repo.GetTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	if err := a.populate(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// GetAllTournaments lists every tournament, populated like GetTournament
func (a *App) GetAllTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := a.repo.GetTournaments(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tournaments {
		if err := a.populate(ctx, &tournaments[i]); err != nil {
			return nil, err
		}
	}
	return tournaments, nil
}

// AddResultsToTournament records new results and appends them, in input
// order, after the tournament's existing results. Every input must name an
// existing player; nothing is written if any input is rejected.
func (a *App) AddResultsToTournament(ctx context.Context, tournamentID uuid.UUID, inputs []ResultInput) (*models.Tournament, error) {
	if _, err := a.repo.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	if err := a.validateResultInputs(ctx, inputs); err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return a.GetTournament(ctx, tournamentID)
	}

	now := a.clock.Now().UTC()
	results := make([]models.Result, len(inputs))
	for i, input := range inputs {
		points := 0
		if input.Points != nil {
			points = *input.Points
		}
		results[i] = models.Result{
			ID:           uuid.New(),
			TournamentID: tournamentID,
			PlayerID:     input.PlayerID,
			Position:     input.Position,
			Points:       points,
			CreatedAt:    now,
		}
	}

	tournament, err := a.repo.AppendResults(ctx, tournamentID, results)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(results))
	for i := range results {
		ids[i] = results[i].ID
	}
	log.Info().
		Str("tournament_id", tournamentID.String()).
		Int("added", len(results)).
		Int("total", len(tournament.ResultIDs)).
		Msg("Added results to tournament")
	a.emitter.Emit(ctx, events.TypeTournamentResultsAppended, tournamentID, events.ResultsAppendedPayload{
		TournamentID: tournamentID,
		ResultIDs:    ids,
	})

	if err := a.populate(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

func (a *App) validateResultInputs(ctx context.Context, inputs []ResultInput) error {
	playerIDs := make([]uuid.UUID, 0, len(inputs))
	for i, input := range inputs {
		if input.PlayerID == uuid.Nil {
			return apperrors.NewInvalidInputError("result %d: player reference required", i)
		}
		if err := validation.Struct(input); err != nil {
			return fmt.Errorf("result %d: %w", i, err)
		}
		playerIDs = append(playerIDs, input.PlayerID)
	}

	playerIDs = populate.Unique(playerIDs)
	if len(playerIDs) == 0 {
		return nil
	}

	found, err := a.players.GetPlayersByIDs(ctx, playerIDs)
	if err != nil {
		return fmt.Errorf("failed to load result players: %w", err)
	}

	known := populate.Index(found, func(p *models.Player) uuid.UUID { return p.ID })
	for _, id := range playerIDs {
		if _, ok := known[id]; !ok {
			return apperrors.NewInvalidInputError("player %s does not exist", id)
		}
	}
	return nil
}

func (a *App) populate(ctx context.Context, tournament *models.Tournament) error {
	results, err := a.results.GetResultsByIDs(ctx, tournament.ResultIDs)
	if err != nil {
		return fmt.Errorf("failed to load tournament results: %w", err)
	}
	tournament.Results = results
	return nil
}
