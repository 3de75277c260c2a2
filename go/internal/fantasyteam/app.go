package fantasyteam

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/events"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	"github.com/mcdev12/fantasygolf/go/internal/populate"
	"github.com/rs/zerolog/log"
)

// FantasyTeamRepository defines what the app layer needs from the repository
type FantasyTeamRepository interface {
	CreateFantasyTeam(ctx context.Context, req CreateFantasyTeamParams) (*models.FantasyTeam, error)
	GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	GetFantasyTeams(ctx context.Context) ([]models.FantasyTeam, error)
	GetFantasyTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error)
	DeleteFantasyTeam(ctx context.Context, id uuid.UUID) error
}

// OwnersApp resolves and loads team owners
type OwnersApp interface {
	FindOrCreateOwner(ctx context.Context, req owners.CreateOwnerRequest) (*models.Owner, error)
	GetOwnersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Owner, error)
}

// PlayersApp resolves and loads rostered players
type PlayersApp interface {
	FindOrCreatePlayer(ctx context.Context, name string) (*models.Player, error)
	GetPlayersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Player, error)
}

// App assembles fantasy teams from owner and player references
type App struct {
	repo    FantasyTeamRepository
	owners  OwnersApp
	players PlayersApp
	emitter *events.Emitter
}

// NewApp creates a new fantasy teams App
func NewApp(repo FantasyTeamRepository, ownersApp OwnersApp, playersApp PlayersApp, emitter *events.Emitter) *App {
	return &App{
		repo:    repo,
		owners:  ownersApp,
		players: playersApp,
		emitter: emitter,
	}
}

// CreateTeam resolves the owner and every roster entry, then persists the
// team with its roster in request order. Owners given by details and players
// given by name are found or created; ids are stored without a lookup.
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.FantasyTeam, error) {
	if req.Owner == nil {
		return nil, apperrors.NewInvalidInputError("owner reference required")
	}

	ownerID, owner, err := a.resolveOwner(ctx, req.Owner)
	if err != nil {
		return nil, err
	}

	playerIDs, err := a.resolveRoster(ctx, req.Players)
	if err != nil {
		return nil, err
	}

	team, err := a.repo.CreateFantasyTeam(ctx, CreateFantasyTeamParams{
		Name:      req.Name,
		OwnerID:   ownerID,
		PlayerIDs: playerIDs,
	})
	if err != nil {
		return nil, err
	}

	if owner != nil {
		team.Owner = owner
	} else if err := a.populateOwners(ctx, []*models.FantasyTeam{team}); err != nil {
		return nil, err
	}

	if req.PopulatePlayers {
		if err := a.populatePlayers(ctx, []*models.FantasyTeam{team}); err != nil {
			return nil, err
		}
	}

	log.Info().
		Str("team_id", team.ID.String()).
		Str("owner_id", team.OwnerID.String()).
		Int("players", len(team.PlayerIDs)).
		Msg("Created fantasy team")
	a.emitter.Emit(ctx, events.TypeTeamCreated, team.ID, team)
	return team, nil
}

// CreateTeams creates teams one at a time in order and stops at the first
// failure. Teams created before the failure stay persisted and are returned
// together with an *apperrors.BatchError naming the failing index.
func (a *App) CreateTeams(ctx context.Context, reqs []CreateTeamRequest) ([]models.FantasyTeam, error) {
	created := make([]models.FantasyTeam, 0, len(reqs))
	for i, req := range reqs {
		team, err := a.CreateTeam(ctx, req)
		if err != nil {
			log.Warn().Err(err).Int("index", i).Int("created", len(created)).Msg("Team batch stopped")
			return created, &apperrors.BatchError{Index: i, Err: err}
		}
		created = append(created, *team)
	}
	return created, nil
}

// CreateTeamsFromInputs converts wire inputs and creates them like
// CreateTeams. An input that cannot be converted ends the batch at its index,
// after the inputs before it have been created.
func (a *App) CreateTeamsFromInputs(ctx context.Context, inputs []CreateTeamInput) ([]models.FantasyTeam, error) {
	reqs := make([]CreateTeamRequest, 0, len(inputs))
	var convErr error
	for i, input := range inputs {
		req, err := input.ToRequest()
		if err != nil {
			convErr = &apperrors.BatchError{Index: i, Err: err}
			break
		}
		reqs = append(reqs, req)
	}

	created, err := a.CreateTeams(ctx, reqs)
	if err != nil {
		return created, err
	}
	return created, convErr
}

// GetTeamByID retrieves a team with owner and roster populated
func (a *App) GetTeamByID(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	team, err := a.repo.GetFantasyTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := a.populate(ctx, []*models.FantasyTeam{team}); err != nil {
		return nil, err
	}
	return team, nil
}

// GetAllTeams lists every team with owner and roster populated
func (a *App) GetAllTeams(ctx context.Context) ([]models.FantasyTeam, error) {
	teams, err := a.repo.GetFantasyTeams(ctx)
	if err != nil {
		return nil, err
	}
	return a.populateAll(ctx, teams)
}

// GetTeamsByOwner lists an owner's teams with owner and roster populated
func (a *App) GetTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	teams, err := a.repo.GetFantasyTeamsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return a.populateAll(ctx, teams)
}

// DeleteTeamByID removes a team. Its owner and players are left in place.
func (a *App) DeleteTeamByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := a.repo.DeleteFantasyTeam(ctx, id); err != nil {
		return false, err
	}

	log.Info().Str("team_id", id.String()).Msg("Deleted fantasy team")
	return true, nil
}

func (a *App) resolveOwner(ctx context.Context, ref OwnerRef) (uuid.UUID, *models.Owner, error) {
	switch ref := ref.(type) {
	case OwnerByID:
		if ref.ID == uuid.Nil {
			return uuid.Nil, nil, apperrors.NewInvalidInputError("owner reference required")
		}
		return ref.ID, nil, nil
	case OwnerByDetails:
		owner, err := a.owners.FindOrCreateOwner(ctx, owners.CreateOwnerRequest{
			Name:  ref.Name,
			Email: ref.Email,
		})
		if err != nil {
			return uuid.Nil, nil, err
		}
		return owner.ID, owner, nil
	default:
		return uuid.Nil, nil, apperrors.NewInvalidInputError("unsupported owner reference %T", ref)
	}
}

func (a *App) resolveRoster(ctx context.Context, refs []PlayerRef) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(refs))
	for i, ref := range refs {
		switch ref := ref.(type) {
		case PlayerByID:
			if ref.ID == uuid.Nil {
				return nil, apperrors.NewInvalidInputError("players[%d]: player reference requires player_id or name", i)
			}
			ids[i] = ref.ID
		case PlayerByName:
			player, err := a.players.FindOrCreatePlayer(ctx, ref.Name)
			if err != nil {
				return nil, fmt.Errorf("players[%d]: %w", i, err)
			}
			ids[i] = player.ID
		case nil:
			return nil, apperrors.NewInvalidInputError("players[%d]: player reference requires player_id or name", i)
		default:
			return nil, apperrors.NewInvalidInputError("players[%d]: unsupported player reference %T", i, ref)
		}
	}
	return ids, nil
}

func (a *App) populateAll(ctx context.Context, teams []models.FantasyTeam) ([]models.FantasyTeam, error) {
	ptrs := make([]*models.FantasyTeam, len(teams))
	for i := range teams {
		ptrs[i] = &teams[i]
	}
	if err := a.populate(ctx, ptrs); err != nil {
		return nil, err
	}
	return teams, nil
}

func (a *App) populate(ctx context.Context, teams []*models.FantasyTeam) error {
	if err := a.populateOwners(ctx, teams); err != nil {
		return err
	}
	return a.populatePlayers(ctx, teams)
}

// populateOwners sets Owner on each team; a dangling owner id leaves it nil
func (a *App) populateOwners(ctx context.Context, teams []*models.FantasyTeam) error {
	if len(teams) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(teams))
	for i, team := range teams {
		ids[i] = team.OwnerID
	}

	found, err := a.owners.GetOwnersByIDs(ctx, populate.Unique(ids))
	if err != nil {
		return fmt.Errorf("failed to load team owners: %w", err)
	}

	index := populate.Index(found, func(o *models.Owner) uuid.UUID { return o.ID })
	for _, team := range teams {
		team.Owner = index[team.OwnerID]
	}
	return nil
}

// populatePlayers fills Players in roster order; dangling ids become nil entries
func (a *App) populatePlayers(ctx context.Context, teams []*models.FantasyTeam) error {
	var ids []uuid.UUID
	for _, team := range teams {
		ids = append(ids, team.PlayerIDs...)
	}
	if len(ids) == 0 {
		for _, team := range teams {
			team.Players = []*models.Player{}
		}
		return nil
	}

	found, err := a.players.GetPlayersByIDs(ctx, populate.Unique(ids))
	if err != nil {
		return fmt.Errorf("failed to load team players: %w", err)
	}

	index := populate.Index(found, func(p *models.Player) uuid.UUID { return p.ID })
	for _, team := range teams {
		team.Players = populate.Resolve(team.PlayerIDs, index)
	}
	return nil
}
