package fantasyteam

import (
	"context"
	"net/http"
	"strconv"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

const TeamServiceName = "fantasygolf.team.v1.TeamService"

const (
	TeamServiceCreateTeamProcedure      = "/fantasygolf.team.v1.TeamService/CreateTeam"
	TeamServiceCreateTeamsProcedure     = "/fantasygolf.team.v1.TeamService/CreateTeams"
	TeamServiceGetTeamProcedure         = "/fantasygolf.team.v1.TeamService/GetTeam"
	TeamServiceListTeamsProcedure       = "/fantasygolf.team.v1.TeamService/ListTeams"
	TeamServiceGetTeamsByOwnerProcedure = "/fantasygolf.team.v1.TeamService/GetTeamsByOwner"
	TeamServiceDeleteTeamProcedure      = "/fantasygolf.team.v1.TeamService/DeleteTeam"
)

// CreatedCountHeader reports how many teams of a failed batch were persisted
const CreatedCountHeader = "Batch-Created-Count"

type CreateTeamsRequest struct {
	Teams []CreateTeamInput `json:"teams"`
}

type GetTeamRequest struct {
	ID string `json:"id"`
}

type GetTeamsByOwnerRequest struct {
	OwnerID string `json:"owner_id"`
}

type ListTeamsRequest struct{}

type DeleteTeamRequest struct {
	ID string `json:"id"`
}

type TeamResponse struct {
	Team *models.FantasyTeam `json:"team"`
}

type TeamsResponse struct {
	Teams []models.FantasyTeam `json:"teams"`
}

type DeleteTeamResponse struct {
	Deleted bool `json:"deleted"`
}

// FantasyTeamApp defines what the service layer needs from the fantasy teams application
type FantasyTeamApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.FantasyTeam, error)
	CreateTeamsFromInputs(ctx context.Context, inputs []CreateTeamInput) ([]models.FantasyTeam, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	GetAllTeams(ctx context.Context) ([]models.FantasyTeam, error)
	GetTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error)
	DeleteTeamByID(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service implements the TeamService Connect handlers
type Service struct {
	app FantasyTeamApp
}

// NewService creates a new fantasy teams service
func NewService(app FantasyTeamApp) *Service {
	return &Service{
		app: app,
	}
}

// CreateTeam creates a team, resolving its owner and roster
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[CreateTeamInput]) (*connect.Response[TeamResponse], error) {
	appReq, err := req.Msg.ToRequest()
	if err != nil {
		return nil, connectutil.Error(err)
	}

	team, err := s.app.CreateTeam(ctx, appReq)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// CreateTeams creates teams in order, stopping at the first failure.
// On failure the error metadata carries the failing index and the number of
// teams that were already persisted.
func (s *Service) CreateTeams(ctx context.Context, req *connect.Request[CreateTeamsRequest]) (*connect.Response[TeamsResponse], error) {
	teams, err := s.app.CreateTeamsFromInputs(ctx, req.Msg.Teams)
	if err != nil {
		connectErr := connectutil.Error(err)
		if ce, ok := connectErr.(*connect.Error); ok {
			ce.Meta().Set(CreatedCountHeader, strconv.Itoa(len(teams)))
		}
		return nil, connectErr
	}
	return connect.NewResponse(&TeamsResponse{Teams: teams}), nil
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[GetTeamRequest]) (*connect.Response[TeamResponse], error) {
	id, err := connectutil.ParseID("team", req.Msg.ID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	team, err := s.app.GetTeamByID(ctx, id)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// ListTeams lists all teams
func (s *Service) ListTeams(ctx context.Context, _ *connect.Request[ListTeamsRequest]) (*connect.Response[TeamsResponse], error) {
	teams, err := s.app.GetAllTeams(ctx)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TeamsResponse{Teams: teams}), nil
}

// GetTeamsByOwner lists the teams of one owner
func (s *Service) GetTeamsByOwner(ctx context.Context, req *connect.Request[GetTeamsByOwnerRequest]) (*connect.Response[TeamsResponse], error) {
	ownerID, err := connectutil.ParseRef("owner_id", req.Msg.OwnerID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	teams, err := s.app.GetTeamsByOwner(ctx, ownerID)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TeamsResponse{Teams: teams}), nil
}

// DeleteTeam deletes a team by ID
func (s *Service) DeleteTeam(ctx context.Context, req *connect.Request[DeleteTeamRequest]) (*connect.Response[DeleteTeamResponse], error) {
	id, err := connectutil.ParseID("team", req.Msg.ID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	deleted, err := s.app.DeleteTeamByID(ctx, id)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&DeleteTeamResponse{Deleted: deleted}), nil
}

// NewServiceHandler builds an HTTP handler serving every TeamService procedure.
// It returns the path prefix to mount the handler on.
func NewServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connectutil.WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(TeamServiceCreateTeamProcedure, connect.NewUnaryHandler(TeamServiceCreateTeamProcedure, svc.CreateTeam, opts...))
	mux.Handle(TeamServiceCreateTeamsProcedure, connect.NewUnaryHandler(TeamServiceCreateTeamsProcedure, svc.CreateTeams, opts...))
	mux.Handle(TeamServiceGetTeamProcedure, connect.NewUnaryHandler(TeamServiceGetTeamProcedure, svc.GetTeam, opts...))
	mux.Handle(TeamServiceListTeamsProcedure, connect.NewUnaryHandler(TeamServiceListTeamsProcedure, svc.ListTeams, opts...))
	mux.Handle(TeamServiceGetTeamsByOwnerProcedure, connect.NewUnaryHandler(TeamServiceGetTeamsByOwnerProcedure, svc.GetTeamsByOwner, opts...))
	mux.Handle(TeamServiceDeleteTeamProcedure, connect.NewUnaryHandler(TeamServiceDeleteTeamProcedure, svc.DeleteTeam, opts...))
	return "/" + TeamServiceName + "/", mux
}
