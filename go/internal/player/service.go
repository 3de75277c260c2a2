package player

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

const PlayerServiceName = "fantasygolf.player.v1.PlayerService"

const (
	PlayerServiceCreatePlayerProcedure       = "/fantasygolf.player.v1.PlayerService/CreatePlayer"
	PlayerServiceCreatePlayersBulkProcedure  = "/fantasygolf.player.v1.PlayerService/CreatePlayersBulk"
	PlayerServiceFindOrCreatePlayerProcedure = "/fantasygolf.player.v1.PlayerService/FindOrCreatePlayer"
	PlayerServiceUpdatePlayerPgaIDProcedure  = "/fantasygolf.player.v1.PlayerService/UpdatePlayerPgaId"
	PlayerServiceGetPlayerProcedure          = "/fantasygolf.player.v1.PlayerService/GetPlayer"
	PlayerServiceListPlayersProcedure        = "/fantasygolf.player.v1.PlayerService/ListPlayers"
)

type CreatePlayersBulkRequest struct {
	Players []CreatePlayerRequest `json:"players"`
}

type FindOrCreatePlayerRequest struct {
	Name string `json:"name"`
}

type GetPlayerRequest struct {
	ID string `json:"id"`
}

type ListPlayersRequest struct{}

type PlayerResponse struct {
	Player *models.Player `json:"player"`
}

type PlayersResponse struct {
	Players []models.Player `json:"players"`
}

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	CreatePlayersBulk(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, error)
	FindOrCreatePlayer(ctx context.Context, name string) (*models.Player, error)
	UpdatePlayerPgaID(ctx context.Context, id uuid.UUID, pgaID int) (*models.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
}

// Service implements the PlayerService Connect handlers
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// CreatePlayer creates a new player
func (s *Service) CreatePlayer(ctx context.Context, req *connect.Request[CreatePlayerRequest]) (*connect.Response[PlayerResponse], error) {
	player, err := s.app.CreatePlayer(ctx, *req.Msg)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// CreatePlayersBulk creates a batch of players in one transaction
func (s *Service) CreatePlayersBulk(ctx context.Context, req *connect.Request[CreatePlayersBulkRequest]) (*connect.Response[PlayersResponse], error) {
	players, err := s.app.CreatePlayersBulk(ctx, req.Msg.Players)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&PlayersResponse{Players: players}), nil
}

// FindOrCreatePlayer resolves a player by name
func (s *Service) FindOrCreatePlayer(ctx context.Context, req *connect.Request[FindOrCreatePlayerRequest]) (*connect.Response[PlayerResponse], error) {
	player, err := s.app.FindOrCreatePlayer(ctx, req.Msg.Name)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// UpdatePlayerPgaId sets a player's PGA Tour id
func (s *Service) UpdatePlayerPgaId(ctx context.Context, req *connect.Request[UpdatePgaIDRequest]) (*connect.Response[PlayerResponse], error) {
	id, err := connectutil.ParseID("player", req.Msg.ID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	player, err := s.app.UpdatePlayerPgaID(ctx, id, req.Msg.PgaID)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// GetPlayer retrieves a player with their results
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[GetPlayerRequest]) (*connect.Response[PlayerResponse], error) {
	id, err := connectutil.ParseID("player", req.Msg.ID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	player, err := s.app.GetPlayer(ctx, id)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// ListPlayers lists all players
func (s *Service) ListPlayers(ctx context.Context, _ *connect.Request[ListPlayersRequest]) (*connect.Response[PlayersResponse], error) {
	players, err := s.app.GetAllPlayers(ctx)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&PlayersResponse{Players: players}), nil
}

// NewServiceHandler builds an HTTP handler serving every PlayerService procedure.
// It returns the path prefix to mount the handler on.
func NewServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connectutil.WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(PlayerServiceCreatePlayerProcedure, connect.NewUnaryHandler(PlayerServiceCreatePlayerProcedure, svc.CreatePlayer, opts...))
	mux.Handle(PlayerServiceCreatePlayersBulkProcedure, connect.NewUnaryHandler(PlayerServiceCreatePlayersBulkProcedure, svc.CreatePlayersBulk, opts...))
	mux.Handle(PlayerServiceFindOrCreatePlayerProcedure, connect.NewUnaryHandler(PlayerServiceFindOrCreatePlayerProcedure, svc.FindOrCreatePlayer, opts...))
	mux.Handle(PlayerServiceUpdatePlayerPgaIDProcedure, connect.NewUnaryHandler(PlayerServiceUpdatePlayerPgaIDProcedure, svc.UpdatePlayerPgaId, opts...))
	mux.Handle(PlayerServiceGetPlayerProcedure, connect.NewUnaryHandler(PlayerServiceGetPlayerProcedure, svc.GetPlayer, opts...))
	mux.Handle(PlayerServiceListPlayersProcedure, connect.NewUnaryHandler(PlayerServiceListPlayersProcedure, svc.ListPlayers, opts...))
	return "/" + PlayerServiceName + "/", mux
}
