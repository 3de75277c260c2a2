package tournaments

import (
	"context"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

const TournamentServiceName = "fantasygolf.tournament.v1.TournamentService"

const (
	TournamentServiceCreateTournamentProcedure       = "/fantasygolf.tournament.v1.TournamentService/CreateTournament"
	TournamentServiceGetTournamentProcedure          = "/fantasygolf.tournament.v1.TournamentService/GetTournament"
	TournamentServiceListTournamentsProcedure        = "/fantasygolf.tournament.v1.TournamentService/ListTournaments"
	TournamentServiceAddResultsToTournamentProcedure = "/fantasygolf.tournament.v1.TournamentService/AddResultsToTournament"
)

type GetTournamentRequest struct {
	ID string `json:"id"`
}

type ListTournamentsRequest struct{}

type ResultMessage struct {
	PlayerID string `json:"player_id"`
	Position string `json:"position"`
	Points   *int   `json:"points,omitempty"`
}

type AddResultsToTournamentRequest struct {
	TournamentID string          `json:"tournament_id"`
	Results      []ResultMessage `json:"results"`
}

type TournamentResponse struct {
	Tournament *models.Tournament `json:"tournament"`
}

type TournamentsResponse struct {
	Tournaments []models.Tournament `json:"tournaments"`
}

// TournamentsApp defines what the service layer needs from the tournaments application
type TournamentsApp interface {
	CreateTournament(ctx context.Context, req CreateTournamentRequest) (*models.Tournament, error)
	GetTournament(ctx context.Context, id uuid.UUID) (*models.Tournament, error)
	GetAllTournaments(ctx context.Context) ([]models.Tournament, error)
	AddResultsToTournament(ctx context.Context, tournamentID uuid.UUID, inputs []ResultInput) (*models.Tournament, error)
}

// Service implements the TournamentService Connect handlers
type Service struct {
	app TournamentsApp
}

// NewService creates a new tournaments service
func NewService(app TournamentsApp) *Service {
	return &Service{
		app: app,
	}
}

// CreateTournament creates a new tournament
func (s *Service) CreateTournament(ctx context.Context, req *connect.Request[CreateTournamentRequest]) (*connect.Response[TournamentResponse], error) {
	tournament, err := s.app.CreateTournament(ctx, *req.Msg)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TournamentResponse{Tournament: tournament}), nil
}

// GetTournament retrieves a tournament with its results
func (s *Service) GetTournament(ctx context.Context, req *connect.Request[GetTournamentRequest]) (*connect.Response[TournamentResponse], error) {
	id, err := connectutil.ParseID("tournament", req.Msg.ID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	tournament, err := s.app.GetTournament(ctx, id)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TournamentResponse{Tournament: tournament}), nil
}

// ListTournaments lists all tournaments
func (s *Service) ListTournaments(ctx context.Context, _ *connect.Request[ListTournamentsRequest]) (*connect.Response[TournamentsResponse], error) {
	tournaments, err := s.app.GetAllTournaments(ctx)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TournamentsResponse{Tournaments: tournaments}), nil
}

// AddResultsToTournament appends results to a tournament
func (s *Service) AddResultsToTournament(ctx context.Context, req *connect.Request[AddResultsToTournamentRequest]) (*connect.Response[TournamentResponse], error) {
	id, err := connectutil.ParseID("tournament", req.Msg.TournamentID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	inputs, err := s.messagesToResultInputs(req.Msg.Results)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	tournament, err := s.app.AddResultsToTournament(ctx, id, inputs)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&TournamentResponse{Tournament: tournament}), nil
}

func (s *Service) messagesToResultInputs(msgs []ResultMessage) ([]ResultInput, error) {
	inputs := make([]ResultInput, len(msgs))
	for i, msg := range msgs {
		playerID, err := connectutil.ParseRef(fmt.Sprintf("results[%d].player_id", i), msg.PlayerID)
		if err != nil {
			return nil, err
		}
		inputs[i] = ResultInput{
			PlayerID: playerID,
			Position: msg.Position,
			Points:   msg.Points,
		}
	}
	return inputs, nil
}

// NewServiceHandler builds an HTTP handler serving every TournamentService procedure.
// It returns the path prefix to mount the handler on.
func NewServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connectutil.WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(TournamentServiceCreateTournamentProcedure, connect.NewUnaryHandler(TournamentServiceCreateTournamentProcedure, svc.CreateTournament, opts...))
	mux.Handle(TournamentServiceGetTournamentProcedure, connect.NewUnaryHandler(TournamentServiceGetTournamentProcedure, svc.GetTournament, opts...))
	mux.Handle(TournamentServiceListTournamentsProcedure, connect.NewUnaryHandler(TournamentServiceListTournamentsProcedure, svc.ListTournaments, opts...))
	mux.Handle(TournamentServiceAddResultsToTournamentProcedure, connect.NewUnaryHandler(TournamentServiceAddResultsToTournamentProcedure, svc.AddResultsToTournament, opts...))
	return "/" + TournamentServiceName + "/", mux
}
