package results

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

const ResultServiceName = "fantasygolf.result.v1.ResultService"

const ResultServiceListResultsProcedure = "/fantasygolf.result.v1.ResultService/ListResults"

type ListResultsRequest struct{}

type ResultsResponse struct {
	Results []models.Result `json:"results"`
}

// ResultsApp defines what the service layer needs from the results application
type ResultsApp interface {
	GetAllResults(ctx context.Context) ([]models.Result, error)
}

type Service struct {
	app ResultsApp
}

func NewService(app ResultsApp) *Service {
	return &Service{
		app: app,
	}
}

// ListResults lists all results with their players
func (s *Service) ListResults(ctx context.Context, _ *connect.Request[ListResultsRequest]) (*connect.Response[ResultsResponse], error) {
	results, err := s.app.GetAllResults(ctx)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&ResultsResponse{Results: results}), nil
}

func NewServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connectutil.WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ResultServiceListResultsProcedure, connect.NewUnaryHandler(ResultServiceListResultsProcedure, svc.ListResults, opts...))
	return "/" + ResultServiceName + "/", mux
}
