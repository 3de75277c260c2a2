package owners

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

const OwnerServiceName = "fantasygolf.owner.v1.OwnerService"

const (
	OwnerServiceCreateOwnerProcedure       = "/fantasygolf.owner.v1.OwnerService/CreateOwner"
	OwnerServiceFindOrCreateOwnerProcedure = "/fantasygolf.owner.v1.OwnerService/FindOrCreateOwner"
	OwnerServiceGetOwnerProcedure          = "/fantasygolf.owner.v1.OwnerService/GetOwner"
	OwnerServiceGetOwnersByEmailProcedure  = "/fantasygolf.owner.v1.OwnerService/GetOwnersByEmail"
	OwnerServiceListOwnersProcedure        = "/fantasygolf.owner.v1.OwnerService/ListOwners"
)

type GetOwnerRequest struct {
	ID string `json:"id"`
}

type GetOwnersByEmailRequest struct {
	Email string `json:"email"`
}

type ListOwnersRequest struct{}

type OwnerResponse struct {
	Owner *models.Owner `json:"owner"`
}

type OwnersResponse struct {
	Owners []models.Owner `json:"owners"`
}

// OwnersApp defines what the service layer needs from the owners application
type OwnersApp interface {
	CreateOwner(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error)
	FindOrCreateOwner(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error)
	GetOwner(ctx context.Context, id uuid.UUID) (*models.Owner, error)
	GetOwnersByEmail(ctx context.Context, email string) ([]models.Owner, error)
	GetAllOwners(ctx context.Context) ([]models.Owner, error)
}

// Service implements the OwnerService Connect handlers
type Service struct {
	app OwnersApp
}

// NewService creates a new owners service
func NewService(app OwnersApp) *Service {
	return &Service{
		app: app,
	}
}

// CreateOwner creates a new owner
func (s *Service) CreateOwner(ctx context.Context, req *connect.Request[CreateOwnerRequest]) (*connect.Response[OwnerResponse], error) {
	owner, err := s.app.CreateOwner(ctx, *req.Msg)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&OwnerResponse{Owner: owner}), nil
}

// FindOrCreateOwner resolves an owner by email
func (s *Service) FindOrCreateOwner(ctx context.Context, req *connect.Request[CreateOwnerRequest]) (*connect.Response[OwnerResponse], error) {
	owner, err := s.app.FindOrCreateOwner(ctx, *req.Msg)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&OwnerResponse{Owner: owner}), nil
}

// GetOwner retrieves an owner by ID
func (s *Service) GetOwner(ctx context.Context, req *connect.Request[GetOwnerRequest]) (*connect.Response[OwnerResponse], error) {
	id, err := connectutil.ParseID("owner", req.Msg.ID)
	if err != nil {
		return nil, connectutil.Error(err)
	}

	owner, err := s.app.GetOwner(ctx, id)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&OwnerResponse{Owner: owner}), nil
}

// GetOwnersByEmail lists owners matching an email
func (s *Service) GetOwnersByEmail(ctx context.Context, req *connect.Request[GetOwnersByEmailRequest]) (*connect.Response[OwnersResponse], error) {
	owners, err := s.app.GetOwnersByEmail(ctx, req.Msg.Email)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&OwnersResponse{Owners: owners}), nil
}

// ListOwners lists all owners
func (s *Service) ListOwners(ctx context.Context, _ *connect.Request[ListOwnersRequest]) (*connect.Response[OwnersResponse], error) {
	owners, err := s.app.GetAllOwners(ctx)
	if err != nil {
		return nil, connectutil.Error(err)
	}
	return connect.NewResponse(&OwnersResponse{Owners: owners}), nil
}

// NewServiceHandler builds an HTTP handler serving every OwnerService procedure.
// It returns the path prefix to mount the handler on.
func NewServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connectutil.WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(OwnerServiceCreateOwnerProcedure, connect.NewUnaryHandler(OwnerServiceCreateOwnerProcedure, svc.CreateOwner, opts...))
	mux.Handle(OwnerServiceFindOrCreateOwnerProcedure, connect.NewUnaryHandler(OwnerServiceFindOrCreateOwnerProcedure, svc.FindOrCreateOwner, opts...))
	mux.Handle(OwnerServiceGetOwnerProcedure, connect.NewUnaryHandler(OwnerServiceGetOwnerProcedure, svc.GetOwner, opts...))
	mux.Handle(OwnerServiceGetOwnersByEmailProcedure, connect.NewUnaryHandler(OwnerServiceGetOwnersByEmailProcedure, svc.GetOwnersByEmail, opts...))
	mux.Handle(OwnerServiceListOwnersProcedure, connect.NewUnaryHandler(OwnerServiceListOwnersProcedure, svc.ListOwners, opts...))
	return "/" + OwnerServiceName + "/", mux
}
