package owners

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/validation"
	"github.com/rs/zerolog/log"
)

// OwnersRepository defines what the app layer needs from the repository
type OwnersRepository interface {
	CreateOwner(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error)
	UpsertOwnerByEmail(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error)
	GetOwner(ctx context.Context, id uuid.UUID) (*models.Owner, error)
	GetOwnersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Owner, error)
	GetOwnersByEmail(ctx context.Context, email string) ([]models.Owner, error)
	GetOwners(ctx context.Context) ([]models.Owner, error)
}

// App handles owners business logic
type App struct {
	repo OwnersRepository
}

// NewApp creates a new owners App
func NewApp(repo OwnersRepository) *App {
	return &App{
		repo: repo,
	}
}

// CreateOwner creates a new owner with validation
func (a *App) CreateOwner(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	owner, err := a.repo.CreateOwner(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Str("owner_id", owner.ID.String()).Str("email", owner.Email).Msg("Created owner")
	return owner, nil
}

// FindOrCreateOwner resolves an owner by email, creating it when no owner
// holds that email yet. Concurrent calls for one email yield one owner.
func (a *App) FindOrCreateOwner(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	owner, err := a.repo.UpsertOwnerByEmail(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("owner_id", owner.ID.String()).Str("email", owner.Email).Msg("Resolved owner")
	return owner, nil
}

// GetOwner retrieves an owner by ID
func (a *App) GetOwner(ctx context.Context, id uuid.UUID) (*models.Owner, error) {
	owner, err := a.repo.GetOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return owner, nil
}

// GetOwnersByIDs returns the owners that exist among ids
func (a *App) GetOwnersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Owner, error) {
	return a.repo.GetOwnersByIDs(ctx, ids)
}

// GetOwnersByEmail returns matching owners; no match is an empty list
func (a *App) GetOwnersByEmail(ctx context.Context, email string) ([]models.Owner, error) {
	return a.repo.GetOwnersByEmail(ctx, email)
}

// GetAllOwners lists every owner
func (a *App) GetAllOwners(ctx context.Context) ([]models.Owner, error) {
	return a.repo.GetOwners(ctx)
}
