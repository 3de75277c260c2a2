package owners

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/owners/db"
	"github.com/mcdev12/fantasygolf/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateOwner(ctx context.Context, arg db.CreateOwnerParams) (db.Owner, error)
	UpsertOwnerByEmail(ctx context.Context, arg db.UpsertOwnerByEmailParams) (db.Owner, error)
	GetOwner(ctx context.Context, id uuid.UUID) (db.Owner, error)
	GetOwnersByIDs(ctx context.Context, ids []uuid.UUID) ([]db.Owner, error)
	GetOwnersByEmail(ctx context.Context, email string) ([]db.Owner, error)
	ListOwners(ctx context.Context) ([]db.Owner, error)
}

// Repository implements owner data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new owners repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateOwner inserts a new owner; a taken email is a ConflictError
func (r *Repository) CreateOwner(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error) {
	owner, err := r.queries.CreateOwner(ctx, db.CreateOwnerParams{
		Name:  sqlutil.ToNullString(req.Name),
		Email: req.Email,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("owner", "email "+req.Email)
		}
		return nil, fmt.Errorf("failed to create owner: %w", err)
	}

	return r.dbOwnerToModel(owner), nil
}

// UpsertOwnerByEmail returns the owner holding req.Email, inserting it first
// if needed. An existing row is returned untouched.
func (r *Repository) UpsertOwnerByEmail(ctx context.Context, req CreateOwnerRequest) (*models.Owner, error) {
	owner, err := r.queries.UpsertOwnerByEmail(ctx, db.UpsertOwnerByEmailParams{
		Name:  sqlutil.ToNullString(req.Name),
		Email: req.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert owner: %w", err)
	}

	return r.dbOwnerToModel(owner), nil
}

// GetOwner retrieves an owner by ID
func (r *Repository) GetOwner(ctx context.Context, id uuid.UUID) (*models.Owner, error) {
	owner, err := r.queries.GetOwner(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("owner", id)
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	return r.dbOwnerToModel(owner), nil
}

// GetOwnersByIDs returns the owners that exist among ids, in no particular order
func (r *Repository) GetOwnersByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Owner, error) {
	if len(ids) == 0 {
		return []models.Owner{}, nil
	}

	owners, err := r.queries.GetOwnersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get owners by ids: %w", err)
	}
	return r.dbOwnersToModels(owners), nil
}

// GetOwnersByEmail returns every owner with the given email
func (r *Repository) GetOwnersByEmail(ctx context.Context, email string) ([]models.Owner, error) {
	owners, err := r.queries.GetOwnersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get owners by email: %w", err)
	}
	return r.dbOwnersToModels(owners), nil
}

// GetOwners lists all owners
func (r *Repository) GetOwners(ctx context.Context) ([]models.Owner, error) {
	owners, err := r.queries.ListOwners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	return r.dbOwnersToModels(owners), nil
}

func (r *Repository) dbOwnersToModels(owners []db.Owner) []models.Owner {
	result := make([]models.Owner, len(owners))
	for i, owner := range owners {
		result[i] = *r.dbOwnerToModel(owner)
	}
	return result
}

func (r *Repository) dbOwnerToModel(owner db.Owner) *models.Owner {
	return &models.Owner{
		ID:        owner.ID,
		Name:      sqlutil.FromNullString(owner.Name),
		Email:     owner.Email,
		CreatedAt: owner.CreatedAt,
	}
}
