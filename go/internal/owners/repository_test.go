package owners

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/owners/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQuerier struct {
	owner db.Owner
	err   error
	ids   []uuid.UUID
}

func (s *stubQuerier) CreateOwner(_ context.Context, arg db.CreateOwnerParams) (db.Owner, error) {
	if s.err != nil {
		return db.Owner{}, s.err
	}
	return db.Owner{ID: uuid.New(), Name: arg.Name, Email: arg.Email, CreatedAt: time.Now()}, nil
}

func (s *stubQuerier) UpsertOwnerByEmail(_ context.Context, arg db.UpsertOwnerByEmailParams) (db.Owner, error) {
	return s.owner, s.err
}

func (s *stubQuerier) GetOwner(_ context.Context, _ uuid.UUID) (db.Owner, error) {
	return s.owner, s.err
}

func (s *stubQuerier) GetOwnersByIDs(_ context.Context, ids []uuid.UUID) ([]db.Owner, error) {
	s.ids = ids
	return []db.Owner{s.owner}, s.err
}

func (s *stubQuerier) GetOwnersByEmail(_ context.Context, _ string) ([]db.Owner, error) {
	return []db.Owner{s.owner}, s.err
}

func (s *stubQuerier) ListOwners(_ context.Context) ([]db.Owner, error) {
	return []db.Owner{s.owner}, s.err
}

func TestRepositoryCreateOwner(t *testing.T) {
	repo := NewRepository(&stubQuerier{})

	owner, err := repo.CreateOwner(context.Background(), CreateOwnerRequest{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "", owner.Name)
	assert.Equal(t, "ana@example.com", owner.Email)
}

func TestRepositoryCreateOwnerConflict(t *testing.T) {
	repo := NewRepository(&stubQuerier{err: &pq.Error{Code: "23505"}})

	_, err := repo.CreateOwner(context.Background(), CreateOwnerRequest{Email: "ana@example.com"})
	assert.True(t, apperrors.IsConflictError(err))
	assert.True(t, errors.Is(err, apperrors.ErrOwnerExists))
}

func TestRepositoryGetOwnerNotFound(t *testing.T) {
	repo := NewRepository(&stubQuerier{err: sql.ErrNoRows})

	_, err := repo.GetOwner(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, apperrors.ErrOwnerNotFound))
}

func TestRepositoryGetOwnerMapsName(t *testing.T) {
	id := uuid.New()
	repo := NewRepository(&stubQuerier{owner: db.Owner{
		ID:    id,
		Name:  sql.NullString{String: "Ana", Valid: true},
		Email: "ana@example.com",
	}})

	owner, err := repo.GetOwner(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", owner.Name)
}

func TestRepositoryGetOwnersByIDsSkipsEmptyQuery(t *testing.T) {
	querier := &stubQuerier{}
	repo := NewRepository(querier)

	owners, err := repo.GetOwnersByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, owners)
	assert.Nil(t, querier.ids)
}

func TestRepositoryWrapsDriverErrors(t *testing.T) {
	repo := NewRepository(&stubQuerier{err: errors.New("connection reset")})

	_, err := repo.GetOwners(context.Background())
	require.Error(t, err)
	assert.False(t, apperrors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "failed to list owners")
}
