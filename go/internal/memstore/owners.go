package memstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
)

var _ owners.OwnersRepository = (*Store)(nil)

func (s *Store) CreateOwner(_ context.Context, req owners.CreateOwnerRequest) (*models.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ownerByEmail[req.Email]; exists {
		return nil, apperrors.NewConflictError("owner", "email "+req.Email)
	}
	owner := s.insertOwner(req)
	copied := *owner
	return &copied, nil
}

func (s *Store) UpsertOwnerByEmail(_ context.Context, req owners.CreateOwnerRequest) (*models.Owner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, exists := s.ownerByEmail[req.Email]; exists {
		copied := *s.owners[id]
		return &copied, nil
	}
	owner := s.insertOwner(req)
	copied := *owner
	return &copied, nil
}

// insertOwner must be called with the write lock held
func (s *Store) insertOwner(req owners.CreateOwnerRequest) *models.Owner {
	owner := &models.Owner{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: s.now(),
	}
	s.owners[owner.ID] = owner
	s.ownerOrder = append(s.ownerOrder, owner.ID)
	s.ownerByEmail[owner.Email] = owner.ID
	return owner
}

func (s *Store) GetOwner(_ context.Context, id uuid.UUID) (*models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, ok := s.owners[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("owner", id)
	}
	copied := *owner
	return &copied, nil
}

func (s *Store) GetOwnersByIDs(_ context.Context, ids []uuid.UUID) ([]models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Owner, 0, len(ids))
	for _, id := range ids {
		if owner, ok := s.owners[id]; ok {
			result = append(result, *owner)
		}
	}
	return result, nil
}

func (s *Store) GetOwnersByEmail(_ context.Context, email string) ([]models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Owner{}
	if id, ok := s.ownerByEmail[email]; ok {
		result = append(result, *s.owners[id])
	}
	return result, nil
}

func (s *Store) GetOwners(_ context.Context) ([]models.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Owner, 0, len(s.ownerOrder))
	for _, id := range s.ownerOrder {
		result = append(result, *s.owners[id])
	}
	return result, nil
}
