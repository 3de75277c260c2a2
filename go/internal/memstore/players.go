package memstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/player"
)

var _ player.PlayerRepository = (*Store)(nil)

func (s *Store) CreatePlayer(_ context.Context, req player.CreatePlayerRequest) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.playerByName[req.Name]; exists {
		return nil, apperrors.NewConflictError("player", "name "+req.Name)
	}
	p := s.insertPlayer(req)
	copied := *p
	return &copied, nil
}

// CreatePlayers checks the whole batch before inserting so a conflict leaves nothing behind
func (s *Store) CreatePlayers(_ context.Context, reqs []player.CreatePlayerRequest) ([]models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(reqs))
	for _, req := range reqs {
		_, exists := s.playerByName[req.Name]
		_, dup := seen[req.Name]
		if exists || dup {
			return nil, apperrors.NewConflictError("player", "name "+req.Name)
		}
		seen[req.Name] = struct{}{}
	}

	created := make([]models.Player, len(reqs))
	for i, req := range reqs {
		created[i] = *s.insertPlayer(req)
	}
	return created, nil
}

func (s *Store) UpsertPlayerByName(_ context.Context, name string) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, exists := s.playerByName[name]; exists {
		copied := *s.players[id]
		return &copied, nil
	}
	p := s.insertPlayer(player.CreatePlayerRequest{Name: name})
	copied := *p
	return &copied, nil
}

// insertPlayer must be called with the write lock held
func (s *Store) insertPlayer(req player.CreatePlayerRequest) *models.Player {
	p := &models.Player{
		ID:        uuid.New(),
		Name:      req.Name,
		PgaID:     req.PgaID,
		Salary:    req.Salary,
		AvatarURL: req.AvatarURL,
		CreatedAt: s.now(),
	}
	s.players[p.ID] = p
	s.playerOrder = append(s.playerOrder, p.ID)
	s.playerByName[p.Name] = p.ID
	return p
}

func (s *Store) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("player", id)
	}
	copied := *p
	return &copied, nil
}

func (s *Store) GetPlayersByIDs(_ context.Context, ids []uuid.UUID) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.players[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (s *Store) GetPlayers(_ context.Context) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		result = append(result, *s.players[id])
	}
	return result, nil
}

func (s *Store) UpdatePlayerPgaID(_ context.Context, id uuid.UUID, pgaID int) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("player", id)
	}
	p.PgaID = pgaID
	copied := *p
	return &copied, nil
}
