package memstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

var _ fantasyteam.FantasyTeamRepository = (*Store)(nil)

func (s *Store) CreateFantasyTeam(_ context.Context, req fantasyteam.CreateFantasyTeamParams) (*models.FantasyTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := &models.FantasyTeam{
		ID:        uuid.New(),
		Name:      req.Name,
		OwnerID:   req.OwnerID,
		PlayerIDs: cloneIDs(req.PlayerIDs),
		CreatedAt: s.now(),
	}
	s.teams[team.ID] = team
	s.teamOrder = append(s.teamOrder, team.ID)
	return copyTeam(team), nil
}

func (s *Store) GetFantasyTeam(_ context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teams[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("team", id)
	}
	return copyTeam(team), nil
}

func (s *Store) GetFantasyTeams(_ context.Context) ([]models.FantasyTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.FantasyTeam, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		result = append(result, *copyTeam(s.teams[id]))
	}
	return result, nil
}

func (s *Store) GetFantasyTeamsByOwner(_ context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.FantasyTeam{}
	for _, id := range s.teamOrder {
		if team := s.teams[id]; team.OwnerID == ownerID {
			result = append(result, *copyTeam(team))
		}
	}
	return result, nil
}

func (s *Store) DeleteFantasyTeam(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return apperrors.NewNotFoundError("team", id)
	}
	delete(s.teams, id)
	for i, existing := range s.teamOrder {
		if existing == id {
			s.teamOrder = append(s.teamOrder[:i], s.teamOrder[i+1:]...)
			break
		}
	}
	return nil
}

func copyTeam(team *models.FantasyTeam) *models.FantasyTeam {
	copied := *team
	copied.PlayerIDs = cloneIDs(team.PlayerIDs)
	return &copied
}
