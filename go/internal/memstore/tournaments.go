package memstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/results"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
)

var (
	_ tournaments.TournamentRepository = (*Store)(nil)
	_ results.ResultsRepository        = (*Store)(nil)
)

func (s *Store) CreateTournament(_ context.Context, req tournaments.CreateTournamentRequest) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &models.Tournament{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ResultIDs:   []uuid.UUID{},
		CreatedAt:   s.now(),
	}
	s.tournaments[t.ID] = t
	s.tournamentOrder = append(s.tournamentOrder, t.ID)
	return copyTournament(t), nil
}

func (s *Store) GetTournament(_ context.Context, id uuid.UUID) (*models.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tournaments[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("tournament", id)
	}
	return copyTournament(t), nil
}

func (s *Store) GetTournaments(_ context.Context) ([]models.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Tournament, 0, len(s.tournamentOrder))
	for _, id := range s.tournamentOrder {
		result = append(result, *copyTournament(s.tournaments[id]))
	}
	return result, nil
}

// AppendResults stores results and appends their ids under one lock,
// matching the single transaction of the Postgres repository.
func (s *Store) AppendResults(_ context.Context, tournamentID uuid.UUID, results []models.Result) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tournaments[tournamentID]
	if !ok {
		return nil, apperrors.NewNotFoundError("tournament", tournamentID)
	}
	for _, result := range results {
		if _, ok := s.players[result.PlayerID]; !ok {
			return nil, apperrors.NewInvalidInputError("result references an unknown player")
		}
	}

	for _, result := range results {
		stored := result
		stored.TournamentID = tournamentID
		stored.Player = nil
		s.results[stored.ID] = &stored
		s.resultOrder = append(s.resultOrder, stored.ID)
		t.ResultIDs = append(t.ResultIDs, stored.ID)
	}
	return copyTournament(t), nil
}

func (s *Store) GetResults(_ context.Context) ([]models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Result, 0, len(s.resultOrder))
	for _, id := range s.resultOrder {
		out = append(out, *s.results[id])
	}
	return out, nil
}

func (s *Store) GetResultsByIDs(_ context.Context, ids []uuid.UUID) ([]models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Result, 0, len(ids))
	for _, id := range ids {
		if result, ok := s.results[id]; ok {
			out = append(out, *result)
		}
	}
	return out, nil
}

func (s *Store) GetResultsByPlayerIDs(_ context.Context, playerIDs []uuid.UUID) ([]models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	out := []models.Result{}
	for _, id := range s.resultOrder {
		if _, ok := wanted[s.results[id].PlayerID]; ok {
			out = append(out, *s.results[id])
		}
	}
	return out, nil
}

func copyTournament(t *models.Tournament) *models.Tournament {
	copied := *t
	copied.ResultIDs = cloneIDs(t.ResultIDs)
	return &copied
}
