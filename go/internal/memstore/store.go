// Package memstore is an in-memory backend for every repository interface.
// It serves local development without Postgres and backs the app tests.
package memstore

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/models"
)

// Store keeps each entity in a map plus an insertion-ordered id list so
// listings come back in creation order, like the SQL queries.
type Store struct {
	mu    sync.RWMutex
	clock clockwork.Clock

	owners       map[uuid.UUID]*models.Owner
	ownerOrder   []uuid.UUID
	ownerByEmail map[string]uuid.UUID

	players      map[uuid.UUID]*models.Player
	playerOrder  []uuid.UUID
	playerByName map[string]uuid.UUID

	teams     map[uuid.UUID]*models.FantasyTeam
	teamOrder []uuid.UUID

	tournaments     map[uuid.UUID]*models.Tournament
	tournamentOrder []uuid.UUID

	results     map[uuid.UUID]*models.Result
	resultOrder []uuid.UUID
}

func New(clock clockwork.Clock) *Store {
	return &Store{
		clock:        clock,
		owners:       make(map[uuid.UUID]*models.Owner),
		ownerByEmail: make(map[string]uuid.UUID),
		players:      make(map[uuid.UUID]*models.Player),
		playerByName: make(map[string]uuid.UUID),
		teams:        make(map[uuid.UUID]*models.FantasyTeam),
		tournaments:  make(map[uuid.UUID]*models.Tournament),
		results:      make(map[uuid.UUID]*models.Result),
	}
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}
