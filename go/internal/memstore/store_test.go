package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() (*memstore.Store, clockwork.Clock) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC))
	return memstore.New(clock), clock
}

func TestOwnerEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore()

	first, err := store.CreateOwner(ctx, owners.CreateOwnerRequest{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = store.CreateOwner(ctx, owners.CreateOwnerRequest{Name: "Other", Email: "ana@example.com"})
	assert.True(t, apperrors.IsConflictError(err))

	upserted, err := store.UpsertOwnerByEmail(ctx, owners.CreateOwnerRequest{Name: "Renamed", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, upserted.ID)
	assert.Equal(t, "Ana", upserted.Name)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore()

	team, err := store.CreateFantasyTeam(ctx, fantasyteam.CreateFantasyTeamParams{
		Name:      "Fairway Flyers",
		OwnerID:   uuid.New(),
		PlayerIDs: []uuid.UUID{uuid.New()},
	})
	require.NoError(t, err)

	team.PlayerIDs[0] = uuid.Nil
	team.Name = "mutated"

	stored, err := store.GetFantasyTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fairway Flyers", stored.Name)
	assert.NotEqual(t, uuid.Nil, stored.PlayerIDs[0])
}

func TestCreatePlayersIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore()

	_, err := store.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Scottie Scheffler"})
	require.NoError(t, err)

	_, err = store.CreatePlayers(ctx, []player.CreatePlayerRequest{
		{Name: "Rory McIlroy"},
		{Name: "Scottie Scheffler"},
	})
	assert.True(t, apperrors.IsConflictError(err))

	all, err := store.GetPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAppendResultsKeepsOrderAndStampsTournament(t *testing.T) {
	ctx := context.Background()
	store, clock := newStore()

	golfer, err := store.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Xander Schauffele"})
	require.NoError(t, err)
	tournament, err := store.CreateTournament(ctx, tournaments.CreateTournamentRequest{
		Name:      "The Masters",
		Status:    models.TournamentStatusUpcoming,
		StartDate: clock.Now(),
		EndDate:   clock.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	assert.Empty(t, tournament.ResultIDs)

	first := models.Result{ID: uuid.New(), PlayerID: golfer.ID, Position: "1"}
	second := models.Result{ID: uuid.New(), PlayerID: golfer.ID, Position: "T4"}

	_, err = store.AppendResults(ctx, tournament.ID, []models.Result{first})
	require.NoError(t, err)
	updated, err := store.AppendResults(ctx, tournament.ID, []models.Result{second})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, updated.ResultIDs)

	stored, err := store.GetResultsByIDs(ctx, updated.ResultIDs)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, tournament.ID, stored[0].TournamentID)

	byPlayer, err := store.GetResultsByPlayerIDs(ctx, []uuid.UUID{golfer.ID})
	require.NoError(t, err)
	assert.Len(t, byPlayer, 2)
}

func TestAppendResultsRejectsUnknownPlayer(t *testing.T) {
	ctx := context.Background()
	store, clock := newStore()

	tournament, err := store.CreateTournament(ctx, tournaments.CreateTournamentRequest{
		Name:      "The Open",
		Status:    models.TournamentStatusUpcoming,
		StartDate: clock.Now(),
		EndDate:   clock.Now(),
	})
	require.NoError(t, err)

	_, err = store.AppendResults(ctx, tournament.ID, []models.Result{{ID: uuid.New(), PlayerID: uuid.New(), Position: "1"}})
	assert.True(t, apperrors.IsInvalidInputError(err))

	stored, err := store.GetTournament(ctx, tournament.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ResultIDs)
}

func TestDeleteFantasyTeam(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore()

	team, err := store.CreateFantasyTeam(ctx, fantasyteam.CreateFantasyTeamParams{Name: "Bogey Boys", OwnerID: uuid.New()})
	require.NoError(t, err)

	require.NoError(t, store.DeleteFantasyTeam(ctx, team.ID))
	err = store.DeleteFantasyTeam(ctx, team.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	teams, err := store.GetFantasyTeams(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
}
