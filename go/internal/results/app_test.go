package results_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/mcdev12/fantasygolf/go/internal/results"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResultsByIDsKeepsOrderAndNullsDangling(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClock()
	store := memstore.New(clock)
	app := results.NewApp(store, store)

	golfer, err := store.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Tony Finau"})
	require.NoError(t, err)
	tournament, err := store.CreateTournament(ctx, tournaments.CreateTournamentRequest{
		Name:      "Genesis Invitational",
		Status:    models.TournamentStatusCompleted,
		StartDate: clock.Now(),
		EndDate:   clock.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	first := models.Result{ID: uuid.New(), PlayerID: golfer.ID, Position: "T8", Points: 12}
	second := models.Result{ID: uuid.New(), PlayerID: golfer.ID, Position: "2", Points: 40}
	_, err = store.AppendResults(ctx, tournament.ID, []models.Result{first, second})
	require.NoError(t, err)

	missing := uuid.New()
	resolved, err := app.GetResultsByIDs(ctx, []uuid.UUID{second.ID, missing, first.ID})
	require.NoError(t, err)
	require.Len(t, resolved, 3)
	assert.Equal(t, "2", resolved[0].Position)
	assert.Nil(t, resolved[1])
	assert.Equal(t, "T8", resolved[2].Position)
	require.NotNil(t, resolved[2].Player)
	assert.Equal(t, "Tony Finau", resolved[2].Player.Name)

	all, err := app.GetAllResults(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, golfer.ID, all[0].Player.ID)
}

func TestPopulatePlayersLeavesMissingPlayerNil(t *testing.T) {
	store := memstore.New(clockwork.NewFakeClock())
	rows := []models.Result{{ID: uuid.New(), PlayerID: uuid.New(), Position: "1"}}

	require.NoError(t, results.PopulatePlayers(context.Background(), store, rows))
	assert.Nil(t, rows[0].Player)
}
