package player_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/events"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	r.events = append(r.events, event)
	return nil
}

func newApp() (*player.App, *memstore.Store, *recordingPublisher) {
	clock := clockwork.NewFakeClock()
	store := memstore.New(clock)
	pub := &recordingPublisher{}
	return player.NewApp(store, store, events.NewEmitter(pub, clock)), store, pub
}

func TestCreatePlayer(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newApp()

	created, err := app.CreatePlayer(ctx, player.CreatePlayerRequest{
		Name:      "Scottie Scheffler",
		PgaID:     46046,
		Salary:    11000,
		AvatarURL: "https://example.com/scheffler.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 46046, created.PgaID)

	_, err = app.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Scottie Scheffler"})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = app.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Al"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = app.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Max Homa", Salary: -1})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCreatePlayersBulkValidatesEverythingFirst(t *testing.T) {
	ctx := context.Background()
	app, store, _ := newApp()

	_, err := app.CreatePlayersBulk(ctx, []player.CreatePlayerRequest{
		{Name: "Tommy Fleetwood"},
		{Name: "x"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "player 1")

	all, err := store.GetPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	created, err := app.CreatePlayersBulk(ctx, []player.CreatePlayerRequest{
		{Name: "Tommy Fleetwood"},
		{Name: "Shane Lowry"},
	})
	require.NoError(t, err)
	assert.Len(t, created, 2)
}

func TestFindOrCreatePlayerDefaults(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newApp()

	first, err := app.FindOrCreatePlayer(ctx, "Sam Burns")
	require.NoError(t, err)
	assert.Equal(t, 0, first.PgaID)
	assert.Equal(t, 0, first.Salary)

	again, err := app.FindOrCreatePlayer(ctx, "Sam Burns")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestUpdatePlayerPgaID(t *testing.T) {
	ctx := context.Background()
	app, _, pub := newApp()

	created, err := app.FindOrCreatePlayer(ctx, "Wyndham Clark")
	require.NoError(t, err)

	updated, err := app.UpdatePlayerPgaID(ctx, created.ID, 51766)
	require.NoError(t, err)
	assert.Equal(t, 51766, updated.PgaID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypePlayerPgaIDUpdated, pub.events[0].Type)

	_, err = app.UpdatePlayerPgaID(ctx, uuid.New(), 1)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetPlayerNotFound(t *testing.T) {
	app, _, _ := newApp()

	_, err := app.GetPlayer(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFoundError(err))
}
