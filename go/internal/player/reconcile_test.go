package player_test

import (
	"context"
	"testing"

	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "rory mcilroy", player.NormalizeName("  Rory   McIlroy "))
	assert.Equal(t, "", player.NormalizeName("   "))
}

func TestReconcilePgaIDs(t *testing.T) {
	ctx := context.Background()
	app, store, _ := newApp()

	_, err := app.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Rory McIlroy", PgaID: 28237})
	require.NoError(t, err)
	_, err = app.FindOrCreatePlayer(ctx, "Ludvig  Aberg")
	require.NoError(t, err)
	_, err = app.FindOrCreatePlayer(ctx, "Local Amateur")
	require.NoError(t, err)

	listings := []player.PgaListing{
		{PgaID: 28237, DisplayName: "Rory McIlroy"},
		{PgaID: 52955, DisplayName: "Ludvig Aberg"},
	}

	preview, err := app.ReconcilePgaIDs(ctx, listings, true)
	require.NoError(t, err)
	assert.Equal(t, 3, preview.Total)
	assert.Equal(t, 2, preview.Matched)
	assert.Equal(t, 1, preview.Updated)
	assert.Equal(t, 1, preview.AlreadyCorrect)
	assert.Equal(t, []string{"Local Amateur"}, preview.Unmatched)

	unchanged, err := store.UpsertPlayerByName(ctx, "Ludvig  Aberg")
	require.NoError(t, err)
	assert.Equal(t, 0, unchanged.PgaID)

	summary, err := app.ReconcilePgaIDs(ctx, listings, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 0, summary.Failed)

	updated, err := store.UpsertPlayerByName(ctx, "Ludvig  Aberg")
	require.NoError(t, err)
	assert.Equal(t, 52955, updated.PgaID)

	rerun, err := app.ReconcilePgaIDs(ctx, listings, false)
	require.NoError(t, err)
	assert.Equal(t, 0, rerun.Updated)
	assert.Equal(t, 2, rerun.AlreadyCorrect)
}
