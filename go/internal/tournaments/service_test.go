package tournaments_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/mcdev12/fantasygolf/go/internal/results"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceAddResults(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 7, 20, 18, 0, 0, 0, time.UTC))
	store := memstore.New(clock)
	app := tournaments.NewApp(store, store, results.NewApp(store, store), nil, clock)

	golfer, err := store.CreatePlayer(ctx, player.CreatePlayerRequest{Name: "Scottie Scheffler"})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle(tournaments.NewServiceHandler(tournaments.NewService(app)))
	server := httptest.NewServer(mux)
	defer server.Close()

	create := connect.NewClient[tournaments.CreateTournamentRequest, tournaments.TournamentResponse](
		http.DefaultClient, server.URL+tournaments.TournamentServiceCreateTournamentProcedure, connectutil.WithJSON())
	addResults := connect.NewClient[tournaments.AddResultsToTournamentRequest, tournaments.TournamentResponse](
		http.DefaultClient, server.URL+tournaments.TournamentServiceAddResultsToTournamentProcedure, connectutil.WithJSON())

	created, err := create.CallUnary(ctx, connect.NewRequest(&tournaments.CreateTournamentRequest{
		Name:      "The Open",
		Status:    models.TournamentStatusInProgress,
		StartDate: clock.Now().Add(-72 * time.Hour),
		EndDate:   clock.Now(),
	}))
	require.NoError(t, err)
	tournamentID := created.Msg.Tournament.ID.String()

	updated, err := addResults.CallUnary(ctx, connect.NewRequest(&tournaments.AddResultsToTournamentRequest{
		TournamentID: tournamentID,
		Results:      []tournaments.ResultMessage{{PlayerID: golfer.ID.String(), Position: "1"}},
	}))
	require.NoError(t, err)
	require.Len(t, updated.Msg.Tournament.Results, 1)
	assert.Equal(t, 0, updated.Msg.Tournament.Results[0].Points)
	assert.Equal(t, "Scottie Scheffler", updated.Msg.Tournament.Results[0].Player.Name)

	_, err = addResults.CallUnary(ctx, connect.NewRequest(&tournaments.AddResultsToTournamentRequest{
		TournamentID: tournamentID,
		Results:      []tournaments.ResultMessage{{PlayerID: "not-a-uuid", Position: "2"}},
	}))
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, connect.CodeInvalidArgument, connectErr.Code())

	_, err = addResults.CallUnary(ctx, connect.NewRequest(&tournaments.AddResultsToTournamentRequest{
		TournamentID: uuid.NewString(),
		Results:      []tournaments.ResultMessage{{PlayerID: golfer.ID.String(), Position: "2"}},
	}))
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, connect.CodeNotFound, connectErr.Code())
}
