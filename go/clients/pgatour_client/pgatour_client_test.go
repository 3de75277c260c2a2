package pgatour_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directory = `{"players":[
	{"id":"46046","firstName":"Scottie","lastName":"Scheffler","displayName":"Scottie Scheffler"},
	{"id":"28237","firstName":"Rory","lastName":"McIlroy","displayName":""}
]}`

func TestFetchPlayers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get(UserAgentHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(directory))
	}))
	defer server.Close()

	players, err := LoadPlayers(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Scottie Scheffler", players[0].Name())
	assert.Equal(t, "Rory McIlroy", players[1].Name())

	id, err := players[1].NumericID()
	require.NoError(t, err)
	assert.Equal(t, 28237, id)
}

func TestFetchPlayersServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewPgaTourClient(server.URL).FetchPlayers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestLoadPlayersFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte(directory), 0o600))

	players, err := LoadPlayers(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestNumericIDRejectsGarbage(t *testing.T) {
	_, err := Player{ID: "abc", DisplayName: "Nobody"}.NumericID()
	assert.Error(t, err)
}
