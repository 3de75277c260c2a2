package fantasyteam_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/events"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordingPublisher struct {
	events []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	r.events = append(r.events, event)
	return nil
}

type AppSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memstore.Store
	players   *player.App
	app       *fantasyteam.App
	published *recordingPublisher
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppSuite))
}

func (s *AppSuite) SetupTest() {
	clock := clockwork.NewFakeClock()
	s.ctx = context.Background()
	s.store = memstore.New(clock)
	s.published = &recordingPublisher{}
	s.players = player.NewApp(s.store, s.store, nil)
	s.app = fantasyteam.NewApp(
		s.store,
		owners.NewApp(s.store),
		s.players,
		events.NewEmitter(s.published, clock),
	)
}

func (s *AppSuite) TestCreateTeamRoundTrip() {
	team, err := s.app.CreateTeam(s.ctx, fantasyteam.CreateTeamRequest{
		Name:  "Fairway Flyers",
		Owner: fantasyteam.OwnerByDetails{Name: "Ana", Email: "ana@example.com"},
		Players: []fantasyteam.PlayerRef{
			fantasyteam.PlayerByName{Name: "Scottie Scheffler"},
			fantasyteam.PlayerByName{Name: "Rory McIlroy"},
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(team.Owner)
	s.Equal("ana@example.com", team.Owner.Email)
	s.Len(team.PlayerIDs, 2)
	s.Nil(team.Players)

	fetched, err := s.app.GetTeamByID(s.ctx, team.ID)
	s.Require().NoError(err)
	s.Equal(team.OwnerID, fetched.Owner.ID)
	s.Require().Len(fetched.Players, 2)
	s.Equal("Scottie Scheffler", fetched.Players[0].Name)
	s.Equal("Rory McIlroy", fetched.Players[1].Name)
	s.Equal(0, fetched.Players[0].PgaID)
	s.Equal(0, fetched.Players[0].Salary)

	s.Require().Len(s.published.events, 1)
	s.Equal(events.TypeTeamCreated, s.published.events[0].Type)
	s.Equal(team.ID, s.published.events[0].AggregateID)
}

func (s *AppSuite) TestRosterKeepsRequestOrderAcrossReferenceKinds() {
	existing, err := s.players.CreatePlayer(s.ctx, player.CreatePlayerRequest{Name: "Jon Rahm", PgaID: 46970, Salary: 9800})
	s.Require().NoError(err)

	team, err := s.app.CreateTeam(s.ctx, fantasyteam.CreateTeamRequest{
		Name:  "Sunday Red",
		Owner: fantasyteam.OwnerByDetails{Email: "bo@example.com"},
		Players: []fantasyteam.PlayerRef{
			fantasyteam.PlayerByName{Name: "Viktor Hovland"},
			fantasyteam.PlayerByID{ID: existing.ID},
			fantasyteam.PlayerByName{Name: "Jon Rahm"},
		},
		PopulatePlayers: true,
	})
	s.Require().NoError(err)
	s.Require().Len(team.Players, 3)
	s.Equal("Viktor Hovland", team.Players[0].Name)
	s.Equal(existing.ID, team.PlayerIDs[1])
	s.Equal(existing.ID, team.PlayerIDs[2])
	s.Equal(46970, team.Players[2].PgaID)
}

func (s *AppSuite) TestCreateTeamRequiresOwner() {
	_, err := s.app.CreateTeam(s.ctx, fantasyteam.CreateTeamRequest{})
	s.True(apperrors.IsInvalidInputError(err))

	teams, err := s.app.GetAllTeams(s.ctx)
	s.Require().NoError(err)
	s.Empty(teams)
}

func (s *AppSuite) TestFindOrCreateIsIdempotent() {
	for _, name := range []string{"First", "Second"} {
		_, err := s.app.CreateTeam(s.ctx, fantasyteam.CreateTeamRequest{
			Name:    name,
			Owner:   fantasyteam.OwnerByDetails{Name: "Cy", Email: "cy@example.com"},
			Players: []fantasyteam.PlayerRef{fantasyteam.PlayerByName{Name: "Collin Morikawa"}},
		})
		s.Require().NoError(err)
	}

	ownersList, err := s.store.GetOwners(s.ctx)
	s.Require().NoError(err)
	s.Len(ownersList, 1)

	playersList, err := s.store.GetPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(playersList, 1)

	teams, err := s.app.GetTeamsByOwner(s.ctx, ownersList[0].ID)
	s.Require().NoError(err)
	s.Len(teams, 2)
}

func (s *AppSuite) TestDanglingReferencesResolveToNil() {
	ghostOwner := uuid.New()
	ghostPlayer := uuid.New()
	team, err := s.app.CreateTeam(s.ctx, fantasyteam.CreateTeamRequest{
		Name:    "Ghosts",
		Owner:   fantasyteam.OwnerByID{ID: ghostOwner},
		Players: []fantasyteam.PlayerRef{fantasyteam.PlayerByID{ID: ghostPlayer}},
	})
	s.Require().NoError(err)
	s.Nil(team.Owner)

	fetched, err := s.app.GetTeamByID(s.ctx, team.ID)
	s.Require().NoError(err)
	s.Equal(ghostOwner, fetched.OwnerID)
	s.Nil(fetched.Owner)
	s.Require().Len(fetched.Players, 1)
	s.Nil(fetched.Players[0])
}

func (s *AppSuite) TestGetAndDeleteUnknownTeam() {
	_, err := s.app.GetTeamByID(s.ctx, uuid.New())
	s.True(apperrors.IsNotFoundError(err))

	_, err = s.app.DeleteTeamByID(s.ctx, uuid.New())
	s.True(apperrors.IsNotFoundError(err))
}

func (s *AppSuite) TestDeleteLeavesOwnerAndPlayers() {
	team, err := s.app.CreateTeam(s.ctx, fantasyteam.CreateTeamRequest{
		Name:    "Short Lived",
		Owner:   fantasyteam.OwnerByDetails{Email: "dee@example.com"},
		Players: []fantasyteam.PlayerRef{fantasyteam.PlayerByName{Name: "Ludvig Aberg"}},
	})
	s.Require().NoError(err)

	deleted, err := s.app.DeleteTeamByID(s.ctx, team.ID)
	s.Require().NoError(err)
	s.True(deleted)

	_, err = s.app.GetTeamByID(s.ctx, team.ID)
	s.True(apperrors.IsNotFoundError(err))

	_, err = s.store.GetOwner(s.ctx, team.OwnerID)
	s.NoError(err)
	_, err = s.store.GetPlayer(s.ctx, team.PlayerIDs[0])
	s.NoError(err)
}

func (s *AppSuite) TestCreateTeamsStopsAtFirstFailure() {
	created, err := s.app.CreateTeams(s.ctx, []fantasyteam.CreateTeamRequest{
		{Name: "One", Owner: fantasyteam.OwnerByDetails{Email: "one@example.com"}},
		{Name: "Two", Owner: fantasyteam.OwnerByDetails{Email: "not-an-email"}},
		{Name: "Three", Owner: fantasyteam.OwnerByDetails{Email: "three@example.com"}},
	})
	s.Require().Error(err)
	s.Len(created, 1)

	batchErr, ok := apperrors.AsBatchError(err)
	s.Require().True(ok)
	s.Equal(1, batchErr.Index)
	s.True(apperrors.IsValidationError(err))

	teams, err := s.app.GetAllTeams(s.ctx)
	s.Require().NoError(err)
	s.Len(teams, 1)
}

func (s *AppSuite) TestCreateTeamsFromInputsCreatesPrefixBeforeBadInput() {
	created, err := s.app.CreateTeamsFromInputs(s.ctx, []fantasyteam.CreateTeamInput{
		{Name: "Good", Owner: &fantasyteam.OwnerInput{Email: "good@example.com"}},
		{Name: "Bad", OwnerID: uuid.NewString(), Owner: &fantasyteam.OwnerInput{Email: "bad@example.com"}},
	})
	s.Require().Error(err)
	s.Len(created, 1)

	batchErr, ok := apperrors.AsBatchError(err)
	s.Require().True(ok)
	s.Equal(1, batchErr.Index)
	s.True(apperrors.IsInvalidInputError(err))
}

func TestCreateTeamWithInvalidPlayerName(t *testing.T) {
	store := memstore.New(clockwork.NewFakeClock())
	app := fantasyteam.NewApp(store, owners.NewApp(store), player.NewApp(store, store, nil), nil)

	_, err := app.CreateTeam(context.Background(), fantasyteam.CreateTeamRequest{
		Name:    "Tiny",
		Owner:   fantasyteam.OwnerByDetails{Email: "tiny@example.com"},
		Players: []fantasyteam.PlayerRef{fantasyteam.PlayerByName{Name: "Al"}},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
