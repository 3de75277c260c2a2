package main

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/internal/events"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/mcdev12/fantasygolf/go/internal/results"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
	"github.com/rs/zerolog/log"
)

type Apps struct {
	Owners      *owners.App
	Players     *player.App
	Results     *results.App
	Tournaments *tournaments.App
	Teams       *fantasyteam.App
}

type Services struct {
	Owners      *owners.Service
	Players     *player.Service
	Results     *results.Service
	Tournaments *tournaments.Service
	Teams       *fantasyteam.Service
}

// setupEmitter publishes to JetStream when a NATS URL is configured and to
// the log otherwise. The returned func releases the broker connection.
func setupEmitter(ctx context.Context, config *Config, clock clockwork.Clock) (*events.Emitter, func(), error) {
	if config.Events.NatsURL == "" {
		return events.NewEmitter(events.NewLogPublisher(), clock), func() {}, nil
	}

	jsCfg := events.DefaultJetStreamConfig()
	jsCfg.URL = config.Events.NatsURL
	if config.Events.StreamName != "" {
		jsCfg.StreamName = config.Events.StreamName
	}
	if config.Events.SubjectPrefix != "" {
		jsCfg.SubjectPrefix = config.Events.SubjectPrefix
	}

	publisher, err := events.NewJetStreamPublisher(ctx, jsCfg)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close event publisher")
		}
	}
	return events.NewEmitter(publisher, clock), closer, nil
}

func setupApps(repos *Repositories, emitter *events.Emitter, clock clockwork.Clock) *Apps {
	// Repository layer → App layer
	ownersApp := owners.NewApp(repos.Owners)
	playerApp := player.NewApp(repos.Players, repos.PlayerResults, emitter)
	resultsApp := results.NewApp(repos.Results, repos.Players)
	tournamentsApp := tournaments.NewApp(repos.Tournaments, repos.Players, resultsApp, emitter, clock)
	teamsApp := fantasyteam.NewApp(repos.Teams, ownersApp, playerApp, emitter)

	return &Apps{
		Owners:      ownersApp,
		Players:     playerApp,
		Results:     resultsApp,
		Tournaments: tournamentsApp,
		Teams:       teamsApp,
	}
}

func setupServices(apps *Apps) *Services {
	// App layer → Service layer
	return &Services{
		Owners:      owners.NewService(apps.Owners),
		Players:     player.NewService(apps.Players),
		Results:     results.NewService(apps.Results),
		Tournaments: tournaments.NewService(apps.Tournaments),
		Teams:       fantasyteam.NewService(apps.Teams),
	}
}
