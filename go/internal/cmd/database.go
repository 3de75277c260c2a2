package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	_ "github.com/lib/pq"
	"github.com/mcdev12/fantasygolf/go/internal/dbconfig"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	fantasyteamdb "github.com/mcdev12/fantasygolf/go/internal/fantasyteam/db"
	"github.com/mcdev12/fantasygolf/go/internal/memstore"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	ownersdb "github.com/mcdev12/fantasygolf/go/internal/owners/db"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	playerdb "github.com/mcdev12/fantasygolf/go/internal/player/db"
	"github.com/mcdev12/fantasygolf/go/internal/results"
	resultsdb "github.com/mcdev12/fantasygolf/go/internal/results/db"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
	tournamentsdb "github.com/mcdev12/fantasygolf/go/internal/tournaments/db"
	"github.com/rs/zerolog/log"
)

// Repositories is the storage behind every app, either Postgres or memory
type Repositories struct {
	Owners        owners.OwnersRepository
	Players       player.PlayerRepository
	PlayerResults player.ResultsRepository
	Results       results.ResultsRepository
	Tournaments   tournaments.TournamentRepository
	Teams         fantasyteam.FantasyTeamRepository

	closers []func()
}

func (r *Repositories) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func setupDatabase(ctx context.Context, cfg dbconfig.Config) (*sql.DB, error) {
	database, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	database.SetMaxOpenConns(cfg.MaxConns)

	if err := database.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Str("database", cfg.Redacted()).Msg("Connected to database")
	return database, nil
}

// setupPool opens the pgx pool used by the tournament results aggregator
func setupPool(ctx context.Context, cfg dbconfig.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.PoolDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pgx pool: %w", err)
	}
	return pool, nil
}

func setupRepositories(ctx context.Context, config *Config, clock clockwork.Clock) (*Repositories, error) {
	if config.Store.Backend == backendMemory {
		log.Warn().Msg("Using in-memory store; data is lost on exit")
		store := memstore.New(clock)
		return &Repositories{
			Owners:        store,
			Players:       store,
			PlayerResults: store,
			Results:       store,
			Tournaments:   store,
			Teams:         store,
		}, nil
	}

	dbCfg := dbconfig.NewConfigFromEnv()
	database, err := setupDatabase(ctx, dbCfg)
	if err != nil {
		return nil, err
	}

	pool, err := setupPool(ctx, dbCfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	// Database layer → Repository layer
	resultsRepo := results.NewRepository(resultsdb.New(database))
	return &Repositories{
		Owners:        owners.NewRepository(ownersdb.New(database)),
		Players:       player.NewRepository(playerdb.New(database), database),
		PlayerResults: resultsRepo,
		Results:       resultsRepo,
		Tournaments:   tournaments.NewRepository(tournamentsdb.New(database), pool),
		Teams:         fantasyteam.NewRepository(fantasyteamdb.New(database)),
		closers: []func(){
			func() { database.Close() },
			pool.Close,
		},
	}, nil
}
