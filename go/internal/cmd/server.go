package main

import (
	"net/http"
	"time"

	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	"github.com/mcdev12/fantasygolf/go/internal/owners"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/mcdev12/fantasygolf/go/internal/results"
	"github.com/mcdev12/fantasygolf/go/internal/tournaments"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(config *Config, services *Services) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: config.Server.CORSOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{connectutil.BatchIndexHeader, fantasyteam.CreatedCountHeader},
	})

	// Register services
	registerServices(mux, services)

	// Add health check endpoint
	setupHealthCheck(mux)

	// Wrap with CORS
	handler := c.Handler(mux)

	// Setup HTTP/2 server
	return &http.Server{
		Addr:              ":" + config.Server.Port,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	mux.Handle(owners.NewServiceHandler(services.Owners))
	mux.Handle(player.NewServiceHandler(services.Players))
	mux.Handle(results.NewServiceHandler(services.Results))
	mux.Handle(tournaments.NewServiceHandler(services.Tournaments))
	mux.Handle(fantasyteam.NewServiceHandler(services.Teams))
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Warn().Err(err).Msg("Failed to write health check response")
		}
	})
}
