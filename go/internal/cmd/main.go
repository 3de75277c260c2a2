package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	setupLogging(getEnv("LOG_LEVEL", "info"), getEnv("LOG_FORMAT", "console"))

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging configures the global zerolog logger. Any format other than
// "json" gets the human-readable console writer.
func setupLogging(level, format string) {
	if !strings.EqualFold(format, "json") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
