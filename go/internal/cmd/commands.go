package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/fantasygolf/go/clients/pgatour_client"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/dbconfig"
	"github.com/mcdev12/fantasygolf/go/internal/fantasyteam"
	"github.com/mcdev12/fantasygolf/go/internal/models"
	"github.com/mcdev12/fantasygolf/go/internal/player"
	"github.com/mcdev12/fantasygolf/go/internal/schema"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "fantasygolf",
		Short:         "Fantasy golf league backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", getEnv("CONFIG_PATH", "config.yaml"), "Path to the YAML config file")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(migrateCmd())
	root.AddCommand(importTeamsCmd(&configPath))
	root.AddCommand(updatePgaIDsCmd(&configPath))
	return root
}

// cmdRuntime is everything a command needs once config and storage are up
type cmdRuntime struct {
	config *Config
	repos  *Repositories
	apps   *Apps
	close  func()
}

func setupRuntime(ctx context.Context, configPath string) (*cmdRuntime, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	clock := clockwork.NewRealClock()
	repos, err := setupRepositories(ctx, config, clock)
	if err != nil {
		return nil, err
	}

	emitter, closeEmitter, err := setupEmitter(ctx, config, clock)
	if err != nil {
		repos.Close()
		return nil, err
	}

	return &cmdRuntime{
		config: config,
		repos:  repos,
		apps:   setupApps(repos, emitter, clock),
		close: func() {
			closeEmitter()
			repos.Close()
		},
	}, nil
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the RPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			rt, err := setupRuntime(ctx, *configPath)
			if err != nil {
				return err
			}
			defer rt.close()

			server := setupServer(rt.config, setupServices(rt.apps))

			serverErr := make(chan error, 1)
			go func() {
				log.Info().Str("addr", server.Addr).Str("store", rt.config.Store.Backend).Msg("server starting")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			select {
			case sig := <-sigChan:
				log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
			case err := <-serverErr:
				return fmt.Errorf("server failed: %w", err)
			}

			// Graceful shutdown
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			log.Info().Msg("server shutdown complete")
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := setupDatabase(cmd.Context(), dbconfig.NewConfigFromEnv())
			if err != nil {
				return err
			}
			defer database.Close()

			return schema.Apply(cmd.Context(), database)
		},
	}
}

func importTeamsCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import-teams",
		Short: "Create fantasy teams from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read teams file: %w", err)
			}

			var inputs []fantasyteam.CreateTeamInput
			if err := json.Unmarshal(data, &inputs); err != nil {
				return fmt.Errorf("failed to parse teams file: %w", err)
			}

			rt, err := setupRuntime(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer rt.close()

			teams, err := rt.apps.Teams.CreateTeamsFromInputs(cmd.Context(), inputs)
			report := summarizeImport(teams)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d teams for %d owners\n", report.Teams, len(inputs), report.Owners)
			if err != nil {
				if batchErr, ok := apperrors.AsBatchError(err); ok {
					return fmt.Errorf("team %d could not be created: %w", batchErr.Index, batchErr.Err)
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "teams.json", "JSON array of teams to create")
	return cmd
}

type importReport struct {
	Teams  int
	Owners int
}

func summarizeImport(teams []models.FantasyTeam) importReport {
	owners := make(map[uuid.UUID]struct{}, len(teams))
	for _, team := range teams {
		owners[team.OwnerID] = struct{}{}
	}
	return importReport{Teams: len(teams), Owners: len(owners)}
}

func updatePgaIDsCmd(configPath *string) *cobra.Command {
	var (
		source string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "update-pga-ids",
		Short: "Assign PGA Tour ids to players by matching names against the PGA Tour directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setupRuntime(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer rt.close()

			if source == "" {
				source = rt.config.Pga.Source
			}
			if source == "" {
				return errors.New("no PGA Tour source: pass --source or set PGA_PLAYERS_SOURCE")
			}

			directory, err := pgatour_client.LoadPlayers(cmd.Context(), source)
			if err != nil {
				return err
			}

			summary, err := rt.apps.Players.ReconcilePgaIDs(cmd.Context(), toListings(directory), dryRun)
			if err != nil {
				return err
			}
			printSummary(cmd, summary, dryRun)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "PGA Tour players JSON, as a file path or http(s) URL")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report changes without writing them")
	return cmd
}

// toListings keeps the directory entries that carry a numeric id
func toListings(directory []pgatour_client.Player) []player.PgaListing {
	listings := make([]player.PgaListing, 0, len(directory))
	for _, entry := range directory {
		id, err := entry.NumericID()
		if err != nil {
			log.Warn().Err(err).Msg("Skipping PGA Tour entry")
			continue
		}
		listings = append(listings, player.PgaListing{PgaID: id, DisplayName: entry.Name()})
	}
	return listings
}

func printSummary(cmd *cobra.Command, summary *player.ReconcileSummary, dryRun bool) {
	out := cmd.OutOrStdout()
	if dryRun {
		fmt.Fprintln(out, "Dry run, no players were changed")
	}
	fmt.Fprintf(out, "Players:         %d\n", summary.Total)
	fmt.Fprintf(out, "Matched:         %d\n", summary.Matched)
	fmt.Fprintf(out, "Updated:         %d\n", summary.Updated)
	fmt.Fprintf(out, "Already correct: %d\n", summary.AlreadyCorrect)
	fmt.Fprintf(out, "Not found:       %d\n", summary.NotFound)
	if summary.Failed > 0 {
		fmt.Fprintf(out, "Failed:          %d\n", summary.Failed)
	}
	for _, name := range summary.Unmatched {
		fmt.Fprintf(out, "  unmatched: %s\n", name)
	}
}
