package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// PgaListing is one entry of the PGA Tour player directory
type PgaListing struct {
	PgaID       int
	DisplayName string
}

// ReconcileSummary counts what a reconciliation pass did
type ReconcileSummary struct {
	Total          int      `json:"total"`
	Matched        int      `json:"matched"`
	Updated        int      `json:"updated"`
	AlreadyCorrect int      `json:"already_correct"`
	NotFound       int      `json:"not_found"`
	Failed         int      `json:"failed"`
	Unmatched      []string `json:"unmatched,omitempty"`
}

// NormalizeName lowercases a name and collapses runs of whitespace so that
// "Rory  McIlroy " and "rory mcilroy" compare equal.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ReconcilePgaIDs matches every stored player against the PGA Tour directory
// by normalized name and assigns the directory id where it differs.
// A failed update is logged and counted; the pass carries on with the rest.
func (a *App) ReconcilePgaIDs(ctx context.Context, listings []PgaListing, dryRun bool) (*ReconcileSummary, error) {
	byName := make(map[string]int, len(listings))
	for _, listing := range listings {
		byName[NormalizeName(listing.DisplayName)] = listing.PgaID
	}

	players, err := a.repo.GetPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	summary := &ReconcileSummary{Total: len(players)}
	for _, p := range players {
		pgaID, ok := byName[NormalizeName(p.Name)]
		if !ok {
			summary.NotFound++
			summary.Unmatched = append(summary.Unmatched, p.Name)
			continue
		}

		summary.Matched++
		if p.PgaID == pgaID {
			summary.AlreadyCorrect++
			continue
		}

		if dryRun {
			summary.Updated++
			log.Info().Str("player", p.Name).Int("pga_id", pgaID).Msg("Would update PGA id")
			continue
		}

		if _, err := a.UpdatePlayerPgaID(ctx, p.ID, pgaID); err != nil {
			summary.Failed++
			log.Error().Err(err).Str("player", p.Name).Msg("Failed to update PGA id")
			continue
		}
		summary.Updated++
	}

	return summary, nil
}
