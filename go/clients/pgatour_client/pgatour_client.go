package pgatour_client

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mcdev12/fantasygolf/go/clients"
)

// PgaTourClient reads the PGA Tour player directory from a URL or a saved file
type PgaTourClient struct {
	*clients.BaseClient
}

// NewPgaTourClient creates a client for the directory served at url
func NewPgaTourClient(url string) *PgaTourClient {
	client := &PgaTourClient{
		BaseClient: clients.NewBaseClient(url),
	}

	client.SetHeader(UserAgentHeader, UserAgent)
	client.SetHeader(AcceptHeader, "application/json")

	return client
}

// FetchPlayers downloads and parses the directory
func (c *PgaTourClient) FetchPlayers(ctx context.Context) ([]Player, error) {
	body, err := c.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return ParsePlayers(body)
}

// LoadPlayers reads the directory from source, which is either an http(s)
// URL or a path to a file holding the same JSON document.
func LoadPlayers(ctx context.Context, source string) ([]Player, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return NewPgaTourClient(source).FetchPlayers(ctx)
	}

	body, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read players file: %w", err)
	}
	return ParsePlayers(body)
}
