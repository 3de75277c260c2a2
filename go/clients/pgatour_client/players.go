package pgatour_client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Player struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"displayName"`
}

type PlayersResponse struct {
	Players []Player `json:"players"`
}

// Name returns the display name, falling back to first and last name
func (p Player) Name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// NumericID converts the directory's string id to the integer stored on players
func (p Player) NumericID() (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(p.ID))
	if err != nil {
		return 0, fmt.Errorf("player %q has non-numeric id %q", p.Name(), p.ID)
	}
	return id, nil
}

func ParsePlayers(body []byte) ([]Player, error) {
	var response PlayersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return response.Players, nil
}
