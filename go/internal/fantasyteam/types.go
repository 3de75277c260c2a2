package fantasyteam

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mcdev12/fantasygolf/go/internal/apperrors"
	"github.com/mcdev12/fantasygolf/go/internal/connectutil"
)

// OwnerRef names a team's owner either by id or by the details used to
// find or create them. Exactly one variant is used per team.
type OwnerRef interface {
	isOwnerRef()
}

// OwnerByID references an owner id as-is; it is not checked for existence
type OwnerByID struct {
	ID uuid.UUID
}

// OwnerByDetails resolves an owner by email, creating them if absent
type OwnerByDetails struct {
	Name  string
	Email string
}

func (OwnerByID) isOwnerRef()      {}
func (OwnerByDetails) isOwnerRef() {}

// PlayerRef names one roster entry either by id or by player name
type PlayerRef interface {
	isPlayerRef()
}

// PlayerByID references a player id as-is
type PlayerByID struct {
	ID uuid.UUID
}

// PlayerByName resolves a player by name, creating them if absent
type PlayerByName struct {
	Name string
}

func (PlayerByID) isPlayerRef()   {}
func (PlayerByName) isPlayerRef() {}

// CreateTeamRequest is a resolved-shape team creation request
type CreateTeamRequest struct {
	Name    string
	Owner   OwnerRef
	Players []PlayerRef

	// PopulatePlayers returns the roster as players instead of bare ids
	PopulatePlayers bool
}

// CreateFantasyTeamParams is what the repository persists once every
// reference has been resolved to an id
type CreateFantasyTeamParams struct {
	Name      string
	OwnerID   uuid.UUID
	PlayerIDs []uuid.UUID
}

// OwnerInput is the wire form of OwnerByDetails
type OwnerInput struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// PlayerInput is the wire form of a roster entry; set exactly one field
type PlayerInput struct {
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name,omitempty"`
}

// CreateTeamInput is the wire form of a team, shared by the RPC service and
// the bulk import command. Set exactly one of OwnerID and Owner.
type CreateTeamInput struct {
	Name    string        `json:"name,omitempty"`
	OwnerID string        `json:"owner_id,omitempty"`
	Owner   *OwnerInput   `json:"owner,omitempty"`
	Players []PlayerInput `json:"players,omitempty"`

	PopulatePlayers bool `json:"populate_players,omitempty"`
}

// ToRequest converts the wire form into tagged references
func (in CreateTeamInput) ToRequest() (CreateTeamRequest, error) {
	req := CreateTeamRequest{Name: in.Name, PopulatePlayers: in.PopulatePlayers}

	ownerID := strings.TrimSpace(in.OwnerID)
	switch {
	case ownerID != "" && in.Owner != nil:
		return req, apperrors.NewInvalidInputError("provide either owner_id or owner, not both")
	case ownerID != "":
		id, err := connectutil.ParseRef("owner_id", ownerID)
		if err != nil {
			return req, err
		}
		req.Owner = OwnerByID{ID: id}
	case in.Owner != nil:
		req.Owner = OwnerByDetails{Name: in.Owner.Name, Email: in.Owner.Email}
	}

	req.Players = make([]PlayerRef, len(in.Players))
	for i, p := range in.Players {
		ref, err := p.toRef(i)
		if err != nil {
			return req, err
		}
		req.Players[i] = ref
	}
	return req, nil
}

func (p PlayerInput) toRef(index int) (PlayerRef, error) {
	playerID := strings.TrimSpace(p.PlayerID)
	switch {
	case playerID != "" && p.Name != "":
		return nil, apperrors.NewInvalidInputError("players[%d]: provide either player_id or name, not both", index)
	case playerID != "":
		id, err := connectutil.ParseRef(fmt.Sprintf("players[%d].player_id", index), playerID)
		if err != nil {
			return nil, err
		}
		return PlayerByID{ID: id}, nil
	case p.Name != "":
		return PlayerByName{Name: p.Name}, nil
	default:
		return nil, apperrors.NewInvalidInputError("players[%d]: player reference requires player_id or name", index)
	}
}
