package spotlight

import (
	"context"
	"time"
)

// PlayerType identifies how a player authenticates.
type PlayerType string

// PlayerType constants.
const (
	PlayerOffline    PlayerType = "offline"
	PlayerThirdParty PlayerType = "3rdparty"
	PlayerMicrosoft  PlayerType = "microsoft"
)

// Player represents a game account known to the launcher.
type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	UUID        string     `json:"uuid"`
	PlayerType  PlayerType `json:"playerType"`
	AuthServer  string     `json:"authServer,omitempty"`
	AuthAccount string     `json:"authAccount,omitempty"`
	Avatar      string     `json:"avatar,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Validate returns an error if the player contains invalid fields.
func (p *Player) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "player name required")
	}
	switch p.PlayerType {
	case PlayerOffline, PlayerMicrosoft:
	case PlayerThirdParty:
		if p.AuthServer == "" {
			return Errorf(EINVALID, "auth server required for third-party player")
		}
	default:
		return Errorf(EINVALID, "unknown player type %q", p.PlayerType)
	}
	return nil
}

// Description summarizes the account type for display.
func (p *Player) Description() string {
	switch p.PlayerType {
	case PlayerOffline:
		return "Offline"
	case PlayerMicrosoft:
		return "Microsoft"
	case PlayerThirdParty:
		switch {
		case p.AuthServer != "" && p.AuthAccount != "":
			return p.AuthServer + " - " + p.AuthAccount
		case p.AuthServer != "":
			return p.AuthServer
		default:
			return p.AuthAccount
		}
	}
	return string(p.PlayerType)
}

// PlayerService represents a service for managing players.
type PlayerService interface {
	// CreatePlayer creates a new player.
	CreatePlayer(ctx context.Context, player *Player) error

	// FindPlayerByID retrieves a player by ID.
	// Returns ENOTFOUND if player does not exist.
	FindPlayerByID(ctx context.Context, id string) (*Player, error)

	// FindPlayers retrieves players matching the filter.
	FindPlayers(ctx context.Context, filter PlayerFilter) ([]*Player, error)

	// DeletePlayer permanently removes a player.
	// Returns ENOTFOUND if player does not exist.
	DeletePlayer(ctx context.Context, id string) error
}

// PlayerFilter represents a filter for FindPlayers.
type PlayerFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
