package models

import (
	"time"
)

// Player represents one participant in a game
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// GameID is the ID of the game the player belongs to
	GameID string `json:"game_id"`

	// Name is the display name, trimmed and at most MaxNameLength runes.
	// Unique within a game, case-insensitively.
	Name string `json:"name"`

	// IsHost marks the first player to join; the host drives phase advances
	IsHost bool `json:"is_host"`

	// JoinedAt is when the player joined the game
	JoinedAt time.Time `json:"joined_at"`
}
