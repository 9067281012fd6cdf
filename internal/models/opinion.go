package models

import (
	"time"
)

// Opinion represents a player-authored statement, anonymous to voters
// until the results phase. At most one exists per (game, author) pair.
type Opinion struct {
	// ID is the unique identifier for the opinion
	ID string `json:"id"`

	// GameID is the ID of the game the opinion belongs to
	GameID string `json:"game_id"`

	// PlayerID is the ID of the authoring player
	PlayerID string `json:"player_id"`

	// Text is the statement, trimmed and at most MaxOpinionLength runes
	Text string `json:"text"`

	// OrderIndex is the dense 0-based position in submission order
	OrderIndex int `json:"order_index"`

	// CreatedAt is when the opinion was submitted
	CreatedAt time.Time `json:"created_at"`
}
