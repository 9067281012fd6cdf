package models

import (
	"time"
)

// Vote records one voter's decision on one opinion: whether they agree
// with it, and who they believe wrote it. At most one exists per
// (voter, opinion) pair.
type Vote struct {
	// ID is the unique identifier for the vote
	ID string `json:"id"`

	// GameID is the ID of the game the vote belongs to
	GameID string `json:"game_id"`

	// OpinionID is the ID of the opinion being voted on
	OpinionID string `json:"opinion_id"`

	// VoterPlayerID is the ID of the player casting the vote
	VoterPlayerID string `json:"voter_player_id"`

	// Agree is the voter's stance on the opinion
	Agree bool `json:"agree"`

	// GuessedAuthorID is who the voter believes authored the opinion
	GuessedAuthorID string `json:"guessed_author_id"`

	// CreatedAt is when the vote was cast
	CreatedAt time.Time `json:"created_at"`
}
