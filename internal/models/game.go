package models

import (
	"time"
)

// GamePhase represents the current stage of a game session
type GamePhase string

const (
	// GamePhaseLobby indicates a game is waiting for players to join
	GamePhaseLobby GamePhase = "lobby"

	// GamePhaseOpinions indicates players are submitting their opinions
	GamePhaseOpinions GamePhase = "opinions"

	// GamePhaseVoting indicates players are voting on opinions
	GamePhaseVoting GamePhase = "voting"

	// GamePhaseResults indicates the game is finished and results are visible
	GamePhaseResults GamePhase = "results"
)

// phaseOrder is the fixed progression of phases. Transitions are monotonic:
// no skipping, no going backward.
var phaseOrder = []GamePhase{
	GamePhaseLobby,
	GamePhaseOpinions,
	GamePhaseVoting,
	GamePhaseResults,
}

// Next returns the phase that follows p, or p itself if p is terminal.
func (p GamePhase) Next() GamePhase {
	for i, phase := range phaseOrder {
		if phase == p && i+1 < len(phaseOrder) {
			return phaseOrder[i+1]
		}
	}
	return p
}

// CanTransitionTo reports whether moving from p to target is a single
// forward step along the phase order.
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	return p != target && p.Next() == target
}

// IsLobby reports whether the game is still accepting players
func (p GamePhase) IsLobby() bool {
	return p == GamePhaseLobby
}

// IsResults reports whether the game has reached its terminal phase
func (p GamePhase) IsResults() bool {
	return p == GamePhaseResults
}

// Game represents one play session of the opinions party game
type Game struct {
	// ID is the unique identifier for the game
	ID string `json:"id"`

	// Code is the short human-shareable join code, stored uppercase
	Code string `json:"code"`

	// Phase is the current stage of the game
	Phase GamePhase `json:"phase"`

	// CurrentOpinionIndex points into the opinion sequence during voting
	CurrentOpinionIndex int `json:"current_opinion_index"`

	// CurrentVoterIndex points into the host-first player order; only
	// meaningful in shared-device play, informational otherwise
	CurrentVoterIndex int `json:"current_voter_index"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
