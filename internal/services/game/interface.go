package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/frkandris/opinions/internal/services/game Service

// Service is the game orchestrator: it owns every rule of the opinions
// game and is the only writer of game state. Handlers translate transport
// requests into these calls and never touch the repositories directly.
type Service interface {
	// CreateGame creates a game in the lobby phase with the caller as host
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame adds a player to a lobby-phase game, found by join code
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// SubmitOpinion records a player's anonymous statement
	SubmitOpinion(ctx context.Context, input *SubmitOpinionInput) (*SubmitOpinionOutput, error)

	// SubmitVote records a vote on the current opinion and moves the game
	// forward when the opinion is fully voted
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// AdvancePhase moves the game to its next phase, host only
	AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error)

	// ResetGame deletes the game and everything in it, host only
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// GetGameState reads the participant-facing state of a game
	GetGameState(ctx context.Context, input *GetGameStateInput) (*GetGameStateOutput, error)
}
