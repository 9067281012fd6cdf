package vote

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/frkandris/opinions/internal/repositories/vote Repository

// Repository defines the interface for vote data persistence
type Repository interface {
	// CreateVote persists a new vote, enforcing one per (voter, opinion) pair
	CreateVote(ctx context.Context, input *CreateVoteInput) error

	// GetVotesForGame retrieves all votes of a game
	GetVotesForGame(ctx context.Context, input *GetVotesForGameInput) (*GetVotesForGameOutput, error)

	// CountVotesForOpinion returns the number of votes cast on one opinion
	CountVotesForOpinion(ctx context.Context, input *CountVotesForOpinionInput) (*CountVotesForOpinionOutput, error)

	// DeleteVotesForGame removes every vote belonging to a game
	DeleteVotesForGame(ctx context.Context, input *DeleteVotesForGameInput) error
}
