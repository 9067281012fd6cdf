package opinion

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/frkandris/opinions/internal/repositories/opinion Repository

// Repository defines the interface for opinion data persistence
type Repository interface {
	// CreateOpinion persists a new opinion, enforcing one per author per
	// game, and assigns its order index from a store-owned sequence
	CreateOpinion(ctx context.Context, input *CreateOpinionInput) (*CreateOpinionOutput, error)

	// GetOpinionsForGame retrieves all opinions of a game, in submission order
	GetOpinionsForGame(ctx context.Context, input *GetOpinionsForGameInput) (*GetOpinionsForGameOutput, error)

	// DeleteOpinionsForGame removes every opinion belonging to a game
	DeleteOpinionsForGame(ctx context.Context, input *DeleteOpinionsForGameInput) error
}
