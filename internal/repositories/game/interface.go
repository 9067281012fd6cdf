package game

import (
	"context"

	"github.com/frkandris/opinions/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/frkandris/opinions/internal/repositories/game Repository

// Repository defines the interface for game data persistence
type Repository interface {
	// CreateGame persists a new game and claims its join code
	CreateGame(ctx context.Context, input *CreateGameInput) error

	// SaveGame persists an updated game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// GetGameByCode retrieves a game by its join code, case-insensitively
	GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*models.Game, error)

	// DeleteGame removes a game and releases its join code
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
