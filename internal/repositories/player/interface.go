package player

import (
	"context"

	"github.com/frkandris/opinions/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/frkandris/opinions/internal/repositories/player Repository

// Repository defines the interface for player data persistence
type Repository interface {
	// CreatePlayer persists a new player, enforcing case-insensitive name
	// uniqueness within the game
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInGame retrieves all players in a game, in join order
	GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error)

	// DeletePlayersInGame removes every player belonging to a game
	DeletePlayersInGame(ctx context.Context, input *DeletePlayersInGameInput) error
}
