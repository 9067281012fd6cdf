package game

import "github.com/frkandris/opinions/internal/models"

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	Game *models.Game
}

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameByCodeInput contains parameters for retrieving a game by join code
type GetGameByCodeInput struct {
	Code string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}
