package player

import "github.com/frkandris/opinions/internal/models"

// CreatePlayerInput contains parameters for creating a player
type CreatePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInGameInput contains parameters for retrieving players in a game
type GetPlayersInGameInput struct {
	GameID string
}

// GetPlayersInGameOutput contains the result of retrieving players in a game
type GetPlayersInGameOutput struct {
	Players []*models.Player
}

// DeletePlayersInGameInput contains parameters for removing a game's players
type DeletePlayersInGameInput struct {
	GameID string
}
