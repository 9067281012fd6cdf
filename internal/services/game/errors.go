package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound           GameError = "game not found"
	ErrPlayerNotFound         GameError = "player not found"
	ErrPlayerNotInGame        GameError = "player not in game"
	ErrNameTaken              GameError = "name already taken in this game"
	ErrEmptyName              GameError = "name cannot be empty"
	ErrEmptyOpinion           GameError = "opinion cannot be empty"
	ErrGameAlreadyStarted     GameError = "game has already started"
	ErrGameFull               GameError = "game is at maximum capacity"
	ErrNotEnoughPlayers       GameError = "not enough players to start"
	ErrNotHost                GameError = "only the host can do that"
	ErrOpinionsOutstanding    GameError = "not every player has submitted an opinion"
	ErrAlreadySubmitted       GameError = "player already submitted an opinion"
	ErrAlreadyVoted           GameError = "player already voted on this opinion"
	ErrMissingGuess           GameError = "vote must include an author guess"
	ErrGuessedPlayerNotInGame GameError = "guessed author is not in this game"
	ErrInvalidGameState       GameError = "invalid game state"
	ErrCodeSpaceExhausted     GameError = "could not allocate a unique join code"
	ErrNilConfig              GameError = "config cannot be nil"
	ErrNilGameRepo            GameError = "game repository cannot be nil"
	ErrNilPlayerRepo          GameError = "player repository cannot be nil"
	ErrNilOpinionRepo         GameError = "opinion repository cannot be nil"
	ErrNilVoteRepo            GameError = "vote repository cannot be nil"
	ErrNilPublisher           GameError = "event publisher cannot be nil"
	ErrNilClock               GameError = "clock cannot be nil"
	ErrNilUUIDGenerator       GameError = "UUID generator cannot be nil"
	ErrNilCodeGenerator       GameError = "room code generator cannot be nil"
)
