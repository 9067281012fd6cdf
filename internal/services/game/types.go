package game

import (
	"time"

	"github.com/frkandris/opinions/internal/common/clock"
	"github.com/frkandris/opinions/internal/common/roomcode"
	"github.com/frkandris/opinions/internal/common/uuid"
	"github.com/frkandris/opinions/internal/models"
	gameRepo "github.com/frkandris/opinions/internal/repositories/game"
	opinionRepo "github.com/frkandris/opinions/internal/repositories/opinion"
	playerRepo "github.com/frkandris/opinions/internal/repositories/player"
	voteRepo "github.com/frkandris/opinions/internal/repositories/vote"
	"github.com/frkandris/opinions/internal/scoring"
	"github.com/frkandris/opinions/internal/services/sync"
	"github.com/frkandris/opinions/internal/turns"
)

const (
	// DefaultMaxPlayers caps a single game's lobby
	DefaultMaxPlayers = 12

	// DefaultCodeAttempts is how many join codes are tried before giving up
	DefaultCodeAttempts = 5

	// MinPlayersToStart is the smallest lobby that can leave the lobby phase
	MinPlayersToStart = 2
)

// Config holds configuration for the game service
type Config struct {
	// TurnMode selects concurrent or pass-the-device voting
	TurnMode turns.Mode

	// MaxPlayers caps the lobby; zero means DefaultMaxPlayers
	MaxPlayers int

	// CodeAttempts is how many join codes to try on collision; zero means
	// DefaultCodeAttempts
	CodeAttempts int

	// Repository dependencies
	GameRepo    gameRepo.Repository
	PlayerRepo  playerRepo.Repository
	OpinionRepo opinionRepo.Repository
	VoteRepo    voteRepo.Repository

	// Publisher delivers change events to subscribed participants
	Publisher sync.Publisher

	// Clock provides the current time
	Clock clock.Clock

	// UUIDGenerator provides entity IDs
	UUIDGenerator uuid.UUID

	// CodeGenerator provides join codes
	CodeGenerator roomcode.Generator
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	// HostName is the display name of the creating player
	HostName string
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	Game *models.Game
	Host *models.Player
}

// JoinGameInput contains parameters for joining a game by code
type JoinGameInput struct {
	Code       string
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game   *models.Game
	Player *models.Player
}

// SubmitOpinionInput contains parameters for submitting an opinion
type SubmitOpinionInput struct {
	GameID   string
	PlayerID string
	Text     string
}

// SubmitOpinionOutput contains the stored opinion
type SubmitOpinionOutput struct {
	Opinion *models.Opinion
}

// SubmitVoteInput contains parameters for voting on the current opinion
type SubmitVoteInput struct {
	GameID          string
	VoterPlayerID   string
	Agree           bool
	GuessedAuthorID string
}

// SubmitVoteOutput contains the stored vote and the game after any
// pointer or phase movement the vote caused
type SubmitVoteOutput struct {
	Vote *models.Vote
	Game *models.Game
}

// AdvancePhaseInput contains parameters for moving the game to its next
// phase. FromPhase is the phase the caller believes the game is in; a
// stale value makes the call a no-op instead of a double advance.
type AdvancePhaseInput struct {
	GameID    string
	PlayerID  string
	FromPhase models.GamePhase
}

// AdvancePhaseOutput contains the game after the transition
type AdvancePhaseOutput struct {
	Game *models.Game
}

// ResetGameInput contains parameters for tearing a game down
type ResetGameInput struct {
	GameID   string
	PlayerID string
}

// ResetGameOutput contains the result of tearing a game down
type ResetGameOutput struct{}

// GetGameStateInput contains parameters for reading a game's state.
// PlayerID is optional; when set, the per-player flags are filled in.
type GetGameStateInput struct {
	GameID   string
	PlayerID string
}

// PlayerView is a player as shown to participants
type PlayerView struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	IsHost              bool      `json:"is_host"`
	HasSubmittedOpinion bool      `json:"has_submitted_opinion"`
	JoinedAt            time.Time `json:"joined_at"`
}

// OpinionView is an opinion as shown to participants. AuthorID is empty
// until the game reaches results; statements stay anonymous while votes
// are being cast.
type OpinionView struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	OrderIndex int    `json:"order_index"`
	AuthorID   string `json:"author_id,omitempty"`
}

// GetGameStateOutput is the full participant-facing state of a game
type GetGameStateOutput struct {
	Game *models.Game `json:"game"`

	// Players in display order, host first
	Players []*PlayerView `json:"players"`

	// Opinions in submission order; empty until the voting phase
	Opinions []*OpinionView `json:"opinions,omitempty"`

	// CurrentOpinion is the opinion being voted on; nil outside voting
	CurrentOpinion *OpinionView `json:"current_opinion,omitempty"`

	// CurrentVoter is whose turn it is in pass-the-device play
	CurrentVoter *PlayerView `json:"current_voter,omitempty"`

	// OpinionsSubmitted and ExpectedOpinions drive the writing-phase
	// progress counter
	OpinionsSubmitted int `json:"opinions_submitted"`
	ExpectedOpinions  int `json:"expected_opinions"`

	// VotesOnCurrent and ExpectedVotes drive the voting-phase progress
	// counter
	VotesOnCurrent int `json:"votes_on_current"`
	ExpectedVotes  int `json:"expected_votes"`

	// Per-player flags for the requesting player; zero when no PlayerID
	// was supplied
	YouSubmittedOpinion bool `json:"you_submitted_opinion"`
	YouVotedOnCurrent   bool `json:"you_voted_on_current"`

	// Scoreboard and Tallies are filled in once the game reaches results
	Scoreboard []*scoring.PlayerScore `json:"scoreboard,omitempty"`
	Tallies    []*scoring.OpinionTally `json:"tallies,omitempty"`
}
