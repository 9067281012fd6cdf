package vote

import "github.com/frkandris/opinions/internal/models"

// CreateVoteInput contains parameters for creating a vote
type CreateVoteInput struct {
	Vote *models.Vote
}

// GetVotesForGameInput contains parameters for retrieving a game's votes
type GetVotesForGameInput struct {
	GameID string
}

// GetVotesForGameOutput contains the result of retrieving a game's votes
type GetVotesForGameOutput struct {
	Votes []*models.Vote
}

// CountVotesForOpinionInput contains parameters for counting votes on an opinion
type CountVotesForOpinionInput struct {
	OpinionID string
}

// CountVotesForOpinionOutput contains the result of counting votes on an opinion
type CountVotesForOpinionOutput struct {
	Count int
}

// DeleteVotesForGameInput contains parameters for removing a game's votes
type DeleteVotesForGameInput struct {
	GameID string
}
