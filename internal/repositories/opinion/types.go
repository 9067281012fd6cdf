package opinion

import "github.com/frkandris/opinions/internal/models"

// CreateOpinionInput contains parameters for creating an opinion. The
// opinion's OrderIndex is ignored; the repository assigns it.
type CreateOpinionInput struct {
	Opinion *models.Opinion
}

// CreateOpinionOutput contains the stored opinion with its assigned order index
type CreateOpinionOutput struct {
	Opinion *models.Opinion
}

// GetOpinionsForGameInput contains parameters for retrieving a game's opinions
type GetOpinionsForGameInput struct {
	GameID string
}

// GetOpinionsForGameOutput contains the result of retrieving a game's opinions
type GetOpinionsForGameOutput struct {
	Opinions []*models.Opinion
}

// DeleteOpinionsForGameInput contains parameters for removing a game's opinions
type DeleteOpinionsForGameInput struct {
	GameID string
}
