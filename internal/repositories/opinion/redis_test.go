package opinion

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/frkandris/opinions/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newOpinion(id, playerID, text string) *models.Opinion {
	return &models.Opinion{
		ID:        id,
		GameID:    "test-game-id",
		PlayerID:  playerID,
		Text:      text,
		CreatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateOpinion_AssignsDenseOrderIndices() {
	for i := 0; i < 3; i++ {
		out, err := s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
			Opinion: s.newOpinion(
				fmt.Sprintf("opinion-%d", i),
				fmt.Sprintf("player-%d", i),
				fmt.Sprintf("statement %d", i),
			),
		})
		s.Require().NoError(err)
		s.Equal(i, out.Opinion.OrderIndex)
	}

	out, err := s.repo.GetOpinionsForGame(context.Background(), &GetOpinionsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Opinions, 3)

	// Order indices form a dense 0-based sequence in submission order
	for i, op := range out.Opinions {
		s.Equal(i, op.OrderIndex)
	}
}

func (s *RedisRepositoryTestSuite) TestCreateOpinion_OnePerAuthor() {
	_, err := s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
		Opinion: s.newOpinion("opinion-1", "player-1", "first"),
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
		Opinion: s.newOpinion("opinion-2", "player-1", "second attempt"),
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrAlreadySubmitted)

	// The rejected submission did not burn an order index
	out, err := s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
		Opinion: s.newOpinion("opinion-3", "player-2", "other author"),
	})
	s.Require().NoError(err)
	s.Equal(1, out.Opinion.OrderIndex)
}

func (s *RedisRepositoryTestSuite) TestCreateOpinion_InputOrderIndexIgnored() {
	op := s.newOpinion("opinion-1", "player-1", "text")
	op.OrderIndex = 42

	out, err := s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
		Opinion: op,
	})
	s.Require().NoError(err)
	s.Equal(0, out.Opinion.OrderIndex)
}

func (s *RedisRepositoryTestSuite) TestGetOpinionsForGame_Empty() {
	out, err := s.repo.GetOpinionsForGame(context.Background(), &GetOpinionsForGameInput{
		GameID: "empty-game",
	})
	s.Require().NoError(err)
	s.Empty(out.Opinions)
}

func (s *RedisRepositoryTestSuite) TestDeleteOpinionsForGame() {
	_, err := s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
		Opinion: s.newOpinion("opinion-1", "player-1", "text"),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteOpinionsForGame(context.Background(), &DeleteOpinionsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	out, err := s.repo.GetOpinionsForGame(context.Background(), &GetOpinionsForGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Empty(out.Opinions)

	// Author guard and sequence reset with the game
	created, err := s.repo.CreateOpinion(context.Background(), &CreateOpinionInput{
		Opinion: s.newOpinion("opinion-2", "player-1", "fresh game"),
	})
	s.Require().NoError(err)
	s.Equal(0, created.Opinion.OrderIndex)
}
