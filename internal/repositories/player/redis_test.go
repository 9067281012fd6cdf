package player

import (
	"context"
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

func (s *RedisRepositoryTestSuite) newPlayer(id, name string, host bool, joined time.Time) *models.Player {
	return &models.Player{
		ID:       id,
		GameID:   "test-game-id",
		Name:     name,
		IsHost:   host,
		JoinedAt: joined,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetPlayer() {
	player := s.newPlayer("player-1", "Anna", true, s.testNow)

	err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: player,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "player-1",
	})
	s.Require().NoError(err)
	s.Equal("player-1", retrieved.ID)
	s.Equal("test-game-id", retrieved.GameID)
	s.Equal("Anna", retrieved.Name)
	s.True(retrieved.IsHost)
	s.Equal(s.testNow.Unix(), retrieved.JoinedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestCreatePlayer_NameTakenCaseInsensitive() {
	err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: s.newPlayer("player-1", "Anna", true, s.testNow),
	})
	s.Require().NoError(err)

	err = s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: s.newPlayer("player-2", "ANNA", false, s.testNow.Add(time.Second)),
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNameTaken)

	// The rejected join leaves no player record behind
	out, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Len(out.Players, 1)
}

func (s *RedisRepositoryTestSuite) TestCreatePlayer_SameNameDifferentGames() {
	err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: s.newPlayer("player-1", "Anna", true, s.testNow),
	})
	s.Require().NoError(err)

	other := s.newPlayer("player-2", "Anna", true, s.testNow)
	other.GameID = "other-game-id"

	err = s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: other,
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestGetPlayersInGame_JoinOrder() {
	names := []string{"Anna", "Bela", "Csilla"}
	for i, name := range names {
		err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
			Player: s.newPlayer("player-"+name, name, i == 0, s.testNow.Add(time.Duration(i)*time.Second)),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetPlayersInGame(context.Background(), &GetPlayersInGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Players, 3)

	for i, name := range names {
		s.Equal(name, out.Players[i].Name)
	}
}

func (s *RedisRepositoryTestSuite) TestGetPlayer_NotFound() {
	_, err := s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "missing",
	})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeletePlayersInGame() {
	err := s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: s.newPlayer("player-1", "Anna", true, s.testNow),
	})
	s.Require().NoError(err)

	err = s.repo.DeletePlayersInGame(context.Background(), &DeletePlayersInGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetPlayer(context.Background(), &GetPlayerInput{
		PlayerID: "player-1",
	})
	s.ErrorIs(err, ErrPlayerNotFound)

	// Names are released with the game
	err = s.repo.CreatePlayer(context.Background(), &CreatePlayerInput{
		Player: s.newPlayer("player-9", "Anna", true, s.testNow),
	})
	s.NoError(err)
}
