package sync

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/frkandris/opinions/internal/models"
)

type serviceTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service *service
	ctx     context.Context
}

func (s *serviceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	svc, err := New(&Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.service = svc

	s.ctx = context.Background()
}

func (s *serviceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func (s *serviceTestSuite) TestNew_ValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *serviceTestSuite) TestPublish_ValidatesInput() {
	err := s.service.Publish(s.ctx, nil)
	s.Error(err)

	err = s.service.Publish(s.ctx, &PublishInput{})
	s.Error(err)

	err = s.service.Publish(s.ctx, &PublishInput{Event: &Event{}})
	s.Error(err)
}

func (s *serviceTestSuite) TestPublishSubscribe_RoundTrip() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	sub, err := s.service.Subscribe(ctx, &SubscribeInput{GameID: "game-1"})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.service.Publish(s.ctx, &PublishInput{
		Event: &Event{
			GameID:   "game-1",
			Entity:   EntityPlayer,
			Type:     EventInsert,
			EntityID: "player-1",
			Player:   &models.Player{ID: "player-1", Name: "Anna"},
		},
	})
	s.Require().NoError(err)

	select {
	case event := <-sub.Events():
		s.Require().NotNil(event)
		s.Equal("game-1", event.GameID)
		s.Equal(EntityPlayer, event.Entity)
		s.Equal(EventInsert, event.Type)
		s.Require().NotNil(event.Player)
		s.Equal("Anna", event.Player.Name)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for event")
	}
}

func (s *serviceTestSuite) TestSubscribe_ScopedToGame() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	sub, err := s.service.Subscribe(ctx, &SubscribeInput{GameID: "game-1"})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.service.Publish(s.ctx, &PublishInput{
		Event: &Event{
			GameID:   "game-2",
			Entity:   EntityGame,
			Type:     EventUpdate,
			EntityID: "game-2",
		},
	})
	s.Require().NoError(err)

	select {
	case event := <-sub.Events():
		s.FailNowf("unexpected event", "got event for game %s", event.GameID)
	case <-time.After(200 * time.Millisecond):
	}
}

func (s *serviceTestSuite) TestSubscribe_CloseEndsFeed() {
	sub, err := s.service.Subscribe(s.ctx, &SubscribeInput{GameID: "game-1"})
	s.Require().NoError(err)

	s.Require().NoError(sub.Close())

	select {
	case _, ok := <-sub.Events():
		s.False(ok)
	case <-time.After(2 * time.Second):
		s.FailNow("event channel was not closed")
	}
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(serviceTestSuite))
}
