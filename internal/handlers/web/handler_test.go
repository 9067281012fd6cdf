package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/frkandris/opinions/internal/models"
	gameService "github.com/frkandris/opinions/internal/services/game"
	gameMocks "github.com/frkandris/opinions/internal/services/game/mocks"
	syncService "github.com/frkandris/opinions/internal/services/sync"
)

type handlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	mr          *miniredis.Miniredis
	redisClient *redis.Client
	sync        syncService.Service

	gameService *gameMocks.MockService
	server      *httptest.Server
}

func (s *handlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.redisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	svc, err := syncService.New(&syncService.Config{RedisClient: s.redisClient})
	s.Require().NoError(err)
	s.sync = svc

	s.gameService = gameMocks.NewMockService(s.ctrl)

	handler, err := New(&Config{
		GameService: s.gameService,
		SyncService: s.sync,
		BaseURL:     "http://party.local:8080",
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler.Router())
}

func (s *handlerTestSuite) TearDownTest() {
	s.server.Close()
	s.redisClient.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func (s *handlerTestSuite) postJSON(path string, payload any) *http.Response {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(body))
	s.Require().NoError(err)
	return resp
}

func (s *handlerTestSuite) TestNew_ValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{SyncService: s.sync})
	s.Error(err)

	_, err = New(&Config{GameService: s.gameService})
	s.Error(err)
}

func (s *handlerTestSuite) TestCreateGame() {
	s.gameService.EXPECT().CreateGame(gomock.Any(), &gameService.CreateGameInput{HostName: "Anna"}).Return(
		&gameService.CreateGameOutput{
			Game: &models.Game{ID: "game-1", Code: "ABCDEF", Phase: models.GamePhaseLobby},
			Host: &models.Player{ID: "host-1", Name: "Anna", IsHost: true},
		}, nil)

	resp := s.postJSON("/api/games", map[string]string{"host_name": "Anna"})
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var out gameService.CreateGameOutput
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	s.Equal("ABCDEF", out.Game.Code)
	s.Equal("host-1", out.Host.ID)
}

func (s *handlerTestSuite) TestCreateGame_EmptyNameIsBadRequest() {
	s.gameService.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Return(nil, gameService.ErrEmptyName)

	resp := s.postJSON("/api/games", map[string]string{"host_name": "  "})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *handlerTestSuite) TestCreateGame_InvalidJSON() {
	resp, err := http.Post(s.server.URL+"/api/games", "application/json", strings.NewReader("{nope"))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *handlerTestSuite) TestJoinGame_NameTakenIsConflict() {
	s.gameService.EXPECT().JoinGame(gomock.Any(), &gameService.JoinGameInput{Code: "ABCDEF", PlayerName: "anna"}).Return(
		nil, gameService.ErrNameTaken)

	resp := s.postJSON("/api/games/join", map[string]string{"code": "ABCDEF", "player_name": "anna"})
	defer resp.Body.Close()

	s.Equal(http.StatusConflict, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Contains(body["error"], "name already taken")
}

func (s *handlerTestSuite) TestGetGameState_PassesPlayerID() {
	s.gameService.EXPECT().GetGameState(gomock.Any(), &gameService.GetGameStateInput{GameID: "game-1", PlayerID: "host-1"}).Return(
		&gameService.GetGameStateOutput{
			Game: &models.Game{ID: "game-1", Phase: models.GamePhaseOpinions},
		}, nil)

	resp, err := http.Get(s.server.URL + "/api/games/game-1?player_id=host-1")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *handlerTestSuite) TestGetGameState_NotFound() {
	s.gameService.EXPECT().GetGameState(gomock.Any(), gomock.Any()).Return(nil, gameService.ErrGameNotFound)

	resp, err := http.Get(s.server.URL + "/api/games/nosuch")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *handlerTestSuite) TestAdvancePhase_NotHostIsForbidden() {
	s.gameService.EXPECT().AdvancePhase(gomock.Any(), &gameService.AdvancePhaseInput{
		GameID:    "game-1",
		PlayerID:  "player-2",
		FromPhase: models.GamePhaseLobby,
	}).Return(nil, gameService.ErrNotHost)

	resp := s.postJSON("/api/games/game-1/advance", map[string]string{
		"player_id":  "player-2",
		"from_phase": "lobby",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusForbidden, resp.StatusCode)
}

func (s *handlerTestSuite) TestSubmitVote() {
	s.gameService.EXPECT().SubmitVote(gomock.Any(), &gameService.SubmitVoteInput{
		GameID:          "game-1",
		VoterPlayerID:   "player-2",
		Agree:           true,
		GuessedAuthorID: "host-1",
	}).Return(&gameService.SubmitVoteOutput{
		Vote: &models.Vote{ID: "vote-1"},
		Game: &models.Game{ID: "game-1", Phase: models.GamePhaseVoting},
	}, nil)

	resp := s.postJSON("/api/games/game-1/votes", map[string]any{
		"player_id":         "player-2",
		"agree":             true,
		"guessed_author_id": "host-1",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)
}

func (s *handlerTestSuite) TestResetGame() {
	s.gameService.EXPECT().ResetGame(gomock.Any(), &gameService.ResetGameInput{GameID: "game-1", PlayerID: "host-1"}).Return(
		&gameService.ResetGameOutput{}, nil)

	resp := s.postJSON("/api/games/game-1/reset", map[string]string{"player_id": "host-1"})
	defer resp.Body.Close()

	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *handlerTestSuite) TestJoinQR_ReturnsPNG() {
	s.gameService.EXPECT().GetGameState(gomock.Any(), &gameService.GetGameStateInput{GameID: "game-1"}).Return(
		&gameService.GetGameStateOutput{
			Game: &models.Game{ID: "game-1", Code: "ABCDEF"},
		}, nil)

	resp, err := http.Get(s.server.URL + "/api/games/game-1/qr")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("image/png", resp.Header.Get("Content-Type"))
}

func (s *handlerTestSuite) TestGameEvents_ForwardsFeed() {
	s.gameService.EXPECT().GetGameState(gomock.Any(), &gameService.GetGameStateInput{GameID: "game-1"}).Return(
		&gameService.GetGameStateOutput{Game: &models.Game{ID: "game-1"}}, nil)

	wsURL := strings.Replace(s.server.URL, "http://", "ws://", 1) + "/api/games/game-1/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	err = s.sync.Publish(context.Background(), &syncService.PublishInput{
		Event: &syncService.Event{
			GameID:   "game-1",
			Entity:   syncService.EntityPlayer,
			Type:     syncService.EventInsert,
			EntityID: "player-2",
			Player:   &models.Player{ID: "player-2", Name: "Bela"},
		},
	})
	s.Require().NoError(err)

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	var event syncService.Event
	s.Require().NoError(conn.ReadJSON(&event))
	s.Equal(syncService.EntityPlayer, event.Entity)
	s.Require().NotNil(event.Player)
	s.Equal("Bela", event.Player.Name)
}

func (s *handlerTestSuite) TestGameEvents_GameDeleteClosesFeed() {
	s.gameService.EXPECT().GetGameState(gomock.Any(), gomock.Any()).Return(
		&gameService.GetGameStateOutput{Game: &models.Game{ID: "game-1"}}, nil)

	wsURL := strings.Replace(s.server.URL, "http://", "ws://", 1) + "/api/games/game-1/events"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	err = s.sync.Publish(context.Background(), &syncService.PublishInput{
		Event: &syncService.Event{
			GameID:   "game-1",
			Entity:   syncService.EntityGame,
			Type:     syncService.EventDelete,
			EntityID: "game-1",
		},
	})
	s.Require().NoError(err)

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	var event syncService.Event
	s.Require().NoError(conn.ReadJSON(&event))
	s.Equal(syncService.EventDelete, event.Type)

	// The server hangs up after the delete event
	_, _, err = conn.ReadMessage()
	s.Error(err)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerTestSuite))
}
