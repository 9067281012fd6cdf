package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/frkandris/opinions/internal/models"
	gameService "github.com/frkandris/opinions/internal/services/game"
	syncService "github.com/frkandris/opinions/internal/services/sync"
)

// Handler exposes the game over HTTP: a JSON API for actions and reads, a
// websocket feed of change events, and a QR image for sharing the join link.
type Handler struct {
	gameService gameService.Service
	syncService syncService.Service
	baseURL     string
}

// Config holds the configuration for the web handler
type Config struct {
	// GameService executes every game action
	GameService gameService.Service

	// SyncService feeds the websocket endpoint
	SyncService syncService.Service

	// BaseURL is the externally visible URL of the server, used to build
	// the join link encoded in QR codes
	BaseURL string
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.SyncService == nil {
		return nil, errors.New("sync service cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
		syncService: cfg.SyncService,
		baseURL:     cfg.BaseURL,
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *httprouter.Router {
	router := httprouter.New()

	router.POST("/api/games", h.createGame)
	router.POST("/api/games/join", h.joinGame)
	router.GET("/api/games/:id", h.getGameState)
	router.POST("/api/games/:id/opinions", h.submitOpinion)
	router.POST("/api/games/:id/votes", h.submitVote)
	router.POST("/api/games/:id/advance", h.advancePhase)
	router.POST("/api/games/:id/reset", h.resetGame)
	router.GET("/api/games/:id/events", h.gameEvents)
	router.GET("/api/games/:id/qr", h.joinQR)

	return router
}

type createGameRequest struct {
	HostName string `json:"host_name"`
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req createGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.gameService.CreateGame(r.Context(), &gameService.CreateGameInput{
		HostName: req.HostName,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

type joinGameRequest struct {
	Code       string `json:"code"`
	PlayerName string `json:"player_name"`
}

func (h *Handler) joinGame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req joinGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.gameService.JoinGame(r.Context(), &gameService.JoinGameInput{
		Code:       req.Code,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getGameState(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	out, err := h.gameService.GetGameState(r.Context(), &gameService.GetGameStateInput{
		GameID:   ps.ByName("id"),
		PlayerID: r.URL.Query().Get("player_id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

type submitOpinionRequest struct {
	PlayerID string `json:"player_id"`
	Text     string `json:"text"`
}

func (h *Handler) submitOpinion(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req submitOpinionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.gameService.SubmitOpinion(r.Context(), &gameService.SubmitOpinionInput{
		GameID:   ps.ByName("id"),
		PlayerID: req.PlayerID,
		Text:     req.Text,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

type submitVoteRequest struct {
	PlayerID        string `json:"player_id"`
	Agree           bool   `json:"agree"`
	GuessedAuthorID string `json:"guessed_author_id"`
}

func (h *Handler) submitVote(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req submitVoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.gameService.SubmitVote(r.Context(), &gameService.SubmitVoteInput{
		GameID:          ps.ByName("id"),
		VoterPlayerID:   req.PlayerID,
		Agree:           req.Agree,
		GuessedAuthorID: req.GuessedAuthorID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

type advancePhaseRequest struct {
	PlayerID  string `json:"player_id"`
	FromPhase string `json:"from_phase"`
}

func (h *Handler) advancePhase(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req advancePhaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.gameService.AdvancePhase(r.Context(), &gameService.AdvancePhaseInput{
		GameID:    ps.ByName("id"),
		PlayerID:  req.PlayerID,
		FromPhase: models.GamePhase(req.FromPhase),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

type resetGameRequest struct {
	PlayerID string `json:"player_id"`
}

func (h *Handler) resetGame(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req resetGameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.gameService.ResetGame(r.Context(), &gameService.ResetGameInput{
		GameID:   ps.ByName("id"),
		PlayerID: req.PlayerID,
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}
