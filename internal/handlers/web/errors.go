package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	gameService "github.com/frkandris/opinions/internal/services/game"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors onto HTTP statuses. Conflicts with state
// someone else already created are 409, bad requests 400, authority
// failures 403, and anything unmapped is a 500.
func statusFor(err error) int {
	var gameErr gameService.GameError
	if !errors.As(err, &gameErr) {
		return http.StatusInternalServerError
	}

	switch gameErr {
	case gameService.ErrGameNotFound, gameService.ErrPlayerNotFound:
		return http.StatusNotFound

	case gameService.ErrEmptyName,
		gameService.ErrEmptyOpinion,
		gameService.ErrMissingGuess,
		gameService.ErrGuessedPlayerNotInGame,
		gameService.ErrPlayerNotInGame:
		return http.StatusBadRequest

	case gameService.ErrNotHost:
		return http.StatusForbidden

	case gameService.ErrNameTaken,
		gameService.ErrGameAlreadyStarted,
		gameService.ErrGameFull,
		gameService.ErrNotEnoughPlayers,
		gameService.ErrOpinionsOutstanding,
		gameService.ErrAlreadySubmitted,
		gameService.ErrAlreadyVoted,
		gameService.ErrInvalidGameState:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("web: internal error: %v", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("web: failed to write response: %v", err)
	}
}
