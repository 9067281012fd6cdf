package web

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	gameService "github.com/frkandris/opinions/internal/services/game"
	syncService "github.com/frkandris/opinions/internal/services/sync"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Join codes are the access control; the API is same-origin or open
	// party use on a LAN, so cross-origin browsers may connect.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// gameEvents upgrades to a websocket and forwards the game's change feed
// until the client goes away or the game is deleted.
func (h *Handler) gameEvents(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("id")

	// Reject feeds for games that do not exist before upgrading
	if _, err := h.gameService.GetGameState(r.Context(), &gameService.GetGameStateInput{GameID: gameID}); err != nil {
		writeError(w, err)
		return
	}

	sub, err := h.syncService.Subscribe(r.Context(), &syncService.SubscribeInput{GameID: gameID})
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		sub.Close()
		log.Printf("web: websocket upgrade failed for game %s: %v", gameID, err)
		return
	}

	defer conn.Close()
	defer sub.Close()

	// Drain client frames so pings and close frames are processed; the
	// feed is one-way.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for event := range sub.Events() {
		if err := conn.WriteJSON(event); err != nil {
			return
		}

		if event.Entity == syncService.EntityGame && event.Type == syncService.EventDelete {
			return
		}
	}
}
