package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	gameService "github.com/frkandris/opinions/internal/services/game"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

// joinQR renders the game's join link as a PNG QR code, for pointing
// phones at the host's screen instead of typing the code.
func (h *Handler) joinQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	state, err := h.gameService.GetGameState(r.Context(), &gameService.GetGameStateInput{
		GameID: ps.ByName("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= maxQRSize {
			size = parsed
		}
	}

	joinURL := fmt.Sprintf("%s/join?code=%s", h.baseURL, url.QueryEscape(state.Game.Code))

	png, err := qrcode.Encode(joinURL, qrcode.Medium, size)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(png); err != nil {
		return
	}
}
