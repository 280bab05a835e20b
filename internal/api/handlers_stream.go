// Wanderlust - Travel Destination Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderlust

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/wanderlust/internal/logging"
	ws "github.com/tomtom215/wanderlust/internal/websocket"
)

// defaultStreamAttachTimeout bounds how long an upgraded connection waits
// for the hub, which may be between suture restarts.
const defaultStreamAttachTimeout = 5 * time.Second

// getUpgrader creates a websocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts origins listed in the CORS configuration.
// Browsers always send Origin on websocket handshakes, so a missing header
// is rejected. No configured origins allows all.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("feedback stream rejected: missing Origin header")
		return false
	}
	if len(h.allowedOrigins) == 0 {
		return true
	}
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Warn().Str("origin", logging.SanitizeValue(origin)).Msg("feedback stream rejected from unauthorized origin")
	return false
}

// FeedbackStream upgrades to a websocket that receives every recorded
// feedback event.
//
// @Summary Stream feedback events
// @Description Upgrades to a websocket. Each recorded like or dislike arrives as {"type":"feedback","data":{...}}. Send {"type":"ping"} to receive a pong.
// @Tags Feedback
// @Success 101 {string} string "Switching Protocols"
// @Failure 403 {string} string "Origin not allowed"
// @Failure 503 {object} models.APIResponse "Event stream disabled"
// @Router /api/v1/feedback/stream [get]
func (h *Handler) FeedbackStream(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Feedback stream unavailable", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("feedback stream upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn)
	if !h.hub.Attach(r.Context(), client, h.attachTimeout) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "feedback stream restarting"),
			time.Now().Add(time.Second))
		_ = conn.Close()
		return
	}
	client.Start()
}
