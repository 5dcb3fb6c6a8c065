package handler

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	wsMaxMessage = 4096
	wsIdle       = 60 * time.Second
)

// echo handles GET /ws/echo: every text or binary message is written
// back unchanged until the client closes or goes idle.
func (s *Server) echo(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		return
	}
	defer conn.Close()

	log := zerolog.Ctx(r.Context())
	conn.SetReadLimit(wsMaxMessage)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(wsIdle))
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug().Err(err).Msg("websocket closed")
			}
			return
		}
		if err := conn.WriteMessage(mt, msg); err != nil {
			log.Debug().Err(err).Msg("websocket write")
			return
		}
	}
}

// checkOrigin accepts same-origin upgrades, requests without an Origin
// header and any configured origin.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	return slices.Contains(s.opts.AllowedOrigins, origin)
}
