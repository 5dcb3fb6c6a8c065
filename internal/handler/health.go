package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// health handles GET /healthz. It answers 200 {"status":"ok"} when the
// database answers a ping within two seconds, 503 otherwise.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.svc.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.svc.DB.Ping(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check: database unreachable")
			s.writeJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
