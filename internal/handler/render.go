package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campuscanteen/backend/internal/view"
)

// render writes a 200 listing page in the negotiated format.
func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if err := s.view.Render(w, r, http.StatusOK, page, data); err != nil {
		s.fail(w, r, err)
	}
}

// writeJSON writes v as JSON. Encoding failures happen after the status
// line is out, so they can only be logged.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := view.JSON(w, status, v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encode response")
	}
}
