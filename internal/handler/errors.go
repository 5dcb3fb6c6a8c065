package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campuscanteen/backend/internal/domain"
)

// sentinel pairs a domain error with its HTTP status and error code.
type sentinel struct {
	err    error
	status int
	code   string
}

var sentinels = []sentinel{
	{domain.ErrBadRequest, http.StatusBadRequest, "bad_request"},
	{domain.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
}

// fail writes err as an error response. Unknown errors become a 500 whose
// cause is logged but never shown to the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := classify(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).Str("path", r.URL.Path).
			Msg("request failed")
	}
	if werr := s.view.Error(w, r, status, code, msg); werr != nil {
		zerolog.Ctx(r.Context()).Error().Err(werr).Msg("write error response")
	}
}

func classify(err error) (status int, code, msg string) {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return http.StatusRequestEntityTooLarge, "too_large", "request body too large"
	}
	for _, sn := range sentinels {
		if errors.Is(err, sn.err) {
			return sn.status, sn.code, unwrapMessage(err, sn.err)
		}
	}
	return http.StatusInternalServerError, "internal", "internal server error"
}

// unwrapMessage extracts the human-readable part that follows the sentinel,
// e.g. "service.DishService.Create: validation error: name is required"
// becomes "name is required". Without a detail the sentinel text is used.
func unwrapMessage(err, sentinel error) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return sentinel.Error()
}
