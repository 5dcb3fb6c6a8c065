package handler

import (
	"context"
	"net/http"
)

// deleteByID parses the named path id, calls del and answers 204.
func (s *Server) deleteByID(w http.ResponseWriter, r *http.Request, param string, del func(context.Context, int64) error) {
	id, err := pathID(r, param)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := del(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
