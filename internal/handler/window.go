package handler

import (
	"net/http"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

type windowBody struct {
	Name string `json:"name"`
}

// listWindows handles GET /canteens/{canteenID}/windows.
func (s *Server) listWindows(w http.ResponseWriter, r *http.Request) {
	canteenID, err := pathID(r, "canteenID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	canteen, page, err := s.svc.Windows.ListByCanteen(r.Context(), canteenID, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{"canteen": canteen}
	s.render(w, r, "windows", listing.Assemble(base, "windows", page, viewSession(r)))
}

// createWindow handles POST /admin/canteens/{canteenID}/windows.
func (s *Server) createWindow(w http.ResponseWriter, r *http.Request) {
	canteenID, err := pathID(r, "canteenID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body windowBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	win, err := s.svc.Windows.Create(r.Context(), domain.Window{CanteenID: canteenID, Name: body.Name})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, win)
}

// renameWindow handles PUT /admin/windows/{windowID}.
func (s *Server) renameWindow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "windowID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body windowBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	win, err := s.svc.Windows.Rename(r.Context(), id, body.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, win)
}

// deleteWindow handles DELETE /admin/windows/{windowID}.
func (s *Server) deleteWindow(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, "windowID", s.svc.Windows.Delete)
}
