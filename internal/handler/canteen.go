package handler

import (
	"net/http"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

type canteenBody struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// listCanteens handles GET /canteens.
func (s *Server) listCanteens(w http.ResponseWriter, r *http.Request) {
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.svc.Canteens.List(r.Context(), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "canteens", listing.Assemble(nil, "canteens", page, viewSession(r)))
}

// createCanteen handles POST /admin/canteens.
func (s *Server) createCanteen(w http.ResponseWriter, r *http.Request) {
	var body canteenBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	c, err := s.svc.Canteens.Create(r.Context(), domain.Canteen{Name: body.Name, Location: body.Location})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, c)
}

// updateCanteen handles PUT /admin/canteens/{canteenID}.
func (s *Server) updateCanteen(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "canteenID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body canteenBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	c, err := s.svc.Canteens.Update(r.Context(), domain.Canteen{ID: id, Name: body.Name, Location: body.Location})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, c)
}

// deleteCanteen handles DELETE /admin/canteens/{canteenID}.
func (s *Server) deleteCanteen(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, "canteenID", s.svc.Canteens.Delete)
}
