package handler

import (
	"net/http"

	"github.com/campuscanteen/backend/internal/listing"
)

type tagBody struct {
	Name string `json:"name"`
}

// listTags handles GET /tags. The optional ?name= filters by name prefix.
func (s *Server) listTags(w http.ResponseWriter, r *http.Request) {
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name := textParam(r, "name")
	page, err := s.svc.Tags.List(r.Context(), name, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{"name": name}
	s.render(w, r, "tags", listing.Assemble(base, "tags", page, viewSession(r)))
}

// listDishTags handles GET /dishes/{dishID}/tags.
func (s *Server) listDishTags(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	dish, page, err := s.svc.Tags.ListByDish(r.Context(), dishID, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{"dish": dish}
	s.render(w, r, "dish_tags", listing.Assemble(base, "tags", page, viewSession(r)))
}

// createTag handles POST /admin/tags.
func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	var body tagBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	tag, err := s.svc.Tags.Create(r.Context(), body.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, tag)
}

// renameTag handles PUT /admin/tags/{tagID}.
func (s *Server) renameTag(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "tagID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body tagBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	tag, err := s.svc.Tags.Rename(r.Context(), id, body.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, tag)
}

// deleteTag handles DELETE /admin/tags/{tagID}.
func (s *Server) deleteTag(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, "tagID", s.svc.Tags.Delete)
}
