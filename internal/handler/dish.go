package handler

import (
	"context"
	"net/http"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

type dishBody struct {
	WindowID    int64  `json:"window_id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	Description string `json:"description"`
}

type dishTagBody struct {
	TagID int64 `json:"tag_id"`
}

// listDishes handles GET /dishes. Optional filters: ?name= (prefix),
// ?window_id= and ?tag_id=.
func (s *Server) listDishes(w http.ResponseWriter, r *http.Request) {
	f := domain.DishFilter{NamePrefix: textParam(r, "name")}
	var err error
	if f.WindowID, err = idQueryParam(r, "window_id"); err != nil {
		s.fail(w, r, err)
		return
	}
	if f.TagID, err = idQueryParam(r, "tag_id"); err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.svc.Dishes.List(r.Context(), f, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{"name": f.NamePrefix}
	s.render(w, r, "dishes", listing.Assemble(base, "dishes", page, viewSession(r)))
}

// listWindowDishes handles GET /windows/{windowID}/dishes?name=.
func (s *Server) listWindowDishes(w http.ResponseWriter, r *http.Request) {
	windowID, err := pathID(r, "windowID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	name := textParam(r, "name")
	win, page, err := s.svc.Dishes.ListByWindow(r.Context(), windowID, name, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{"window": win, "name": name}
	s.render(w, r, "dishes", listing.Assemble(base, "dishes", page, viewSession(r)))
}

// dishDetail handles GET /dishes/{dishID}: the dish, its window, the
// rating summary and one page of remarks.
func (s *Server) dishDetail(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dishID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	detail, err := s.svc.Dishes.Detail(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	remarks, err := s.svc.Remarks.ListByDish(r.Context(), id, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{
		"dish":         detail.Dish,
		"window":       detail.Window,
		"rating":       detail.Rating,
		"rating_count": detail.RatingCount,
	}
	s.render(w, r, "dish", listing.Assemble(base, "remarks", remarks, viewSession(r)))
}

// createDish handles POST /admin/windows/{windowID}/dishes.
func (s *Server) createDish(w http.ResponseWriter, r *http.Request) {
	windowID, err := pathID(r, "windowID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body dishBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := s.svc.Dishes.Create(r.Context(), domain.Dish{
		WindowID:    windowID,
		Name:        body.Name,
		PriceCents:  body.PriceCents,
		Description: body.Description,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, d)
}

// updateDish handles PUT /admin/dishes/{dishID}. The body replaces every
// field, window_id included, so a dish can move between windows.
func (s *Server) updateDish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "dishID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body dishBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := s.svc.Dishes.Update(r.Context(), domain.Dish{
		ID:          id,
		WindowID:    body.WindowID,
		Name:        body.Name,
		PriceCents:  body.PriceCents,
		Description: body.Description,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, d)
}

// deleteDish handles DELETE /admin/dishes/{dishID}.
func (s *Server) deleteDish(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, "dishID", s.svc.Dishes.Delete)
}

// addDishTag handles POST /admin/dishes/{dishID}/tags.
func (s *Server) addDishTag(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body dishTagBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	tag, err := s.svc.Dishes.AddTag(r.Context(), dishID, body.TagID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, tag)
}

// removeDishTag handles DELETE /admin/dishes/{dishID}/tags/{tagID}.
func (s *Server) removeDishTag(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.deleteByID(w, r, "tagID", func(ctx context.Context, tagID int64) error {
		return s.svc.Dishes.RemoveTag(ctx, dishID, tagID)
	})
}
