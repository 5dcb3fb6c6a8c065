package handler

import (
	"net/http"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// canteenMenu handles GET /canteens/{canteenID}/menu: the canteen's windows
// and tags, plus one page of its dishes narrowed by ?window_id=, ?tag_id=
// and ?name=.
func (s *Server) canteenMenu(w http.ResponseWriter, r *http.Request) {
	canteenID, err := pathID(r, "canteenID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	f := domain.DishFilter{NamePrefix: textParam(r, "name")}
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
	menu, err := s.svc.Menu.Menu(r.Context(), canteenID, f, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{
		"canteen":   menu.Canteen,
		"windows":   menu.Windows,
		"tags":      menu.Tags,
		"name":      f.NamePrefix,
		"window_id": idOrZero(f.WindowID),
		"tag_id":    idOrZero(f.TagID),
	}
	s.render(w, r, "menu", listing.Assemble(base, "dishes", menu.Dishes, viewSession(r)))
}

// listCanteenTags handles GET /canteens/{canteenID}/tags.
func (s *Server) listCanteenTags(w http.ResponseWriter, r *http.Request) {
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
	canteen, page, err := s.svc.Menu.Tags(r.Context(), canteenID, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	base := map[string]any{"canteen": canteen}
	s.render(w, r, "canteen_tags", listing.Assemble(base, "tags", page, viewSession(r)))
}

func idOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
