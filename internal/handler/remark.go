package handler

import "net/http"

type remarkBody struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// postRemark handles POST /dishes/{dishID}/remarks for logged-in users.
func (s *Server) postRemark(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathID(r, "dishID")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var body remarkBody
	if err := decodeJSON(r, &body); err != nil {
		s.fail(w, r, err)
		return
	}
	rm, err := s.svc.Remarks.Post(r.Context(), SessionFromContext(r.Context()), dishID, body.Rating, body.Content)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, rm)
}

// deleteRemark handles DELETE /admin/remarks/{remarkID}.
func (s *Server) deleteRemark(w http.ResponseWriter, r *http.Request) {
	s.deleteByID(w, r, "remarkID", s.svc.Remarks.Delete)
}
