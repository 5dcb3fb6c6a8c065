package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/view"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginPage handles GET /login.
func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.renderLogin(w, r, http.StatusOK, "", "")
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, status int, username, errMsg string) {
	data := map[string]any{
		"next":           r.URL.Query().Get("next"),
		"login_username": username,
	}
	if errMsg != "" {
		data["error"] = errMsg
	}
	if err := s.view.HTML(w, r, status, "login", data); err != nil {
		s.fail(w, r, err)
	}
}

// login handles POST /login. JSON clients get the session back as JSON;
// form posts are redirected to ?next= (or /canteens) on success and see
// the login page again on bad credentials.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	jsonReq := isJSONRequest(r)
	var creds credentials
	if jsonReq {
		if err := decodeJSON(r, &creds); err != nil {
			s.fail(w, r, err)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			s.fail(w, r, err)
			return
		}
		creds = credentials{Username: r.PostForm.Get("username"), Password: r.PostForm.Get("password")}
	}

	sess, err := s.svc.Auth.Login(r.Context(), creds.Username, creds.Password)
	if err != nil {
		if !jsonReq && errors.Is(err, domain.ErrUnauthorized) {
			s.renderLogin(w, r, http.StatusUnauthorized, creds.Username, "Invalid username or password.")
			return
		}
		s.fail(w, r, err)
		return
	}

	s.setSessionCookie(w, sess)
	if jsonReq {
		s.writeJSON(w, r, http.StatusOK, map[string]any{
			"username":     sess.Username,
			"is_superuser": sess.IsSuperuser,
			"expires_at":   sess.ExpiresAt,
		})
		return
	}
	http.Redirect(w, r, safeNext(r.URL.Query().Get("next"), "/canteens"), http.StatusSeeOther)
}

// logout handles POST /logout.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if sess := SessionFromContext(r.Context()); sess != nil {
		if err := s.svc.Auth.Logout(r.Context(), sess.ID); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	clearSessionCookie(w)
	if isJSONRequest(r) || view.WantsJSON(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// register handles POST /register.
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		s.fail(w, r, err)
		return
	}
	u, err := s.svc.Auth.Register(r.Context(), creds.Username, creds.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusCreated, u)
}

// findUser handles GET /admin/users/{username}.
func (s *Server) findUser(w http.ResponseWriter, r *http.Request) {
	u, err := s.svc.Auth.FindUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, u)
}

// listUsers handles GET /admin/users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	p, err := pageParam(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.svc.Auth.ListUsers(r.Context(), p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.render(w, r, "users", listing.Assemble(nil, "users", page, viewSession(r)))
}
