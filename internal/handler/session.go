package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/view"
)

// SessionCookieName is the cookie that carries the session id.
const SessionCookieName = "canteen_session"

type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext returns the request's session, or nil when anonymous.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// loadSession resolves the session cookie and stores the session in the
// request context. A stale cookie is cleared; the request continues anonymously.
func (s *Server) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		sess, err := s.svc.Auth.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if sess == nil {
			clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess)))
	})
}

// requireUser lets only logged-in users through. Browsers are sent to the
// login page; API clients get 401.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).Authenticated() {
			s.unauthenticated(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin lets only superusers through.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if !sess.Authenticated() {
			s.unauthenticated(w, r)
			return
		}
		if !sess.Superuser() {
			s.fail(w, r, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) unauthenticated(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet && !view.WantsJSON(r) {
		http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
		return
	}
	s.fail(w, r, domain.ErrUnauthorized)
}

// viewSession is the session data merged into every view context.
func viewSession(r *http.Request) map[string]any {
	return SessionFromContext(r.Context()).ViewData()
}

func (s *Server) setSessionCookie(w http.ResponseWriter, sess domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// safeNext returns next if it is a local path, otherwise fallback.
func safeNext(next, fallback string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	return next
}
