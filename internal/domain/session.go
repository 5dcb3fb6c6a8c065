package domain

import "time"

// Session is the server-side state behind a login cookie. The recognized
// fields are fixed; callers read them through the accessor methods.
type Session struct {
	ID          string
	UserID      int64
	Username    string
	IsSuperuser bool
	Visits      int
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Authenticated reports whether the session belongs to a logged-in user.
// A nil session is anonymous.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// Superuser reports whether the session may use the admin surface.
func (s *Session) Superuser() bool {
	return s.Authenticated() && s.IsSuperuser
}

// ViewData returns the session attributes exposed to templates.
// Anonymous sessions yield an empty map.
func (s *Session) ViewData() map[string]any {
	if !s.Authenticated() {
		return map[string]any{}
	}
	return map[string]any{
		"user_id":      s.UserID,
		"username":     s.Username,
		"is_superuser": s.IsSuperuser,
		"visits":       s.Visits,
	}
}
