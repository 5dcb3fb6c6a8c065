package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
	"github.com/campuscanteen/backend/internal/repo"
)

// MinPasswordLen is the shortest password Register accepts.
const MinPasswordLen = 6

// bcrypt only looks at the first 72 bytes.
const maxPasswordLen = 72

// AuthService handles accounts and login sessions.
type AuthService struct {
	users    repo.UserRepo
	sessions repo.SessionRepo
	ttl      time.Duration
	cost     int
	now      func() time.Time
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// WithHashCost sets the bcrypt cost used by Register.
func WithHashCost(cost int) AuthOption {
	return func(s *AuthService) { s.cost = cost }
}

// NewAuthService constructs an AuthService whose sessions live for ttl.
func NewAuthService(users repo.UserRepo, sessions repo.SessionRepo, ttl time.Duration, opts ...AuthOption) *AuthService {
	s := &AuthService{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Register creates a regular (non-superuser) account.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.newUser(username, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return s.users.Create(ctx, u)
}

// newUser validates the credentials and hashes the password.
func (s *AuthService) newUser(username, password string) (domain.User, error) {
	u := domain.User{Username: strings.TrimSpace(username)}
	if err := check(u); err != nil {
		return domain.User{}, err
	}
	if len(password) < MinPasswordLen || len(password) > maxPasswordLen {
		return domain.User{}, fmt.Errorf("%w: password must be %d to %d characters",
			domain.ErrValidation, MinPasswordLen, maxPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash: %w", err)
	}
	u.PasswordHash = string(hash)
	return u, nil
}

// EnsureSuperuser creates a superuser account unless the username is
// already taken. It reports whether an account was created.
func (s *AuthService) EnsureSuperuser(ctx context.Context, username, password string) (bool, error) {
	u, err := s.newUser(username, password)
	if err != nil {
		return false, fmt.Errorf("service.AuthService.EnsureSuperuser: %w", err)
	}
	u.IsSuperuser = true
	if _, err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("service.AuthService.EnsureSuperuser: %w", err)
	}
	return true, nil
}

// Login checks the credentials and opens a new session.
// Unknown users and wrong passwords both yield domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.Session, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w: invalid username or password", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w: invalid username or password", domain.ErrUnauthorized)
	}

	now := s.now().UTC()
	sess := domain.Session{
		ID:          uuid.NewString(),
		UserID:      u.ID,
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return sess, nil
}

// Logout ends the session. Unknown ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Authenticate resolves a session cookie value, counting the visit.
// It returns nil, nil for a blank, malformed, unknown or expired id;
// only storage failures are errors.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (*domain.Session, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, nil
	}
	sess, err := s.sessions.Touch(ctx, sessionID, s.now().UTC())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	return &sess, nil
}

// PurgeExpired deletes every session that has expired.
func (s *AuthService) PurgeExpired(ctx context.Context) (int64, error) {
	return s.sessions.DeleteExpired(ctx, s.now().UTC())
}

// FindUser looks an account up by name.
func (s *AuthService) FindUser(ctx context.Context, username string) (domain.User, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.FindUser: %w", err)
	}
	return u, nil
}

// ListUsers returns one page of accounts.
func (s *AuthService) ListUsers(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error) {
	return s.users.ListPaged(ctx, p)
}
