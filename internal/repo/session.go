package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
)

// SessionRepo stores login sessions. Sessions are looked up by their
// opaque id, which is also the cookie value.
type SessionRepo interface {
	Create(ctx context.Context, s domain.Session) error

	// Touch increments the visit counter of an unexpired session and
	// returns it joined with its user. Returns domain.ErrNotFound if the
	// session is missing or expired at now.
	Touch(ctx context.Context, id string, now time.Time) (domain.Session, error)

	// Delete is idempotent; deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every session expired at now and returns how many.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a SessionRepo backed by the provided db connection.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

func (r *pgSessionRepo) Create(ctx context.Context, s domain.Session) error {
	const q = `
		INSERT INTO sessions (id, user_id, visits, created_at, expires_at)
		VALUES (@id, @user_id, @visits, @created_at, @expires_at)`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":         s.ID,
		"user_id":    s.UserID,
		"visits":     s.Visits,
		"created_at": s.CreatedAt,
		"expires_at": s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("repo.SessionRepo.Create: %w", mapPgError(err))
	}
	return nil
}

func (r *pgSessionRepo) Touch(ctx context.Context, id string, now time.Time) (domain.Session, error) {
	const q = `
		UPDATE sessions s
		SET visits = s.visits + 1
		FROM users u
		WHERE s.id = @id
		  AND s.expires_at > @now
		  AND u.id = s.user_id
		RETURNING s.id, s.user_id, u.username, u.is_superuser, s.visits, s.created_at, s.expires_at`

	var s domain.Session
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "now": now}).
		Scan(&s.ID, &s.UserID, &s.Username, &s.IsSuperuser, &s.Visits, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, fmt.Errorf("repo.SessionRepo.Touch: %w", domain.ErrNotFound)
		}
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Touch: %w", err)
	}
	return s, nil
}

func (r *pgSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", err)
	}
	return nil
}

func (r *pgSessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= @now`, pgx.NamedArgs{"now": now})
	if err != nil {
		return 0, fmt.Errorf("repo.SessionRepo.DeleteExpired: %w", err)
	}
	return tag.RowsAffected(), nil
}
