package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// Create returns domain.ErrConflict if the username is taken.
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	ListPaged(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error)
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = "id, username, password_hash, is_superuser, created_at"

var userSource = listing.Source{
	Name:    "users",
	Columns: userColumns,
	From:    "users",
	OrderBy: "id ASC",
}

func (r *pgUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (username, password_hash, is_superuser)
		VALUES (@username, @password_hash, @is_superuser)
		RETURNING ` + userColumns

	out, err := getOne[domain.User](ctx, r.db, q, pgx.NamedArgs{
		"username":      u.Username,
		"password_hash": u.PasswordHash,
		"is_superuser":  u.IsSuperuser,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return out, nil
}

func (r *pgUserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE username = @username`

	out, err := getOne[domain.User](ctx, r.db, q, pgx.NamedArgs{"username": username})
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByUsername: %w", err)
	}
	return out, nil
}

func (r *pgUserRepo) ListPaged(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.User], error) {
	res, err := listing.Fetch[domain.User](ctx, r.db, userSource, nil, p)
	if err != nil {
		return res, fmt.Errorf("repo.UserRepo.ListPaged: %w", err)
	}
	return res, nil
}
