package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// RemarkRepo defines the persistence operations for Remarks.
type RemarkRepo interface {
	// Create returns domain.ErrConflict if the dish or user does not exist.
	Create(ctx context.Context, rm domain.Remark) (domain.Remark, error)

	// ListByDish returns one page of a dish's remarks, oldest first.
	ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error)

	// AverageRating returns the mean rating of a dish and how many remarks
	// it is based on. The mean is 0 when there are none.
	AverageRating(ctx context.Context, dishID int64) (float64, int64, error)

	Delete(ctx context.Context, id int64) error
}

type pgRemarkRepo struct {
	db db
}

// NewRemarkRepo constructs a RemarkRepo backed by the provided db connection.
func NewRemarkRepo(db db) RemarkRepo {
	return &pgRemarkRepo{db: db}
}

var remarkSource = listing.Source{
	Name:    "remarks",
	Columns: "r.id, r.dish_id, r.user_id, u.username, r.rating, r.content, r.created_at",
	From:    "remarks r JOIN users u ON u.id = r.user_id",
	OrderBy: "r.id ASC",
}

func (r *pgRemarkRepo) Create(ctx context.Context, rm domain.Remark) (domain.Remark, error) {
	const q = `
		WITH ins AS (
			INSERT INTO remarks (dish_id, user_id, rating, content)
			VALUES (@dish_id, @user_id, @rating, @content)
			RETURNING id, dish_id, user_id, rating, content, created_at
		)
		SELECT ins.id, ins.dish_id, ins.user_id, u.username, ins.rating, ins.content, ins.created_at
		FROM ins JOIN users u ON u.id = ins.user_id`

	out, err := getOne[domain.Remark](ctx, r.db, q, pgx.NamedArgs{
		"dish_id": rm.DishID,
		"user_id": rm.UserID,
		"rating":  rm.Rating,
		"content": rm.Content,
	})
	if err != nil {
		return domain.Remark{}, fmt.Errorf("repo.RemarkRepo.Create: %w", err)
	}
	return out, nil
}

func (r *pgRemarkRepo) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Remark], error) {
	res, err := listing.Fetch[domain.Remark](ctx, r.db, remarkSource,
		listing.Criteria{listing.EqualID("r.dish_id", &dishID)}, p)
	if err != nil {
		return res, fmt.Errorf("repo.RemarkRepo.ListByDish: %w", err)
	}
	return res, nil
}

func (r *pgRemarkRepo) AverageRating(ctx context.Context, dishID int64) (float64, int64, error) {
	const q = `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)
		FROM remarks
		WHERE dish_id = @dish_id`

	var (
		avg   float64
		count int64
	)
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"dish_id": dishID}).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("repo.RemarkRepo.AverageRating: %w", err)
	}
	return avg, count, nil
}

func (r *pgRemarkRepo) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, r.db, `DELETE FROM remarks WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.RemarkRepo.Delete: %w", err)
	}
	return nil
}
