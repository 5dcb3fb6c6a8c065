package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// DishRepo defines the persistence operations for Dishes and the dish_tags join table.
type DishRepo interface {
	// Create returns domain.ErrConflict if the window does not exist.
	Create(ctx context.Context, d domain.Dish) (domain.Dish, error)
	GetByID(ctx context.Context, id int64) (domain.Dish, error)

	// ListPaged returns one page of dishes matching f, ordered by id.
	// A CanteenID narrows to dishes served at any window of that canteen.
	ListPaged(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error)

	// Update overwrites the mutable fields of a dish, including its window.
	Update(ctx context.Context, d domain.Dish) (domain.Dish, error)
	Delete(ctx context.Context, id int64) error

	// AddTag links a tag to a dish. Idempotent; no error if already linked.
	// Returns domain.ErrConflict if either side does not exist.
	AddTag(ctx context.Context, dishID, tagID int64) error

	// RemoveTag unlinks a tag. Returns domain.ErrNotFound if it was not linked.
	RemoveTag(ctx context.Context, dishID, tagID int64) error
}

type pgDishRepo struct {
	db db
}

// NewDishRepo constructs a DishRepo backed by the provided db connection.
func NewDishRepo(db db) DishRepo {
	return &pgDishRepo{db: db}
}

const dishColumns = "id, window_id, name, price_cents, description, created_at"

var dishSource = listing.Source{
	Name:    "dishes",
	Columns: "d.id, d.window_id, d.name, d.price_cents, d.description, d.created_at",
	From:    "dishes d",
	OrderBy: "d.id ASC",
}

// dishSourceFor adds the joins the filter's criteria refer to. The
// (dish_id, tag_id) key keeps one row per dish once the tag criterion is
// applied, and a dish has exactly one window.
func dishSourceFor(f domain.DishFilter) listing.Source {
	src := dishSource
	if f.CanteenID != nil {
		src.From += " JOIN windows w ON w.id = d.window_id"
	}
	if f.TagID != nil {
		src.From += " JOIN dish_tags dt ON dt.dish_id = d.id"
	}
	return src
}

func (r *pgDishRepo) Create(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	const q = `
		INSERT INTO dishes (window_id, name, price_cents, description)
		VALUES (@window_id, @name, @price_cents, @description)
		RETURNING ` + dishColumns

	out, err := getOne[domain.Dish](ctx, r.db, q, dishArgs(d))
	if err != nil {
		return domain.Dish{}, fmt.Errorf("repo.DishRepo.Create: %w", err)
	}
	return out, nil
}

func (r *pgDishRepo) GetByID(ctx context.Context, id int64) (domain.Dish, error) {
	const q = `SELECT ` + dishColumns + ` FROM dishes WHERE id = @id`

	out, err := getOne[domain.Dish](ctx, r.db, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Dish{}, fmt.Errorf("repo.DishRepo.GetByID: %w", err)
	}
	return out, nil
}

func (r *pgDishRepo) ListPaged(ctx context.Context, f domain.DishFilter, p domain.PageRequest) (listing.PageResult[domain.Dish], error) {
	src := dishSourceFor(f)
	criteria := listing.Criteria{
		listing.HasPrefix("d.name", f.NamePrefix),
		listing.EqualID("w.canteen_id", f.CanteenID),
		listing.EqualID("d.window_id", f.WindowID),
		listing.EqualID("dt.tag_id", f.TagID),
	}

	res, err := listing.Fetch[domain.Dish](ctx, r.db, src, criteria, p)
	if err != nil {
		return res, fmt.Errorf("repo.DishRepo.ListPaged: %w", err)
	}
	return res, nil
}

func (r *pgDishRepo) Update(ctx context.Context, d domain.Dish) (domain.Dish, error) {
	const q = `
		UPDATE dishes
		SET window_id   = @window_id,
		    name        = @name,
		    price_cents = @price_cents,
		    description = @description
		WHERE id = @id
		RETURNING ` + dishColumns

	args := dishArgs(d)
	args["id"] = d.ID
	out, err := getOne[domain.Dish](ctx, r.db, q, args)
	if err != nil {
		return domain.Dish{}, fmt.Errorf("repo.DishRepo.Update: %w", err)
	}
	return out, nil
}

func (r *pgDishRepo) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, r.db, `DELETE FROM dishes WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.DishRepo.Delete: %w", err)
	}
	return nil
}

func (r *pgDishRepo) AddTag(ctx context.Context, dishID, tagID int64) error {
	const q = `
		INSERT INTO dish_tags (dish_id, tag_id)
		VALUES (@dish_id, @tag_id)
		ON CONFLICT (dish_id, tag_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"dish_id": dishID, "tag_id": tagID}); err != nil {
		return fmt.Errorf("repo.DishRepo.AddTag: %w", mapPgError(err))
	}
	return nil
}

func (r *pgDishRepo) RemoveTag(ctx context.Context, dishID, tagID int64) error {
	const q = `DELETE FROM dish_tags WHERE dish_id = @dish_id AND tag_id = @tag_id`

	if err := execOne(ctx, r.db, q, pgx.NamedArgs{"dish_id": dishID, "tag_id": tagID}); err != nil {
		return fmt.Errorf("repo.DishRepo.RemoveTag: %w", err)
	}
	return nil
}

func dishArgs(d domain.Dish) pgx.NamedArgs {
	return pgx.NamedArgs{
		"window_id":   d.WindowID,
		"name":        d.Name,
		"price_cents": d.PriceCents,
		"description": d.Description,
	}
}
