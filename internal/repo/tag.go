package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// TagRepo defines the persistence operations for Tags.
type TagRepo interface {
	// Create returns domain.ErrConflict if the name is taken.
	Create(ctx context.Context, name string) (domain.Tag, error)
	GetByID(ctx context.Context, id int64) (domain.Tag, error)

	// ListPaged returns one page of tags whose name starts with prefix,
	// ordered by id. An empty prefix includes every tag.
	ListPaged(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error)

	// ListByDish returns one page of the tags linked to a dish.
	ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error)

	// ListByCanteen returns one page of the tags carried by at least one
	// dish served in the canteen. Each tag appears once.
	ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error)

	Rename(ctx context.Context, id int64, name string) (domain.Tag, error)

	// Delete also unlinks the tag from every dish.
	Delete(ctx context.Context, id int64) error
}

type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

const tagColumns = "id, name, created_at"

var (
	tagSource = listing.Source{
		Name:    "tags",
		Columns: "t.id, t.name, t.created_at",
		From:    "tags t",
		OrderBy: "t.id ASC",
	}
	dishTagSource = listing.Source{
		Name:    "tags by dish",
		Columns: tagSource.Columns,
		From:    "tags t JOIN dish_tags dt ON dt.tag_id = t.id",
		OrderBy: tagSource.OrderBy,
	}
	// The DISTINCT pairs keep a tag used by several dishes of one canteen
	// to a single row.
	canteenTagSource = listing.Source{
		Name:    "tags by canteen",
		Columns: tagSource.Columns,
		From: `tags t JOIN (
			SELECT DISTINCT dt.tag_id, w.canteen_id
			FROM dish_tags dt
			JOIN dishes d ON d.id = dt.dish_id
			JOIN windows w ON w.id = d.window_id
		) ct ON ct.tag_id = t.id`,
		OrderBy: tagSource.OrderBy,
	}
)

func (r *pgTagRepo) Create(ctx context.Context, name string) (domain.Tag, error) {
	const q = `INSERT INTO tags (name) VALUES (@name) RETURNING ` + tagColumns

	out, err := getOne[domain.Tag](ctx, r.db, q, pgx.NamedArgs{"name": name})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Create: %w", err)
	}
	return out, nil
}

func (r *pgTagRepo) GetByID(ctx context.Context, id int64) (domain.Tag, error) {
	const q = `SELECT ` + tagColumns + ` FROM tags WHERE id = @id`

	out, err := getOne[domain.Tag](ctx, r.db, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetByID: %w", err)
	}
	return out, nil
}

func (r *pgTagRepo) ListPaged(ctx context.Context, prefix string, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	res, err := listing.Fetch[domain.Tag](ctx, r.db, tagSource,
		listing.Criteria{listing.HasPrefix("t.name", prefix)}, p)
	if err != nil {
		return res, fmt.Errorf("repo.TagRepo.ListPaged: %w", err)
	}
	return res, nil
}

func (r *pgTagRepo) ListByDish(ctx context.Context, dishID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	res, err := listing.Fetch[domain.Tag](ctx, r.db, dishTagSource,
		listing.Criteria{listing.EqualID("dt.dish_id", &dishID)}, p)
	if err != nil {
		return res, fmt.Errorf("repo.TagRepo.ListByDish: %w", err)
	}
	return res, nil
}

func (r *pgTagRepo) ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Tag], error) {
	res, err := listing.Fetch[domain.Tag](ctx, r.db, canteenTagSource,
		listing.Criteria{listing.EqualID("ct.canteen_id", &canteenID)}, p)
	if err != nil {
		return res, fmt.Errorf("repo.TagRepo.ListByCanteen: %w", err)
	}
	return res, nil
}

func (r *pgTagRepo) Rename(ctx context.Context, id int64, name string) (domain.Tag, error) {
	const q = `UPDATE tags SET name = @name WHERE id = @id RETURNING ` + tagColumns

	out, err := getOne[domain.Tag](ctx, r.db, q, pgx.NamedArgs{"id": id, "name": name})
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.Rename: %w", err)
	}
	return out, nil
}

func (r *pgTagRepo) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, r.db, `DELETE FROM tags WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.TagRepo.Delete: %w", err)
	}
	return nil
}
