package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// WindowRepo defines the persistence operations for Windows.
type WindowRepo interface {
	// Create returns domain.ErrConflict if the canteen is missing or the
	// name is already used in that canteen.
	Create(ctx context.Context, w domain.Window) (domain.Window, error)
	GetByID(ctx context.Context, id int64) (domain.Window, error)

	// ListByCanteen returns one page of the canteen's windows ordered by id.
	ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Window], error)

	// Update renames a window. Returns domain.ErrNotFound if missing.
	Update(ctx context.Context, w domain.Window) (domain.Window, error)

	// Delete returns domain.ErrConflict while dishes remain.
	Delete(ctx context.Context, id int64) error
}

type pgWindowRepo struct {
	db db
}

// NewWindowRepo constructs a WindowRepo backed by the provided db connection.
func NewWindowRepo(db db) WindowRepo {
	return &pgWindowRepo{db: db}
}

const windowColumns = "id, canteen_id, name, created_at"

var windowSource = listing.Source{
	Name:    "windows",
	Columns: windowColumns,
	From:    "windows",
	OrderBy: "id ASC",
}

func (r *pgWindowRepo) Create(ctx context.Context, w domain.Window) (domain.Window, error) {
	const q = `
		INSERT INTO windows (canteen_id, name)
		VALUES (@canteen_id, @name)
		RETURNING ` + windowColumns

	out, err := getOne[domain.Window](ctx, r.db, q, pgx.NamedArgs{"canteen_id": w.CanteenID, "name": w.Name})
	if err != nil {
		return domain.Window{}, fmt.Errorf("repo.WindowRepo.Create: %w", err)
	}
	return out, nil
}

func (r *pgWindowRepo) GetByID(ctx context.Context, id int64) (domain.Window, error) {
	const q = `SELECT ` + windowColumns + ` FROM windows WHERE id = @id`

	out, err := getOne[domain.Window](ctx, r.db, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Window{}, fmt.Errorf("repo.WindowRepo.GetByID: %w", err)
	}
	return out, nil
}

func (r *pgWindowRepo) ListByCanteen(ctx context.Context, canteenID int64, p domain.PageRequest) (listing.PageResult[domain.Window], error) {
	res, err := listing.Fetch[domain.Window](ctx, r.db, windowSource,
		listing.Criteria{listing.EqualID("canteen_id", &canteenID)}, p)
	if err != nil {
		return res, fmt.Errorf("repo.WindowRepo.ListByCanteen: %w", err)
	}
	return res, nil
}

func (r *pgWindowRepo) Update(ctx context.Context, w domain.Window) (domain.Window, error) {
	const q = `
		UPDATE windows SET name = @name
		WHERE id = @id
		RETURNING ` + windowColumns

	out, err := getOne[domain.Window](ctx, r.db, q, pgx.NamedArgs{"id": w.ID, "name": w.Name})
	if err != nil {
		return domain.Window{}, fmt.Errorf("repo.WindowRepo.Update: %w", err)
	}
	return out, nil
}

func (r *pgWindowRepo) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, r.db, `DELETE FROM windows WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.WindowRepo.Delete: %w", err)
	}
	return nil
}
