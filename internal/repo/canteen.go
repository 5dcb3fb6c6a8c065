package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
	"github.com/campuscanteen/backend/internal/listing"
)

// CanteenRepo defines the persistence operations for Canteens.
type CanteenRepo interface {
	// Create inserts a new canteen and returns the persisted record.
	// Returns domain.ErrConflict if the name is taken.
	Create(ctx context.Context, c domain.Canteen) (domain.Canteen, error)

	// GetByID returns domain.ErrNotFound if no canteen has that id.
	GetByID(ctx context.Context, id int64) (domain.Canteen, error)

	// ListPaged returns one page of canteens ordered by id.
	ListPaged(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error)

	// Update overwrites name and location. Returns domain.ErrNotFound if missing.
	Update(ctx context.Context, c domain.Canteen) (domain.Canteen, error)

	// Delete removes a canteen. Returns domain.ErrConflict while windows remain.
	Delete(ctx context.Context, id int64) error
}

type pgCanteenRepo struct {
	db db
}

// NewCanteenRepo constructs a CanteenRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCanteenRepo(db db) CanteenRepo {
	return &pgCanteenRepo{db: db}
}

const canteenColumns = "id, name, location, created_at"

var canteenSource = listing.Source{
	Name:    "canteens",
	Columns: canteenColumns,
	From:    "canteens",
	OrderBy: "id ASC",
}

func (r *pgCanteenRepo) Create(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	const q = `
		INSERT INTO canteens (name, location)
		VALUES (@name, @location)
		RETURNING ` + canteenColumns

	out, err := getOne[domain.Canteen](ctx, r.db, q, pgx.NamedArgs{"name": c.Name, "location": c.Location})
	if err != nil {
		return domain.Canteen{}, fmt.Errorf("repo.CanteenRepo.Create: %w", err)
	}
	return out, nil
}

func (r *pgCanteenRepo) GetByID(ctx context.Context, id int64) (domain.Canteen, error) {
	const q = `SELECT ` + canteenColumns + ` FROM canteens WHERE id = @id`

	out, err := getOne[domain.Canteen](ctx, r.db, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Canteen{}, fmt.Errorf("repo.CanteenRepo.GetByID: %w", err)
	}
	return out, nil
}

func (r *pgCanteenRepo) ListPaged(ctx context.Context, p domain.PageRequest) (listing.PageResult[domain.Canteen], error) {
	res, err := listing.Fetch[domain.Canteen](ctx, r.db, canteenSource, nil, p)
	if err != nil {
		return res, fmt.Errorf("repo.CanteenRepo.ListPaged: %w", err)
	}
	return res, nil
}

func (r *pgCanteenRepo) Update(ctx context.Context, c domain.Canteen) (domain.Canteen, error) {
	const q = `
		UPDATE canteens
		SET name     = @name,
		    location = @location
		WHERE id = @id
		RETURNING ` + canteenColumns

	out, err := getOne[domain.Canteen](ctx, r.db, q, pgx.NamedArgs{"id": c.ID, "name": c.Name, "location": c.Location})
	if err != nil {
		return domain.Canteen{}, fmt.Errorf("repo.CanteenRepo.Update: %w", err)
	}
	return out, nil
}

func (r *pgCanteenRepo) Delete(ctx context.Context, id int64) error {
	if err := execOne(ctx, r.db, `DELETE FROM canteens WHERE id = @id`, pgx.NamedArgs{"id": id}); err != nil {
		return fmt.Errorf("repo.CanteenRepo.Delete: %w", err)
	}
	return nil
}
