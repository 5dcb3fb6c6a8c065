package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
)

// ExportRepo reads the denormalized menu used by the export endpoint.
type ExportRepo interface {
	// MenuRows returns one row per dish, plus one row per window without
	// dishes, ordered by canteen, window and dish id.
	MenuRows(ctx context.Context) ([]domain.MenuExportRow, error)
}

type pgExportRepo struct {
	db db
}

// NewExportRepo constructs an ExportRepo backed by the provided db connection.
func NewExportRepo(db db) ExportRepo {
	return &pgExportRepo{db: db}
}

func (r *pgExportRepo) MenuRows(ctx context.Context) ([]domain.MenuExportRow, error) {
	const q = `
		SELECT c.id AS canteen_id,
		       c.name AS canteen_name,
		       w.id AS window_id,
		       w.name AS window_name,
		       COALESCE(d.id, 0) AS dish_id,
		       COALESCE(d.name, '') AS dish_name,
		       COALESCE(d.price_cents, 0) AS price_cents,
		       COALESCE(
		           ARRAY(SELECT t.name FROM dish_tags dt JOIN tags t ON t.id = dt.tag_id
		                 WHERE dt.dish_id = d.id ORDER BY t.name),
		           '{}'
		       ) AS tags
		FROM canteens c
		JOIN windows w ON w.canteen_id = c.id
		LEFT JOIN dishes d ON d.window_id = w.id
		ORDER BY c.id, w.id, d.id NULLS FIRST`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ExportRepo.MenuRows: %w", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MenuExportRow])
	if err != nil {
		return nil, fmt.Errorf("repo.ExportRepo.MenuRows: %w", err)
	}
	if out == nil {
		out = []domain.MenuExportRow{}
	}
	return out, nil
}
