package listing

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/campuscanteen/backend/internal/domain"
)

// Beginner is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx. A pgx.Tx
// begins a savepoint, so repo tests can run listings inside a rolled-back tx.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Source describes where the rows of one listing type come from.
type Source struct {
	// Name labels errors, e.g. "dishes".
	Name string
	// Columns is the SELECT list; its names must match the `db` tags of the row type.
	Columns string
	// From is the FROM clause, joins included.
	From string
	// OrderBy is a stable, unique ordering, usually the primary key ascending.
	OrderBy string
}

// PageResult is one page of a listing plus the data needed to navigate it.
// Pagination is nil when TotalPages is 0.
type PageResult[T any] struct {
	TotalItems int
	TotalPages int
	Rows       []T
	Pagination *Meta
}

// Fetch counts the rows of src matching criteria, then loads the requested
// page ordered by src.OrderBy. Both queries run in one short-lived
// transaction. When the count is zero the row query is skipped.
//
// Rows are mapped with pgx.RowToStructByName, so T's `db` tags define the schema.
func Fetch[T any](ctx context.Context, db Beginner, src Source, criteria Criteria, req domain.PageRequest) (PageResult[T], error) {
	pred := Build(criteria)
	res := PageResult[T]{Rows: []T{}}

	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		var count int64
		countSQL := "SELECT COUNT(*) FROM " + src.From + " WHERE TRUE" + pred.SQL
		if err := tx.QueryRow(ctx, countSQL, pred.Args...).Scan(&count); err != nil {
			return fmt.Errorf("count: %w", err)
		}
		if count == 0 {
			return nil
		}
		res.TotalItems = int(count)
		res.TotalPages = TotalPages(res.TotalItems, req.Size)
		res.Pagination = Paginate(res.TotalItems, req.Page, req.Size)

		n := len(pred.Args)
		pageSQL := "SELECT " + src.Columns + " FROM " + src.From + " WHERE TRUE" + pred.SQL +
			" ORDER BY " + src.OrderBy +
			" LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
		args := append(append([]any{}, pred.Args...), req.Size, req.Offset())

		rows, err := tx.Query(ctx, pageSQL, args...)
		if err != nil {
			return fmt.Errorf("select: %w", err)
		}
		items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
		if err != nil {
			return fmt.Errorf("collect: %w", err)
		}
		if items != nil {
			res.Rows = items
		}
		return nil
	})
	if err != nil {
		return PageResult[T]{}, fmt.Errorf("listing.Fetch %s: %w", src.Name, err)
	}
	return res, nil
}
