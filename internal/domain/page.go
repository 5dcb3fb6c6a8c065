package domain

import "fmt"

// DefaultPageSize is the fixed number of rows shown on every listing page.
const DefaultPageSize = 10

// PageRequest carries the requested page from the HTTP layer to the repo layer.
// Page is 1-indexed; Size is always positive.
type PageRequest struct {
	// Page is the current page number, starting at 1.
	Page int
	// Size is the maximum number of rows to return.
	Size int
}

// NewPageRequest builds a PageRequest from an optional page number.
// A nil page means the first page. Page numbers below 1 are rejected with
// ErrBadRequest rather than clamped.
func NewPageRequest(page *int) (PageRequest, error) {
	p := PageRequest{Page: 1, Size: DefaultPageSize}
	if page == nil {
		return p, nil
	}
	if *page < 1 {
		return PageRequest{}, fmt.Errorf("%w: page must be at least 1, got %d", ErrBadRequest, *page)
	}
	p.Page = *page
	return p, nil
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}
