// Package listing implements the shared paginated, filtered listing used by
// every list view: predicate building, the count-then-page query, the page
// number window, and merging the result into a view context.
package listing

// windowRadius is how many neighbouring page numbers are shown on each side
// of the current page.
const windowRadius = 3

// Meta describes the page-number navigation block for one listing page.
type Meta struct {
	Current       int   `json:"current"`
	Total         int   `json:"total"`
	Previous      *int  `json:"previous,omitempty"`
	Next          *int  `json:"next,omitempty"`
	LeftEllipsis  bool  `json:"left_ellipsis"`
	RightEllipsis bool  `json:"right_ellipsis"`
	PagesLeft     []int `json:"pages_left"`
	PagesRight    []int `json:"pages_right"`
}

// TotalPages returns ceil(totalItems / pageSize). It is 0 iff totalItems is 0.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Paginate computes the navigation block for page out of totalItems rows
// split into pages of pageSize. It returns nil when there are no pages.
//
// A page beyond the last one still yields a block, so navigation back to
// real pages keeps working; listed page numbers never exceed the total.
func Paginate(totalItems, page, pageSize int) *Meta {
	total := TotalPages(totalItems, pageSize)
	if total == 0 {
		return nil
	}
	if page < 1 {
		page = 1
	}

	m := &Meta{
		Current:    page,
		Total:      total,
		PagesLeft:  []int{},
		PagesRight: []int{},
	}
	if page > 1 {
		prev := page - 1
		m.Previous = &prev
	}
	if page < total {
		next := page + 1
		m.Next = &next
	}

	// Past the end, the left window is anchored just after the last page.
	lower := min(page, total+1) - windowRadius
	if lower > 2 {
		m.LeftEllipsis = true
	} else {
		lower = 1
	}
	upper := page + windowRadius
	if upper < total-1 {
		m.RightEllipsis = true
	} else {
		upper = total
	}

	for n := lower; n < page && n <= total; n++ {
		m.PagesLeft = append(m.PagesLeft, n)
	}
	for n := page + 1; n <= upper; n++ {
		m.PagesRight = append(m.PagesRight, n)
	}
	return m
}
