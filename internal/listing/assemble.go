package listing

// Assemble merges a page of rows into a view context. Rows go under key,
// the navigation block under "pagination" (left out when there are no
// pages) and the row count under "total_items". Keys from base are written
// first, extra last; a key is never overwritten once set.
func Assemble[T any](base map[string]any, key string, page PageResult[T], extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra)+3)
	setOnce := func(k string, v any) {
		if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	for k, v := range base {
		setOnce(k, v)
	}
	rows := page.Rows
	if rows == nil {
		rows = []T{}
	}
	setOnce(key, rows)
	if page.Pagination != nil {
		setOnce("pagination", page.Pagination)
	}
	setOnce("total_items", page.TotalItems)
	for k, v := range extra {
		setOnce(k, v)
	}
	return out
}
