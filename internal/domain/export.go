package domain

// MenuExportRow is a single row in the full-menu export.
// It is a flat, denormalized view: one row per dish, with canteen and window
// fields repeated for every dish. Windows with no dishes yield one row with
// zero values for all dish fields.
//
// Tags holds the names of tags on the dish, ordered alphabetically.
// Callers that need a joined string (e.g. CSV) should join with "|".
type MenuExportRow struct {
	CanteenID   int64  `json:"canteen_id" db:"canteen_id"`
	CanteenName string `json:"canteen_name" db:"canteen_name"`
	WindowID    int64  `json:"window_id" db:"window_id"`
	WindowName  string `json:"window_name" db:"window_name"`

	// Dish fields are zero when the window has no dishes.
	DishID     int64    `json:"dish_id,omitempty" db:"dish_id"`
	DishName   string   `json:"dish_name,omitempty" db:"dish_name"`
	PriceCents int64    `json:"price_cents,omitempty" db:"price_cents"`
	Tags       []string `json:"tags" db:"tags"`
}
