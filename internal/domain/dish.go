package domain

import "time"

// Dish is a menu item served at a window. PriceCents avoids floating point
// money; the view layer formats it.
type Dish struct {
	ID          int64     `json:"id" db:"id"`
	WindowID    int64     `json:"window_id" db:"window_id" validate:"gt=0"`
	Name        string    `json:"name" db:"name" validate:"required,max=100"`
	PriceCents  int64     `json:"price_cents" db:"price_cents" validate:"gte=0"`
	Description string    `json:"description,omitempty" db:"description" validate:"max=1000"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DishFilter narrows a dish listing. Zero values impose no constraint.
type DishFilter struct {
	NamePrefix string
	CanteenID  *int64
	WindowID   *int64
	TagID      *int64
}
