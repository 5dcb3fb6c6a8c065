package domain

import "time"

// Tag is a label that can be attached to dishes ("spicy", "vegetarian").
// Tags are global, not owned by any canteen. Names are unique.
type Tag struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=50"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
