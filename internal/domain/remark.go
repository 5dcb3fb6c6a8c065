package domain

import "time"

// Remark is a user's rating of a dish with an optional comment.
// Username is denormalized from users at read time for display.
type Remark struct {
	ID        int64     `json:"id" db:"id"`
	DishID    int64     `json:"dish_id" db:"dish_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Rating    int       `json:"rating" db:"rating" validate:"min=1,max=5"`
	Content   string    `json:"content,omitempty" db:"content" validate:"max=500"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MinRating and MaxRating bound Remark.Rating.
const (
	MinRating = 1
	MaxRating = 5
)
