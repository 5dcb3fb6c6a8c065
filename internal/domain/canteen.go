// Package domain contains the core data types for the campus canteen backend.
// This package has no external dependencies and is imported by every other
// internal package (listing, repo, service, handler).
package domain

import "time"

// Canteen is a dining hall on campus. It is the top-level aggregate;
// windows belong to a canteen and dishes belong to a window.
type Canteen struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=100"`
	Location  string    `json:"location,omitempty" db:"location" validate:"max=200"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Window is a serving counter inside a canteen.
type Window struct {
	ID        int64     `json:"id" db:"id"`
	CanteenID int64     `json:"canteen_id" db:"canteen_id" validate:"gt=0"`
	Name      string    `json:"name" db:"name" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
