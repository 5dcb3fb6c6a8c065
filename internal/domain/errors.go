package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, rating out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrBadRequest is returned when a raw request parameter cannot be parsed,
// such as a non-numeric page number or filter id. It is raised before any
// query executes. Handlers should map this to HTTP 400.
var ErrBadRequest = errors.New("bad request")

// ErrConflict is returned when a write collides with existing data: a
// duplicate unique key, or a delete blocked by dependent rows.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrUnauthorized is returned when credentials are wrong or no session exists.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when an authenticated user lacks the superuser flag.
var ErrForbidden = errors.New("forbidden")
