package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, malformed area key).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write would violate a uniqueness rule
// (duplicate cast SNS link, duplicate area key). No row is written.
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("conflict")

// ErrInUse is returned when an area label cannot be deleted because at least
// one cast still references its key. Nothing is deleted.
var ErrInUse = errors.New("in use")
