package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end time before start time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrInvalidDate is returned when a calendar date cannot be parsed or a date
// span is malformed (zero value, end before start). The reservation writer
// wraps it in ErrValidation.
var ErrInvalidDate = errors.New("invalid date")

// ErrUnauthenticated is returned when an operation requires a current user and
// none could be resolved from the request.
// Handlers should map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrConflict is returned when a requested reservation overlaps an existing
// reservation of the same listing.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrPersistence marks a storage-layer failure. Its details are logged, never
// returned to the client. Handlers should map this to HTTP 500.
var ErrPersistence = errors.New("persistence error")
