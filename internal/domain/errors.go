package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the catalog or the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing destination, non-positive traveler count). The wrapped
// message names the offending field. Handlers should map this to HTTP 422.
var ErrValidation = errors.New("validation error")

// ErrInsufficientCatalog is returned by the itinerary generator when the
// injected catalog contains no attractions at all. It is fatal to that
// generation call only; the catalog itself is never mutated.
var ErrInsufficientCatalog = errors.New("insufficient catalog")

// ErrPersistence is returned by the persistence gateway when the underlying
// store fails to read or write. The operation is treated as failed; callers
// decide whether to retry. Handlers should map this to HTTP 500.
var ErrPersistence = errors.New("persistence error")
