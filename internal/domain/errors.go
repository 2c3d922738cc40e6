package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// person, preference, listing or tag does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails construction rules
// (e.g. blank phone, inverted price range, listing with two number kinds).
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an entity with the same identity already
// exists: a person with the same phone, or a listing at the same address.
var ErrConflict = errors.New("conflict")
