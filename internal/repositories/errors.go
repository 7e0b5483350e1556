package repositories

import "errors"

// ErrNotFound is returned when the requested entity does not exist in the
// backing store, regardless of which store holds it.
var ErrNotFound = errors.New("record not found")
