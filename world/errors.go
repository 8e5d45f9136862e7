package world

import "errors"

// ErrNotFound is returned when an entity or property a query needs does
// not exist in the world.
var ErrNotFound = errors.New("entity not found")
