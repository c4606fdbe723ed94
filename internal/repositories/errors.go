package repositories

import "errors"

// ErrNotFound is wrapped by FindOne when no row has the requested id.
var ErrNotFound = errors.New("record not found")
