package repository

import "errors"

// ErrNotFound is wrapped by repository lookups when no row matches.
var ErrNotFound = errors.New("not found")
