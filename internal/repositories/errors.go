package repositories

import "errors"

// ErrDuplicateKey is returned by Create when a unique index rejects the row.
// Services treat it as the conflict signal for the uniqueness invariants.
var ErrDuplicateKey = errors.New("duplicate key")
