package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrNotFound         = errors.New("record not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)
