package ranking

import "errors"

// Sentinel kinds for ranking errors.
var (
	ErrInvalidTopN = errors.New("top_n must be a positive integer")
)
