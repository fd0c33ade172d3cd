package assessment

import "errors"

// Sentinel kinds for assessment construction errors.
var (
	ErrInvalidInput = errors.New("assessment requires exactly one freelancer row")
)
