package app

import "errors"

// Sentinel kinds for service boundary errors.
var (
	ErrInvalidFreelancerID = errors.New("freelancer id must be a positive integer")
	ErrNoStore             = errors.New("no record store configured")
)
