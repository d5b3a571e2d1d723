package port

import "errors"

var (
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRunNotFound is returned when a campaign run does not exist.
	ErrRunNotFound = errors.New("campaign run not found")
	// ErrRunCancelled is returned when a simulation is cancelled before all
	// trials complete. Its partial tallies are discarded.
	ErrRunCancelled = errors.New("simulation cancelled")
)
