package seats

import "errors"

var (
	// ErrSeatsNotFound is returned when not all requested seat ids resolve
	ErrSeatsNotFound = errors.New("some seats not found")
	// ErrUnavailable is returned when lock acquisition keeps failing after
	// the transparent retries are exhausted
	ErrUnavailable = errors.New("seat locking temporarily unavailable")
)
