package catalog

import "errors"

var (
	// ErrShowtimeNotFound is returned when a showtime id does not resolve
	ErrShowtimeNotFound = errors.New("showtime not found")
	// ErrFilmNotFound is returned when a film id does not resolve
	ErrFilmNotFound = errors.New("film not found")
)
