package bookings

import "errors"

var (
	// ErrNoHoldsAvailable means the user has no active seat holds to
	// turn into a booking (never held, expired, or already consumed).
	ErrNoHoldsAvailable = errors.New("no seat holds available to book")

	ErrBookingNotFound = errors.New("booking not found")
)
