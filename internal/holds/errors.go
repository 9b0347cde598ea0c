package holds

import "fmt"

// Conflict reasons
const (
	ReasonHeld   = "held"
	ReasonBooked = "booked"
)

// ConflictError reports the first seat of a batch that is not available
// for the requested showtime. A batch with any conflicting seat creates
// no holds at all.
type ConflictError struct {
	SeatID    string
	SeatLabel string
	Reason    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Seat %s is already %s for this showtime", e.SeatLabel, e.Reason)
}
