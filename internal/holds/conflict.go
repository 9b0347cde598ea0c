package holds

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictChecker answers whether a (seat, showtime) pair is already
// taken. Both checks must run on a transaction that already holds the
// seat's row lock, otherwise they reintroduce the check-then-act race.
type ConflictChecker struct{}

// ExistsActiveHold reports whether any hold row exists for the pair.
// Expired rows are purged by the caller before this check, so presence
// means an active hold.
func (ConflictChecker) ExistsActiveHold(tx *gorm.DB, seatID, showtimeID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&SeatHold{}).
		Where("seat_id = ? AND show_time_id = ?", seatID, showtimeID).
		Count(&count).Error
	return count > 0, err
}

// ExistsBooked reports whether a booking item exists for the pair. The
// booking_items table is queried by name; the bookings package sits
// above this one.
func (ConflictChecker) ExistsBooked(tx *gorm.DB, seatID, showtimeID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Table("booking_items").
		Where("seat_id = ? AND show_time_id = ?", seatID, showtimeID).
		Count(&count).Error
	return count > 0, err
}
