package holds

import (
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/seats"
	"cinebook/internal/users"

	"github.com/google/uuid"
)

// SeatHold is a time-boxed reservation of one seat for one showtime by
// one user. A hold is destroyed by exactly one of: explicit release,
// expiry sweep, or consumption into a booking item. The unique index on
// (seat_id, show_time_id) backs the at-most-one-active-hold invariant.
type SeatHold struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SeatID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hold_seat_showtime" json:"seat_id"`
	ShowTimeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hold_seat_showtime;column:show_time_id" json:"show_time_id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ExpiresAt  time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Seat     *seats.Seat       `json:"seat,omitempty" gorm:"foreignKey:SeatID;constraint:OnDelete:CASCADE;"`
	ShowTime *catalog.ShowTime `json:"show_time,omitempty" gorm:"foreignKey:ShowTimeID;constraint:OnDelete:CASCADE;"`
	User     *users.User       `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for SeatHold
func (SeatHold) TableName() string {
	return "seat_holds"
}

// IsExpired reports whether the hold's TTL has elapsed at now
func (h *SeatHold) IsExpired(now time.Time) bool {
	return h.ExpiresAt.Before(now)
}
