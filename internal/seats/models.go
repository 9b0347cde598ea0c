package seats

import (
	"time"

	"cinebook/internal/catalog"

	"github.com/google/uuid"
)

// Seat defines one physical seat in an auditorium. A seat carries no
// availability state of its own; availability only exists relative to a
// showtime and is derived from hold and booking-item rows.
type Seat struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuditoriumID  uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_auditorium_seat" json:"auditorium_id"`
	SeatVariantID uuid.UUID `gorm:"type:uuid;not null" json:"seat_variant_id"`
	Row           string    `gorm:"not null;uniqueIndex:idx_auditorium_seat" json:"row"`
	Number        int       `gorm:"not null;uniqueIndex:idx_auditorium_seat" json:"number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Auditorium *catalog.Auditorium  `json:"auditorium,omitempty" gorm:"foreignKey:AuditoriumID;constraint:OnDelete:CASCADE;"`
	Variant    *catalog.SeatVariant `json:"variant,omitempty" gorm:"foreignKey:SeatVariantID;constraint:OnDelete:RESTRICT;"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// SeatStatus is the derived availability of a seat for one showtime
type SeatStatus string

const (
	StatusAvailable SeatStatus = "AVAILABLE"
	StatusHeld      SeatStatus = "HELD"
	StatusBooked    SeatStatus = "BOOKED"
)
