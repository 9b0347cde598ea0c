package bookings

import (
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/seats"
	"cinebook/internal/users"

	"github.com/google/uuid"
)

// Booking is the order-level record. Items carry the per-seat detail.
type Booking struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	TotalPrice float64   `gorm:"not null;default:0" json:"total_price"`
	Status     Status    `gorm:"type:varchar(20);check:status IN ('PENDING', 'CONFIRMED', 'CANCELLED');default:'PENDING'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Items []BookingItem `json:"items,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	User  *users.User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingItem is one sold seat for one showtime. Price is a snapshot taken
// at materialization time and never recomputed. The unique index over
// (seat_id, show_time_id) is the hard stop against double-selling a seat.
type BookingItem struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;index;not null" json:"booking_id"`
	SeatID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_item_seat_showtime" json:"seat_id"`
	ShowTimeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_item_seat_showtime;column:show_time_id" json:"show_time_id"`
	Price      float64   `gorm:"not null" json:"price"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Booking  *Booking          `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	Seat     *seats.Seat       `json:"seat,omitempty" gorm:"foreignKey:SeatID"`
	ShowTime *catalog.ShowTime `json:"show_time,omitempty" gorm:"foreignKey:ShowTimeID"`
}

func (BookingItem) TableName() string {
	return "booking_items"
}
