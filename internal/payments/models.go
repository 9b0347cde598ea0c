package payments

import (
	"time"

	"cinebook/internal/bookings"

	"github.com/google/uuid"
)

// Payment tracks the settlement of one booking. TransactionRef is the
// opaque reference handed to the gateway; callbacks resolve through it.
type Payment struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	BookingID       uuid.UUID  `gorm:"type:uuid;index;not null" json:"booking_id"`
	Method          Method     `gorm:"type:varchar(20);check:method IN ('CASH', 'VNPAY');not null" json:"method"`
	Status          Status     `gorm:"type:varchar(20);check:status IN ('UNPAID', 'PAID', 'FAILED');default:'UNPAID'" json:"status"`
	TransactionRef  string     `gorm:"uniqueIndex;not null" json:"transaction_ref"`
	TransactionTime *time.Time `json:"transaction_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relationships
	Booking *bookings.Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
}

func (Payment) TableName() string {
	return "payments"
}
