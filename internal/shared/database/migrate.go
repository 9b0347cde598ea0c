package database

import (
	"cinebook/internal/bookings"
	"cinebook/internal/catalog"
	"cinebook/internal/holds"
	"cinebook/internal/payments"
	"cinebook/internal/seats"
	"cinebook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&catalog.Film{},
		&catalog.Address{},
		&catalog.Theater{},
		&catalog.Auditorium{},
		&catalog.SeatVariant{},
		&catalog.ShowTime{},
		&seats.Seat{},
		&holds.SeatHold{},
		&bookings.Booking{},
		&bookings.BookingItem{},
		&payments.Payment{},
	)
}
