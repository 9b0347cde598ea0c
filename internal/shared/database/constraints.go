package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the database constraints the booking flow
// leans on for correctness. AutoMigrate builds these from model tags
// already; running them explicitly keeps existing databases honest.
func MigrateConstraints(db *gorm.DB) error {
	// At most one active hold per seat per showtime
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_hold_seat_showtime
		ON seat_holds (seat_id, show_time_id);
	`).Error
	if err != nil {
		return err
	}

	// A seat is sold at most once per showtime, no matter how requests
	// interleave above the database
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_item_seat_showtime
		ON booking_items (seat_id, show_time_id);
	`).Error
	if err != nil {
		return err
	}

	// The sweeper scans by expiry
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seat_holds_expires_at
		ON seat_holds (expires_at);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
