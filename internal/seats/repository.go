package seats

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetSeatByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetSeatsByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error)
	GetSeatsByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]Seat, error)

	// Projection inputs for derived availability
	GetHeldSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error)
	GetBookedSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetSeatByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).Preload("Variant").First(&seat, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetSeatsByAuditoriumID(ctx context.Context, auditoriumID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Preload("Variant").
		Where("auditorium_id = ?", auditoriumID).
		Order("row ASC, number ASC").
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetSeatsByIDs(ctx context.Context, seatIDs []uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Preload("Variant").
		Where("id IN ?", seatIDs).
		Find(&seats).Error
	return seats, err
}

// GetHeldSeatIDs returns the seat ids with a live hold for the showtime.
// Expired rows awaiting the sweeper do not count. The seat_holds table is
// queried by name to keep this package below the holds package.
func (r *repository) GetHeldSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	var seatIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("seat_holds").
		Where("show_time_id = ? AND expires_at >= ?", showtimeID, time.Now()).
		Pluck("seat_id", &seatIDs).Error
	return seatIDs, err
}

// GetBookedSeatIDs returns the seat ids with a booking item for the showtime
func (r *repository) GetBookedSeatIDs(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	var seatIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("booking_items").
		Where("show_time_id = ?", showtimeID).
		Pluck("seat_id", &seatIDs).Error
	return seatIDs, err
}
