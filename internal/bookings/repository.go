package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinebook/internal/holds"
	"cinebook/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateBookingWithItems creates the booking and materializes the
	// user's active holds into items in a single transaction. The booking
	// row never becomes visible without its items.
	CreateBookingWithItems(ctx context.Context, userID uuid.UUID) (*Booking, error)

	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status) error

	// DeleteBooking removes the booking; items go with it via cascade,
	// which puts the seats back on sale.
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	lockStore *seats.LockStore
}

func NewRepository(lockStore *seats.LockStore) Repository {
	return &repository{lockStore: lockStore}
}

func (r *repository) CreateBookingWithItems(ctx context.Context, userID uuid.UUID) (*Booking, error) {
	var booking *Booking

	err := r.lockStore.InTransaction(ctx, func(tx *gorm.DB) error {
		now := time.Now()

		booking = &Booking{
			UserID: userID,
			Status: StatusPending,
		}
		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		// Lock the user's live holds so the sweeper and a concurrent
		// materialization cannot consume them mid-flight. A hold the
		// sweeper already deleted is simply not in the result.
		var userHolds []holds.SeatHold
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Seat.Variant").
			Preload("ShowTime.Film").
			Where("user_id = ? AND expires_at >= ?", userID, now).
			Find(&userHolds).Error; err != nil {
			return fmt.Errorf("failed to fetch seat holds: %w", err)
		}

		if len(userHolds) == 0 {
			return ErrNoHoldsAvailable
		}

		items := make([]BookingItem, 0, len(userHolds))
		holdIDs := make([]uuid.UUID, 0, len(userHolds))
		var total float64
		for _, hold := range userHolds {
			price, err := holdPrice(&hold)
			if err != nil {
				return err
			}
			items = append(items, BookingItem{
				BookingID:  booking.ID,
				SeatID:     hold.SeatID,
				ShowTimeID: hold.ShowTimeID,
				Price:      price,
			})
			total += price
			holdIDs = append(holdIDs, hold.ID)
		}

		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to create booking items: %w", err)
		}

		if err := tx.Where("id IN ?", holdIDs).Delete(&holds.SeatHold{}).Error; err != nil {
			return fmt.Errorf("failed to consume seat holds: %w", err)
		}

		if err := tx.Model(booking).Update("total_price", total).Error; err != nil {
			return fmt.Errorf("failed to update booking total: %w", err)
		}

		booking.TotalPrice = total
		booking.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// holdPrice snapshots seat variant base + bonus + film price for one hold
func holdPrice(hold *holds.SeatHold) (float64, error) {
	if hold.Seat == nil || hold.Seat.Variant == nil {
		return 0, fmt.Errorf("seat variant missing for seat %s", hold.SeatID)
	}
	if hold.ShowTime == nil || hold.ShowTime.Film == nil {
		return 0, fmt.Errorf("film missing for showtime %s", hold.ShowTimeID)
	}
	variant := hold.Seat.Variant
	return variant.BasePrice + variant.Bonus + hold.ShowTime.Film.Price, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.lockStore.DB().WithContext(ctx).
		Preload("Items.Seat.Variant").
		Preload("Items.ShowTime.Film").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Booking, int64, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var totalCount int64
	baseQuery := r.lockStore.DB().WithContext(ctx).
		Model(&Booking{}).
		Where("user_id = ?", userID)
	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var userBookings []Booking
	err := baseQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&userBookings).Error
	return userBookings, totalCount, err
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.lockStore.DB().WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return r.lockStore.DB().WithContext(ctx).
		Where("id = ?", id).
		Delete(&Booking{}).Error
}
