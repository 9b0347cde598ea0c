package holds

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cinebook/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// CreateHolds runs the whole lock -> check -> insert sequence in one
	// transaction; holds become visible only after the locks commit.
	CreateHolds(ctx context.Context, userID, showtimeID uuid.UUID, seatIDs []uuid.UUID, ttl time.Duration) ([]SeatHold, error)

	GetByUserID(ctx context.Context, userID uuid.UUID) ([]SeatHold, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpired bulk-deletes holds whose TTL elapsed before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type repository struct {
	lockStore *seats.LockStore
	checker   ConflictChecker
}

func NewRepository(lockStore *seats.LockStore) Repository {
	return &repository{lockStore: lockStore}
}

func (r *repository) CreateHolds(ctx context.Context, userID, showtimeID uuid.UUID, seatIDs []uuid.UUID, ttl time.Duration) ([]SeatHold, error) {
	var created []SeatHold

	err := r.lockStore.InTransaction(ctx, func(tx *gorm.DB) error {
		lockedSeats, err := r.lockStore.LockSeats(tx, seatIDs)
		if err != nil {
			return err
		}

		now := time.Now()

		// Purge expired holds on the locked seats so a dead hold awaiting
		// the sweeper never blocks a new one (or the unique index).
		if err := tx.
			Where("seat_id IN ? AND show_time_id = ? AND expires_at < ?", seatIDs, showtimeID, now).
			Delete(&SeatHold{}).Error; err != nil {
			return fmt.Errorf("failed to purge expired holds: %w", err)
		}

		// First conflict aborts the entire batch
		for i := range lockedSeats {
			seat := &lockedSeats[i]

			isHeld, err := r.checker.ExistsActiveHold(tx, seat.ID, showtimeID)
			if err != nil {
				return fmt.Errorf("failed to check active holds: %w", err)
			}
			if isHeld {
				return &ConflictError{SeatID: seat.ID.String(), SeatLabel: seatLabel(seat), Reason: ReasonHeld}
			}

			isBooked, err := r.checker.ExistsBooked(tx, seat.ID, showtimeID)
			if err != nil {
				return fmt.Errorf("failed to check booking items: %w", err)
			}
			if isBooked {
				return &ConflictError{SeatID: seat.ID.String(), SeatLabel: seatLabel(seat), Reason: ReasonBooked}
			}
		}

		expiresAt := now.Add(ttl)
		created = make([]SeatHold, 0, len(lockedSeats))
		for _, seat := range lockedSeats {
			created = append(created, SeatHold{
				SeatID:     seat.ID,
				ShowTimeID: showtimeID,
				UserID:     userID,
				ExpiresAt:  expiresAt,
			})
		}

		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create seat holds: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]SeatHold, error) {
	var userHolds []SeatHold
	err := r.lockStore.DB().WithContext(ctx).
		Preload("Seat.Variant").
		Preload("ShowTime.Film").
		Where("user_id = ?", userID).
		Find(&userHolds).Error
	return userHolds, err
}

func (r *repository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.lockStore.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&SeatHold{})
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.lockStore.DB().WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&SeatHold{})
	return result.RowsAffected, result.Error
}

// seatLabel renders a seat as shown to users, e.g. A12
func seatLabel(seat *seats.Seat) string {
	return seat.Row + strconv.Itoa(seat.Number)
}
