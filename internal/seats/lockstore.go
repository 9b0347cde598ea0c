package seats

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockStore serializes all mutation of seat availability. Every write
// path (hold creation, materialization) runs inside InTransaction and
// acquires its row locks through LockSeats, so for a fixed seat the
// check-then-insert sequence is totally ordered.
type LockStore struct {
	db          *gorm.DB
	maxAttempts int
}

// NewLockStore creates a lock store. maxAttempts bounds the transparent
// retries of transactions aborted by deadlock or serialization failure.
func NewLockStore(db *gorm.DB, maxAttempts int) *LockStore {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &LockStore{db: db, maxAttempts: maxAttempts}
}

// DB returns the underlying handle, for callers that need reads outside
// a locking transaction.
func (s *LockStore) DB() *gorm.DB {
	return s.db
}

// InTransaction runs fn inside a transaction. Transactions aborted by
// the database's deadlock or serialization detection are retried with a
// short backoff; business errors are returned as-is on first failure.
func (s *LockStore) InTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err = s.db.WithContext(ctx).Transaction(fn)
		if err == nil || !isLockContention(err) {
			return err
		}
		select {
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// LockSeats acquires a row-level exclusive lock on every requested seat,
// blocking until each lock is granted. Ids are locked in ascending order
// so concurrent multi-seat requests cannot deadlock each other. A count
// mismatch means unknown seat ids and fails the whole call.
func (s *LockStore) LockSeats(tx *gorm.DB, seatIDs []uuid.UUID) ([]Seat, error) {
	sorted := sortSeatIDs(seatIDs)

	var locked []Seat
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Variant").
		Where("id IN ?", sorted).
		Order("id ASC").
		Find(&locked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock seats: %w", err)
	}

	if len(locked) != len(sorted) {
		return nil, ErrSeatsNotFound
	}

	return locked, nil
}

// sortSeatIDs returns a copy of ids in ascending byte order
func sortSeatIDs(ids []uuid.UUID) []uuid.UUID {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	return sorted
}

// isLockContention reports whether err is a deadlock, serialization
// failure or lock timeout that is safe to retry.
func isLockContention(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}
