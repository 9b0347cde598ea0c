package seats

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

type Service interface {
	// GetAvailability derives the per-seat status of a showtime's
	// auditorium from hold and booking-item rows. Never stored.
	GetAvailability(ctx context.Context, showtimeID string) ([]SeatAvailability, error)

	// InvalidateAvailability drops the cached projection after a state
	// change. Best effort; the short cache TTL bounds staleness anyway.
	InvalidateAvailability(ctx context.Context, showtimeID uuid.UUID)
}

// SeatAvailability is one row of the derived availability projection
type SeatAvailability struct {
	SeatID    string     `json:"seat_id"`
	Row       string     `json:"row"`
	Number    int        `json:"number"`
	Status    SeatStatus `json:"status"`
	SeatType  string     `json:"seat_type,omitempty"`
	BasePrice float64    `json:"base_price"`
	Bonus     float64    `json:"bonus"`
	SeatPrice float64    `json:"seat_price"`
}

type service struct {
	repo         Repository
	catalogRepo  catalog.Repository
	cacheService cache.Service
	cacheTTL     time.Duration
}

// NewService creates the availability service. cacheService may be nil,
// which disables projection caching.
func NewService(repo Repository, catalogRepo catalog.Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:         repo,
		catalogRepo:  catalogRepo,
		cacheService: cacheService,
		cacheTTL:     cacheTTL,
	}
}

func (s *service) GetAvailability(ctx context.Context, showtimeID string) ([]SeatAvailability, error) {
	showtimeUUID, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	cacheKey := constants.BuildSeatAvailabilityKey(showtimeID)
	if s.cacheService != nil {
		var cached []SeatAvailability
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	showtime, err := s.catalogRepo.GetShowTimeByID(ctx, showtimeUUID)
	if err != nil {
		return nil, err
	}

	allSeats, err := s.repo.GetSeatsByAuditoriumID(ctx, showtime.AuditoriumID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	heldIDs, err := s.repo.GetHeldSeatIDs(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get held seats: %w", err)
	}

	bookedIDs, err := s.repo.GetBookedSeatIDs(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats: %w", err)
	}

	held := make(map[uuid.UUID]bool, len(heldIDs))
	for _, id := range heldIDs {
		held[id] = true
	}
	booked := make(map[uuid.UUID]bool, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = true
	}

	result := make([]SeatAvailability, 0, len(allSeats))
	for _, seat := range allSeats {
		row := SeatAvailability{
			SeatID: seat.ID.String(),
			Row:    seat.Row,
			Number: seat.Number,
			Status: seatStatusFor(seat.ID, booked, held),
		}
		if seat.Variant != nil {
			row.SeatType = seat.Variant.SeatType
			row.BasePrice = seat.Variant.BasePrice
			row.Bonus = seat.Variant.Bonus
			row.SeatPrice = seat.Variant.BasePrice + seat.Variant.Bonus
		}
		result = append(result, row)
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			logger.GetDefault().Debug("failed to cache seat availability", "error", err)
		}
	}

	return result, nil
}

func (s *service) InvalidateAvailability(ctx context.Context, showtimeID uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildSeatAvailabilityKey(showtimeID.String())); err != nil {
		logger.GetDefault().Debug("failed to invalidate seat availability cache", "error", err)
	}
}

// seatStatusFor ranks BOOKED over HELD over AVAILABLE
func seatStatusFor(seatID uuid.UUID, booked, held map[uuid.UUID]bool) SeatStatus {
	switch {
	case booked[seatID]:
		return StatusBooked
	case held[seatID]:
		return StatusHeld
	default:
		return StatusAvailable
	}
}
