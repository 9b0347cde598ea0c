package holds

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/seats"
	"cinebook/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Service interface {
	// CreateHolds places a hold on every requested seat or none of them.
	CreateHolds(ctx context.Context, userID uuid.UUID, req CreateHoldsRequest) ([]SeatHold, error)

	// ReleaseHolds drops every hold the user owns. No-op when there are none.
	ReleaseHolds(ctx context.Context, userID uuid.UUID) (int64, error)

	GetUserHolds(ctx context.Context, userID uuid.UUID) ([]SeatHold, error)

	// PurgeExpired removes every expired hold immediately, without waiting
	// for the next sweep pass.
	PurgeExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
	seatService seats.Service
	holdTTL     time.Duration
	validator   *validator.Validate
}

func NewService(repo Repository, catalogRepo catalog.Repository, seatService seats.Service, holdTTL time.Duration) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
		seatService: seatService,
		holdTTL:     holdTTL,
		validator:   validator.New(),
	}
}

func (s *service) CreateHolds(ctx context.Context, userID uuid.UUID, req CreateHoldsRequest) ([]SeatHold, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("invalid showtime ID: %w", err)
	}

	seatIDs := make([]uuid.UUID, 0, len(req.SeatIDs))
	seen := make(map[uuid.UUID]bool, len(req.SeatIDs))
	for _, raw := range req.SeatIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid seat ID %q: %w", raw, err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		seatIDs = append(seatIDs, id)
	}

	showtime, err := s.catalogRepo.GetShowTimeByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateHolds(ctx, userID, showtime.ID, seatIDs, s.holdTTL)
	if err != nil {
		return nil, err
	}

	s.seatService.InvalidateAvailability(ctx, showtime.ID)
	logger.GetDefault().LogHoldsCreated(ctx, userID.String(), showtime.ID.String(), len(created))

	return created, nil
}

func (s *service) ReleaseHolds(ctx context.Context, userID uuid.UUID) (int64, error) {
	userHolds, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user holds: %w", err)
	}
	if len(userHolds) == 0 {
		return 0, nil
	}

	deleted, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to release holds: %w", err)
	}

	for _, showtimeID := range distinctShowtimes(userHolds) {
		s.seatService.InvalidateAvailability(ctx, showtimeID)
	}
	logger.GetDefault().LogHoldsReleased(ctx, userID.String(), int(deleted))

	return deleted, nil
}

func (s *service) GetUserHolds(ctx context.Context, userID uuid.UUID) ([]SeatHold, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired holds: %w", err)
	}
	return deleted, nil
}

func distinctShowtimes(userHolds []SeatHold) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(userHolds))
	out := make([]uuid.UUID, 0, len(userHolds))
	for _, h := range userHolds {
		if seen[h.ShowTimeID] {
			continue
		}
		seen[h.ShowTimeID] = true
		out = append(out, h.ShowTimeID)
	}
	return out
}
