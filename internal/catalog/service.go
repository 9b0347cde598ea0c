package catalog

import (
	"context"

	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"
	"cinebook/pkg/logger"

	"github.com/google/uuid"
)

// Service exposes read-only catalog lookups. Catalog management happens
// out of band; this service only serves the booking flow.
type Service interface {
	GetShowTime(ctx context.Context, id uuid.UUID) (*ShowTime, error)
	GetShowTimesByFilm(ctx context.Context, filmID uuid.UUID) ([]ShowTime, error)
	GetFilm(ctx context.Context, id uuid.UUID) (*Film, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

// NewService creates the catalog read service. cacheService may be nil.
func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cacheService: cacheService}
}

func (s *service) GetShowTime(ctx context.Context, id uuid.UUID) (*ShowTime, error) {
	cacheKey := constants.BuildShowtimeDetailKey(id.String())
	if s.cacheService != nil {
		var cached ShowTime
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	showtime, err := s.repo.GetShowTimeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, showtime, constants.TTL_SHOWTIME_DETAIL); err != nil {
			logger.GetDefault().Debug("failed to cache showtime", "error", err)
		}
	}
	return showtime, nil
}

func (s *service) GetShowTimesByFilm(ctx context.Context, filmID uuid.UUID) ([]ShowTime, error) {
	return s.repo.GetShowTimesByFilmID(ctx, filmID)
}

func (s *service) GetFilm(ctx context.Context, id uuid.UUID) (*Film, error) {
	cacheKey := constants.BuildFilmDetailKey(id.String())
	if s.cacheService != nil {
		var cached Film
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	film, err := s.repo.GetFilmByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, film, constants.TTL_FILM_DETAIL); err != nil {
			logger.GetDefault().Debug("failed to cache film", "error", err)
		}
	}
	return film, nil
}
