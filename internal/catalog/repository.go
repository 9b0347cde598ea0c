package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes the read lookups the booking core needs from the
// catalog. Catalog administration happens elsewhere.
type Repository interface {
	GetShowTimeByID(ctx context.Context, id uuid.UUID) (*ShowTime, error)
	GetShowTimesByFilmID(ctx context.Context, filmID uuid.UUID) ([]ShowTime, error)
	GetFilmByID(ctx context.Context, id uuid.UUID) (*Film, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetShowTimeByID(ctx context.Context, id uuid.UUID) (*ShowTime, error) {
	var showtime ShowTime
	err := r.db.WithContext(ctx).
		Preload("Film").
		Preload("Auditorium").
		First(&showtime, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return &showtime, nil
}

func (r *repository) GetShowTimesByFilmID(ctx context.Context, filmID uuid.UUID) ([]ShowTime, error) {
	var showtimes []ShowTime
	err := r.db.WithContext(ctx).
		Preload("Auditorium").
		Where("film_id = ?", filmID).
		Order("date ASC, start_time ASC").
		Find(&showtimes).Error
	return showtimes, err
}

func (r *repository) GetFilmByID(ctx context.Context, id uuid.UUID) (*Film, error) {
	var film Film
	err := r.db.WithContext(ctx).First(&film, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return &film, nil
}
